package service

import (
	"context"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository"
)

var (
	ErrTeamMemberNotFound   = repository.ErrTeamMemberNotFound
	ErrVotingSiteNotFound   = repository.ErrVotingSiteNotFound
	ErrGalleryImageNotFound = repository.ErrGalleryImageNotFound
)

type SiteRepository interface {
	CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	FindTeamMemberByID(ctx context.Context, id uint) (domain.TeamMember, error)
	FindTeamMembers(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error

	CreateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error)
	FindVotingSiteByID(ctx context.Context, id uint) (domain.VotingSite, error)
	FindVotingSites(ctx context.Context, activeOnly bool) ([]domain.VotingSite, error)
	UpdateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error)
	DeleteVotingSite(ctx context.Context, id uint) error

	CreateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error)
	FindGalleryImageByID(ctx context.Context, id uint) (domain.GalleryImage, error)
	FindGalleryImages(ctx context.Context, visibleOnly bool) ([]domain.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uint) error
}

// SiteService wraps the presentational content of the site: team members,
// voting sites and gallery images.
type SiteService struct {
	repo SiteRepository
}

func NewSiteService(repo SiteRepository) *SiteService {
	return &SiteService{
		repo: repo,
	}
}

func (s *SiteService) ListTeamMembers(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error) {
	members, err := s.repo.FindTeamMembers(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTeamMembers -> %w", err)
	}

	return members, nil
}

func (s *SiteService) GetTeamMember(ctx context.Context, id uint) (domain.TeamMember, error) {
	member, err := s.repo.FindTeamMemberByID(ctx, id)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.FindTeamMemberByID -> %w", err)
	}

	return member, nil
}

func (s *SiteService) CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	created, err := s.repo.CreateTeamMember(ctx, member)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.CreateTeamMember -> %w", err)
	}

	return created, nil
}

func (s *SiteService) UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	updated, err := s.repo.UpdateTeamMember(ctx, member)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("s.repo.UpdateTeamMember -> %w", err)
	}

	return updated, nil
}

func (s *SiteService) DeleteTeamMember(ctx context.Context, id uint) error {
	if err := s.repo.DeleteTeamMember(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteTeamMember -> %w", err)
	}

	return nil
}

func (s *SiteService) ListVotingSites(ctx context.Context, activeOnly bool) ([]domain.VotingSite, error) {
	sites, err := s.repo.FindVotingSites(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindVotingSites -> %w", err)
	}

	return sites, nil
}

func (s *SiteService) GetVotingSite(ctx context.Context, id uint) (domain.VotingSite, error) {
	site, err := s.repo.FindVotingSiteByID(ctx, id)
	if err != nil {
		return domain.VotingSite{}, fmt.Errorf("s.repo.FindVotingSiteByID -> %w", err)
	}

	return site, nil
}

func (s *SiteService) CreateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error) {
	created, err := s.repo.CreateVotingSite(ctx, site)
	if err != nil {
		return domain.VotingSite{}, fmt.Errorf("s.repo.CreateVotingSite -> %w", err)
	}

	return created, nil
}

func (s *SiteService) UpdateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error) {
	updated, err := s.repo.UpdateVotingSite(ctx, site)
	if err != nil {
		return domain.VotingSite{}, fmt.Errorf("s.repo.UpdateVotingSite -> %w", err)
	}

	return updated, nil
}

func (s *SiteService) DeleteVotingSite(ctx context.Context, id uint) error {
	if err := s.repo.DeleteVotingSite(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteVotingSite -> %w", err)
	}

	return nil
}

func (s *SiteService) ListGalleryImages(ctx context.Context, visibleOnly bool) ([]domain.GalleryImage, error) {
	images, err := s.repo.FindGalleryImages(ctx, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindGalleryImages -> %w", err)
	}

	return images, nil
}

func (s *SiteService) GetGalleryImage(ctx context.Context, id uint) (domain.GalleryImage, error) {
	image, err := s.repo.FindGalleryImageByID(ctx, id)
	if err != nil {
		return domain.GalleryImage{}, fmt.Errorf("s.repo.FindGalleryImageByID -> %w", err)
	}

	return image, nil
}

func (s *SiteService) CreateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error) {
	created, err := s.repo.CreateGalleryImage(ctx, image)
	if err != nil {
		return domain.GalleryImage{}, fmt.Errorf("s.repo.CreateGalleryImage -> %w", err)
	}

	return created, nil
}

func (s *SiteService) UpdateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error) {
	updated, err := s.repo.UpdateGalleryImage(ctx, image)
	if err != nil {
		return domain.GalleryImage{}, fmt.Errorf("s.repo.UpdateGalleryImage -> %w", err)
	}

	return updated, nil
}

func (s *SiteService) DeleteGalleryImage(ctx context.Context, id uint) error {
	if err := s.repo.DeleteGalleryImage(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteGalleryImage -> %w", err)
	}

	return nil
}
