package repository

import (
	"context"
	"fmt"

	"github.com/skyblocklegends/api/internal/domain"
	"github.com/skyblocklegends/api/internal/repository/dao"
)

var (
	ErrTeamMemberNotFound   = dao.ErrTeamMemberNotFound
	ErrVotingSiteNotFound   = dao.ErrVotingSiteNotFound
	ErrGalleryImageNotFound = dao.ErrGalleryImageNotFound
)

type SiteDAO interface {
	InsertTeamMember(ctx context.Context, member dao.TeamMember) (dao.TeamMember, error)
	FindTeamMemberByID(ctx context.Context, id uint) (dao.TeamMember, error)
	FindTeamMembers(ctx context.Context, activeOnly bool) ([]dao.TeamMember, error)
	UpdateTeamMember(ctx context.Context, member dao.TeamMember) (dao.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error

	InsertVotingSite(ctx context.Context, site dao.VotingSite) (dao.VotingSite, error)
	FindVotingSiteByID(ctx context.Context, id uint) (dao.VotingSite, error)
	FindVotingSites(ctx context.Context, activeOnly bool) ([]dao.VotingSite, error)
	UpdateVotingSite(ctx context.Context, site dao.VotingSite) (dao.VotingSite, error)
	DeleteVotingSite(ctx context.Context, id uint) error

	InsertGalleryImage(ctx context.Context, image dao.GalleryImage) (dao.GalleryImage, error)
	FindGalleryImageByID(ctx context.Context, id uint) (dao.GalleryImage, error)
	FindGalleryImages(ctx context.Context, visibleOnly bool) ([]dao.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, image dao.GalleryImage) (dao.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uint) error
}

// SiteRepository handles team members, voting sites and gallery images.
type SiteRepository struct {
	dao SiteDAO
}

func NewSiteRepository(dao SiteDAO) *SiteRepository {
	return &SiteRepository{
		dao: dao,
	}
}

func (r *SiteRepository) CreateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	created, err := r.dao.InsertTeamMember(ctx, dao.TeamMember{
		Name:        member.Name,
		Role:        member.Role,
		Description: member.Description,
		AvatarURL:   member.AvatarURL,
		Order:       member.Order,
		IsActive:    member.IsActive,
	})
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.InsertTeamMember -> %w", err)
	}

	return r.teamMemberToDomain(created), nil
}

func (r *SiteRepository) FindTeamMemberByID(ctx context.Context, id uint) (domain.TeamMember, error) {
	found, err := r.dao.FindTeamMemberByID(ctx, id)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.FindTeamMemberByID -> %w", err)
	}

	return r.teamMemberToDomain(found), nil
}

func (r *SiteRepository) FindTeamMembers(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error) {
	found, err := r.dao.FindTeamMembers(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTeamMembers -> %w", err)
	}

	members := make([]domain.TeamMember, 0, len(found))
	for _, m := range found {
		members = append(members, r.teamMemberToDomain(m))
	}

	return members, nil
}

func (r *SiteRepository) UpdateTeamMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	updated, err := r.dao.UpdateTeamMember(ctx, dao.TeamMember{
		ID:          member.ID,
		Name:        member.Name,
		Role:        member.Role,
		Description: member.Description,
		AvatarURL:   member.AvatarURL,
		Order:       member.Order,
		IsActive:    member.IsActive,
		CreatedAt:   member.CreatedAt,
	})
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("r.dao.UpdateTeamMember -> %w", err)
	}

	return r.teamMemberToDomain(updated), nil
}

func (r *SiteRepository) DeleteTeamMember(ctx context.Context, id uint) error {
	if err := r.dao.DeleteTeamMember(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteTeamMember -> %w", err)
	}

	return nil
}

func (r *SiteRepository) CreateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error) {
	created, err := r.dao.InsertVotingSite(ctx, dao.VotingSite{
		Name:        site.Name,
		URL:         site.URL,
		Description: site.Description,
		Reward:      site.Reward,
		Order:       site.Order,
		IsActive:    site.IsActive,
	})
	if err != nil {
		return domain.VotingSite{}, fmt.Errorf("r.dao.InsertVotingSite -> %w", err)
	}

	return r.votingSiteToDomain(created), nil
}

func (r *SiteRepository) FindVotingSiteByID(ctx context.Context, id uint) (domain.VotingSite, error) {
	found, err := r.dao.FindVotingSiteByID(ctx, id)
	if err != nil {
		return domain.VotingSite{}, fmt.Errorf("r.dao.FindVotingSiteByID -> %w", err)
	}

	return r.votingSiteToDomain(found), nil
}

func (r *SiteRepository) FindVotingSites(ctx context.Context, activeOnly bool) ([]domain.VotingSite, error) {
	found, err := r.dao.FindVotingSites(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVotingSites -> %w", err)
	}

	sites := make([]domain.VotingSite, 0, len(found))
	for _, s := range found {
		sites = append(sites, r.votingSiteToDomain(s))
	}

	return sites, nil
}

func (r *SiteRepository) UpdateVotingSite(ctx context.Context, site domain.VotingSite) (domain.VotingSite, error) {
	updated, err := r.dao.UpdateVotingSite(ctx, dao.VotingSite{
		ID:          site.ID,
		Name:        site.Name,
		URL:         site.URL,
		Description: site.Description,
		Reward:      site.Reward,
		Order:       site.Order,
		IsActive:    site.IsActive,
		CreatedAt:   site.CreatedAt,
	})
	if err != nil {
		return domain.VotingSite{}, fmt.Errorf("r.dao.UpdateVotingSite -> %w", err)
	}

	return r.votingSiteToDomain(updated), nil
}

func (r *SiteRepository) DeleteVotingSite(ctx context.Context, id uint) error {
	if err := r.dao.DeleteVotingSite(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteVotingSite -> %w", err)
	}

	return nil
}

func (r *SiteRepository) CreateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error) {
	created, err := r.dao.InsertGalleryImage(ctx, dao.GalleryImage{
		Title:       image.Title,
		Description: image.Description,
		ImageURL:    image.ImageURL,
		Author:      image.Author,
		Category:    image.Category,
		Order:       image.Order,
		IsVisible:   image.IsVisible,
	})
	if err != nil {
		return domain.GalleryImage{}, fmt.Errorf("r.dao.InsertGalleryImage -> %w", err)
	}

	return r.galleryImageToDomain(created), nil
}

func (r *SiteRepository) FindGalleryImageByID(ctx context.Context, id uint) (domain.GalleryImage, error) {
	found, err := r.dao.FindGalleryImageByID(ctx, id)
	if err != nil {
		return domain.GalleryImage{}, fmt.Errorf("r.dao.FindGalleryImageByID -> %w", err)
	}

	return r.galleryImageToDomain(found), nil
}

func (r *SiteRepository) FindGalleryImages(ctx context.Context, visibleOnly bool) ([]domain.GalleryImage, error) {
	found, err := r.dao.FindGalleryImages(ctx, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindGalleryImages -> %w", err)
	}

	images := make([]domain.GalleryImage, 0, len(found))
	for _, img := range found {
		images = append(images, r.galleryImageToDomain(img))
	}

	return images, nil
}

func (r *SiteRepository) UpdateGalleryImage(ctx context.Context, image domain.GalleryImage) (domain.GalleryImage, error) {
	updated, err := r.dao.UpdateGalleryImage(ctx, dao.GalleryImage{
		ID:          image.ID,
		Title:       image.Title,
		Description: image.Description,
		ImageURL:    image.ImageURL,
		Author:      image.Author,
		Category:    image.Category,
		Order:       image.Order,
		IsVisible:   image.IsVisible,
		CreatedAt:   image.CreatedAt,
	})
	if err != nil {
		return domain.GalleryImage{}, fmt.Errorf("r.dao.UpdateGalleryImage -> %w", err)
	}

	return r.galleryImageToDomain(updated), nil
}

func (r *SiteRepository) DeleteGalleryImage(ctx context.Context, id uint) error {
	if err := r.dao.DeleteGalleryImage(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteGalleryImage -> %w", err)
	}

	return nil
}

func (r *SiteRepository) teamMemberToDomain(m dao.TeamMember) domain.TeamMember {
	return domain.TeamMember{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Description: m.Description,
		AvatarURL:   m.AvatarURL,
		Order:       m.Order,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *SiteRepository) votingSiteToDomain(s dao.VotingSite) domain.VotingSite {
	return domain.VotingSite{
		ID:          s.ID,
		Name:        s.Name,
		URL:         s.URL,
		Description: s.Description,
		Reward:      s.Reward,
		Order:       s.Order,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SiteRepository) galleryImageToDomain(img dao.GalleryImage) domain.GalleryImage {
	return domain.GalleryImage{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		ImageURL:    img.ImageURL,
		Author:      img.Author,
		Category:    img.Category,
		Order:       img.Order,
		IsVisible:   img.IsVisible,
		CreatedAt:   img.CreatedAt,
		UpdatedAt:   img.UpdatedAt,
	}
}
