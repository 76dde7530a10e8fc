package dao_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skyblocklegends/api/internal/db"
	"github.com/skyblocklegends/api/internal/repository/dao"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("dockertest.NewPool -> %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to Docker -> %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=skyblock_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("pool.RunWithOptions -> %v", err)
	}
	_ = resource.Expire(180)

	url := fmt.Sprintf("postgres://test:secret@%v/skyblock_test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		testDB, err = db.OpenPostgresWithURL(url)

		return err
	}); err != nil {
		log.Fatalf("could not connect to Postgres -> %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("pool.Purge -> %v", err)
	}

	os.Exit(code)
}

func cleanTables(t *testing.T) {
	t.Helper()

	for _, model := range []interface{}{
		&dao.User{}, &dao.ServerConfig{}, &dao.NewsArticle{}, &dao.Season{},
		&dao.TeamMember{}, &dao.VotingSite{}, &dao.GalleryImage{},
		&dao.StoreItem{}, &dao.Order{},
	} {
		require.NoError(t, testDB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error)
	}
}

func TestUserDAO(t *testing.T) {
	cleanTables(t)
	userDAO := dao.NewUserDAO(testDB)
	ctx := context.Background()

	created, err := userDAO.Insert(ctx, dao.User{
		Username: "steve",
		Password: gofakeit.Password(true, true, true, false, false, 24),
		Role:     "admin",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := userDAO.Insert(ctx, dao.User{
			Username: "steve",
			Password: "irrelevant",
			Role:     "player",
		})
		assert.ErrorIs(t, err, dao.ErrUsernameExists)
	})

	t.Run("find by username", func(t *testing.T) {
		found, err := userDAO.FindByUsername(ctx, "steve")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = userDAO.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, dao.ErrUserNotFound)
	})

	t.Run("default role", func(t *testing.T) {
		user, err := userDAO.Insert(ctx, dao.User{
			Username: gofakeit.Username(),
			Password: "hash",
			Role:     "player",
		})
		require.NoError(t, err)

		found, err := userDAO.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "player", found.Role)
	})
}

func TestSeedAdmin(t *testing.T) {
	cleanTables(t)

	require.NoError(t, db.SeedAdmin(testDB, "seed-password-1"))

	admin, err := dao.NewUserDAO(testDB).FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)

	// A second call must not create another account.
	require.NoError(t, db.SeedAdmin(testDB, "seed-password-1"))

	users, err := dao.NewUserDAO(testDB).FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestServerConfigDAO(t *testing.T) {
	cleanTables(t)
	confDAO := dao.NewServerConfigDAO(testDB)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		_, err := confDAO.Find(ctx)
		assert.ErrorIs(t, err, dao.ErrServerConfigNotFound)
	})

	t.Run("upsert keeps a single row", func(t *testing.T) {
		_, err := confDAO.Upsert(ctx, dao.ServerConfig{
			Name:       "SkyBlock Legends",
			IP:         "play.skyblocklegends.net",
			MaxPlayers: 500,
		})
		require.NoError(t, err)

		_, err = confDAO.Upsert(ctx, dao.ServerConfig{
			Name:        "SkyBlock Legends",
			IP:          "play.skyblocklegends.net",
			MaxPlayers:  1000,
			IsOnline:    true,
			PlayerCount: 250,
		})
		require.NoError(t, err)

		found, err := confDAO.Find(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(1), found.ID)
		assert.Equal(t, 1000, found.MaxPlayers)
		assert.True(t, found.IsOnline)

		var count int64
		require.NoError(t, testDB.Model(&dao.ServerConfig{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestSeasonDAO_SingleActiveSeason(t *testing.T) {
	cleanTables(t)
	seasonDAO := dao.NewSeasonDAO(testDB)
	ctx := context.Background()

	first, err := seasonDAO.InsertDeactivatingOthers(ctx, dao.Season{
		Name:        "Season 1",
		Description: gofakeit.Sentence(8),
		Version:     "1.19",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		Features:    []string{"custom islands", "dungeons"},
	})
	require.NoError(t, err)

	second, err := seasonDAO.InsertDeactivatingOthers(ctx, dao.Season{
		Name:        "Season 2",
		Description: gofakeit.Sentence(8),
		Version:     "1.20",
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		Features:    []string{"sky wars"},
	})
	require.NoError(t, err)

	active, err := seasonDAO.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	firstReloaded, err := seasonDAO.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, firstReloaded.IsActive)

	t.Run("reactivating the old season flips the flag back", func(t *testing.T) {
		firstReloaded.IsActive = true
		_, err := seasonDAO.UpdateDeactivatingOthers(ctx, firstReloaded)
		require.NoError(t, err)

		active, err := seasonDAO.FindActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.ID, active.ID)

		secondReloaded, err := seasonDAO.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.False(t, secondReloaded.IsActive)
	})

	t.Run("features survive the json serializer", func(t *testing.T) {
		found, err := seasonDAO.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"sky wars"}, found.Features)
	})
}

func TestNewsDAO_PublishedFilterAndOrder(t *testing.T) {
	cleanTables(t)
	newsDAO := dao.NewNewsDAO(testDB)
	ctx := context.Background()

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := newsDAO.Insert(ctx, dao.NewsArticle{
		Title:    "Draft",
		Excerpt:  gofakeit.Sentence(5),
		Content:  gofakeit.Paragraph(1, 3, 10, " "),
		Category: "update",
	})
	require.NoError(t, err)

	old, err := newsDAO.Insert(ctx, dao.NewsArticle{
		Title:       "Old news",
		Excerpt:     gofakeit.Sentence(5),
		Content:     gofakeit.Paragraph(1, 3, 10, " "),
		Category:    "event",
		IsPublished: true,
		PublishedAt: &older,
	})
	require.NoError(t, err)

	featured, err := newsDAO.Insert(ctx, dao.NewsArticle{
		Title:       "Fresh news",
		Excerpt:     gofakeit.Sentence(5),
		Content:     gofakeit.Paragraph(1, 3, 10, " "),
		Category:    "update",
		IsPublished: true,
		IsFeatured:  true,
		PublishedAt: &newer,
	})
	require.NoError(t, err)

	t.Run("published only, newest first", func(t *testing.T) {
		articles, err := newsDAO.FindPublished(ctx, 0)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, featured.ID, articles[0].ID)
		assert.Equal(t, old.ID, articles[1].ID)
	})

	t.Run("limit", func(t *testing.T) {
		articles, err := newsDAO.FindPublished(ctx, 1)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, featured.ID, articles[0].ID)
	})

	t.Run("featured", func(t *testing.T) {
		articles, err := newsDAO.FindFeatured(ctx)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, featured.ID, articles[0].ID)
	})

	t.Run("drafts visible to FindAll", func(t *testing.T) {
		articles, err := newsDAO.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, articles, 3)
	})
}

func TestSiteDAO_DisplayOrder(t *testing.T) {
	cleanTables(t)
	siteDAO := dao.NewSiteDAO(testDB)
	ctx := context.Background()

	last, err := siteDAO.InsertTeamMember(ctx, dao.TeamMember{
		Name:     gofakeit.Name(),
		Role:     "builder",
		Order:    5,
		IsActive: true,
	})
	require.NoError(t, err)

	first, err := siteDAO.InsertTeamMember(ctx, dao.TeamMember{
		Name:     gofakeit.Name(),
		Role:     "founder",
		Order:    0,
		IsActive: true,
	})
	require.NoError(t, err)

	middle, err := siteDAO.InsertTeamMember(ctx, dao.TeamMember{
		Name:     gofakeit.Name(),
		Role:     "moderator",
		Order:    3,
		IsActive: true,
	})
	require.NoError(t, err)

	members, err := siteDAO.FindTeamMembers(ctx, false)
	require.NoError(t, err)
	require.Len(t, members, 3)

	// Sorted by display_order, not by insertion.
	assert.Equal(t, first.ID, members[0].ID)
	assert.Equal(t, middle.ID, members[1].ID)
	assert.Equal(t, last.ID, members[2].ID)
}

func TestStoreDAO_OrderRoundTrip(t *testing.T) {
	cleanTables(t)
	storeDAO := dao.NewStoreDAO(testDB)
	ctx := context.Background()

	created, err := storeDAO.InsertOrder(ctx, dao.Order{
		OrderNumber:   "ORD-TEST0001",
		CustomerName:  gofakeit.Name(),
		CustomerEmail: gofakeit.Email(),
		Items:         `[{"name":"VIP Rank","quantity":1,"price":"9.99"}]`,
		TotalAmount:   "9.99",
		Status:        "pending",
		PaymentMethod: "paypal",
		PaymentStatus: "paid",
	})
	require.NoError(t, err)

	found, err := storeDAO.FindOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-TEST0001", found.OrderNumber)
	assert.JSONEq(t, created.Items, found.Items)

	t.Run("unknown order", func(t *testing.T) {
		_, err := storeDAO.FindOrderByID(ctx, created.ID+1000)
		assert.ErrorIs(t, err, dao.ErrOrderNotFound)
	})
}
