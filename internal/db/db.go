package db

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skyblocklegends/api/internal/config"
	"github.com/skyblocklegends/api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DBName, conf.SSLMode,
	)

	return OpenPostgresWithURL(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return gormDB, nil
}

// SeedAdmin creates the initial "admin" account when no users exist yet,
// so a fresh deployment can log into the dashboard.
func SeedAdmin(gormDB *gorm.DB, password string) error {
	if password == "" {
		return errors.New("admin seed password is empty")
	}

	var count int64
	if err := gormDB.Model(&dao.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users -> %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	admin := dao.User{
		Username: "admin",
		Password: string(hash),
		Role:     "admin",
	}

	return gormDB.Create(&admin).Error
}
