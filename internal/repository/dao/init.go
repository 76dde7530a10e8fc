package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&ServerConfig{},
		&NewsArticle{},
		&Season{},
		&TeamMember{},
		&VotingSite{},
		&GalleryImage{},
		&StoreItem{},
		&Order{},
	)
}
