package database

import (
	"bible_challenge_backend/internal/config"
	"bible_challenge_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Group{},
		&model.User{},
		&model.Reading{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 다섯 개의 기본 조가 없으면 만들어 둔다
	var count int64
	db.Model(&model.Group{}).Count(&count)
	if count == 0 {
		for _, name := range model.DefaultGroupNames {
			db.Create(&model.Group{Name: name})
		}
		log.Printf("Seeded %d default groups", len(model.DefaultGroupNames))
	}

	return db, nil
}
