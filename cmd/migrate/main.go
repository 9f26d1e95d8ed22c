package main

import (
	"github.com/psucert/certserve/internal/config"
	"github.com/psucert/certserve/internal/database"
	"github.com/psucert/certserve/internal/env"
	"github.com/psucert/certserve/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(&model.Admin{}, &model.Course{}, &model.Certificate{})
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	if err := seedDefaultAdmin(db); err != nil {
		logger.Panic(err)
	}

	if err := seedDefaultCourses(db); err != nil {
		logger.Panic(err)
	}

	logger.Info("Migration and seeding complete")
}

func seedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Admin{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := env.GetString("DEFAULT_ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&model.Admin{Username: "admin", Password: string(hash)}).Error
}

func seedDefaultCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultCourses := []string{"Computer Science", "Business", "IT", "Engineering"}
	for _, title := range defaultCourses {
		if err := db.Create(&model.Course{Title: title}).Error; err != nil {
			return err
		}
	}

	return nil
}
