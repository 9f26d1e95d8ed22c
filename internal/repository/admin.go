package repository

import (
	"context"

	"github.com/psucert/certserve/internal/constant"
	"github.com/psucert/certserve/internal/model"
	"gorm.io/gorm"
)

type AdminRepository struct {
	*baseRepository
}

func (ar AdminRepository) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*model.Admin, error) {
	ar.logger.Debugf("Get admin by username: %s", username)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var admin model.Admin
	if err := db.WithContext(ctx).Model(&model.Admin{}).Where(map[string]any{"username": username}).First(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

func (ar AdminRepository) Create(ctx context.Context, tx *gorm.DB, admin *model.Admin) (*model.Admin, error) {
	ar.logger.Debugf("Create admin: %s", admin.Username)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Admin{}).Create(admin).Error; err != nil {
		return admin, translateDuplicateKey(err)
	}

	return admin, nil
}
