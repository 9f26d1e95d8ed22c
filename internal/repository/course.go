package repository

import (
	"context"

	"github.com/psucert/certserve/internal/constant"
	"github.com/psucert/certserve/internal/model"
	"gorm.io/gorm"
)

type CourseRepository struct {
	*baseRepository
}

func (cr CourseRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Course, error) {
	cr.logger.Debug("Get all courses")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var courses []model.Course
	if err := db.WithContext(ctx).Model(&model.Course{}).Find(&courses).Error; err != nil {
		return courses, err
	}

	return courses, nil
}

func (cr CourseRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Course, error) {
	cr.logger.Debugf("Get course by id: %d", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var course model.Course
	if err := db.WithContext(ctx).Model(&model.Course{}).First(&course, id).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

func (cr CourseRepository) Create(ctx context.Context, tx *gorm.DB, course *model.Course) (*model.Course, error) {
	cr.logger.Debugf("Create course: %s", course.Title)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Course{}).Create(course).Error; err != nil {
		return course, translateDuplicateKey(err)
	}

	return course, nil
}

func (cr CourseRepository) CountCertificates(ctx context.Context, tx *gorm.DB, courseId uint) (int64, error) {
	cr.logger.Debugf("Count certificates referencing course: %d", courseId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(map[string]any{"course_id": courseId}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (cr CourseRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	cr.logger.Debugf("Delete course by id: %d", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Delete(&model.Course{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
