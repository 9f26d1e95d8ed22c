package repository

import (
	"context"

	"github.com/psucert/certserve/internal/constant"
	"github.com/psucert/certserve/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository struct {
	*baseRepository
}

// Create inserts the record. The insert is the authoritative uniqueness
// check: a duplicate student_id or certificate_number comes back as the
// matching sentinel from translateDuplicateKey.
func (cr CertificateRepository) Create(ctx context.Context, tx *gorm.DB, cert *model.Certificate) (*model.Certificate, error) {
	cr.logger.Debugf("Create certificate: %s for student: %s", cert.CertificateNumber, cert.StudentID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Certificate{}).Create(cert).Error; err != nil {
		return cert, translateDuplicateKey(err)
	}

	return cert, nil
}

// AttachArtifacts persists the artifact file references for an issued
// certificate. Only the two path columns are touched.
func (cr CertificateRepository) AttachArtifacts(ctx context.Context, tx *gorm.DB, id uint, qrcodePath, pdfPath string) error {
	cr.logger.Debugf("Attach artifacts to certificate id: %d", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Certificate{}).Where("id = ?", id).Updates(map[string]any{
		"qrcode_path": qrcodePath,
		"pdf_path":    pdfPath,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (cr CertificateRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Certificate, error) {
	cr.logger.Debug("Get all certificates")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificates []model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Preload("Course").Order("id asc").Find(&certificates).Error; err != nil {
		return certificates, err
	}

	return certificates, nil
}

func (cr CertificateRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by id: %d", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Preload("Course").First(&certificate, id).Error; err != nil {
		return nil, err
	}

	return &certificate, nil
}

// GetByNumber looks a certificate up by its public number, exact match.
func (cr CertificateRepository) GetByNumber(ctx context.Context, tx *gorm.DB, number string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by number: %s", number)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Preload("Course").Where(map[string]any{"certificate_number": number}).First(&certificate).Error; err != nil {
		return nil, err
	}

	return &certificate, nil
}

func (cr CertificateRepository) GetByStudentId(ctx context.Context, tx *gorm.DB, studentId string) (*model.Certificate, error) {
	cr.logger.Debugf("Get certificate by student id: %s", studentId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var certificate model.Certificate
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Where(map[string]any{"student_id": studentId}).First(&certificate).Error; err != nil {
		return nil, err
	}

	return &certificate, nil
}

func (cr CertificateRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	cr.logger.Debug("Count certificates")

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Certificate{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
