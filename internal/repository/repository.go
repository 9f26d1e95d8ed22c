package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB          *gorm.DB
	Admin       *AdminRepository
	Course      *CourseRepository
	Certificate *CertificateRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:          db,
		Admin:       &AdminRepository{baseRepository: br},
		Course:      &CourseRepository{baseRepository: br},
		Certificate: &CertificateRepository{baseRepository: br},
	}
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}

// Duplicate-key sentinels. Issuance treats a student_id collision as a hard
// conflict and a certificate_number collision as a signal to retry with a
// fresh number, so the two must stay distinguishable.
var (
	ErrDuplicateStudentID         = errors.New("certificate for this student id already exists")
	ErrDuplicateCertificateNumber = errors.New("certificate number already exists")
	ErrDuplicateCourseTitle       = errors.New("course with this title already exists")
)

const pgUniqueViolationCode = "23505"

// translateDuplicateKey maps a unique-constraint violation to the sentinel
// for the specific index that fired. Non-duplicate errors pass through.
func translateDuplicateKey(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		switch pgErr.ConstraintName {
		case "uni_certificates_student_id":
			return ErrDuplicateStudentID
		case "uni_certificates_certificate_number":
			return ErrDuplicateCertificateNumber
		case "uni_courses_title":
			return ErrDuplicateCourseTitle
		}
	}

	return err
}
