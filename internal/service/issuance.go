package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/psucert/certserve/internal/apperror"
	"github.com/psucert/certserve/internal/constant"
	"github.com/psucert/certserve/internal/model"
	"github.com/psucert/certserve/internal/repository"
	"github.com/psucert/certserve/internal/util"
	"github.com/psucert/certserve/pkg/certgen"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CertificateStore is the subset of the certificate repository the issuance
// workflow needs. *repository.CertificateRepository satisfies it.
type CertificateStore interface {
	Create(ctx context.Context, tx *gorm.DB, cert *model.Certificate) (*model.Certificate, error)
	AttachArtifacts(ctx context.Context, tx *gorm.DB, id uint, qrcodePath, pdfPath string) error
	GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Certificate, error)
	GetByNumber(ctx context.Context, tx *gorm.DB, number string) (*model.Certificate, error)
	GetByStudentId(ctx context.Context, tx *gorm.DB, studentId string) (*model.Certificate, error)
}

// CourseStore resolves course references during issuance.
type CourseStore interface {
	GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Course, error)
}

// ArtifactGenerator produces the QR and PDF files for a persisted record.
type ArtifactGenerator interface {
	Generate(certificateId uint, data certgen.CertificateData) (*certgen.GeneratedResult, error)
}

// IssuanceService owns the certificate lifecycle: issue, regenerate
// artifacts, verify by public number.
type IssuanceService struct {
	certificates CertificateStore
	courses      CourseStore
	generator    ArtifactGenerator
	logger       *zap.SugaredLogger
}

func NewIssuanceService(certificates CertificateStore, courses CourseStore, generator ArtifactGenerator, logger *zap.SugaredLogger) *IssuanceService {
	// For unit test
	if logger == nil {
		logger = util.NewLogger()
	}

	return &IssuanceService{
		certificates: certificates,
		courses:      courses,
		generator:    generator,
		logger:       logger,
	}
}

// Issue runs the issuance workflow:
//  1. reject empty fields
//  2. reject an already-certified student id
//  3. resolve the course reference
//  4. generate a certificate number, insert under the unique indexes and
//     retry number collisions with a fresh number
//  5. generate artifacts for the persisted record and attach their paths
//
// When artifact generation fails after the insert, the persisted record is
// returned together with an artifact-kind error: the certificate exists and
// is verifiable, only its files are pending regeneration.
func (s IssuanceService) Issue(ctx context.Context, studentName, studentId string, courseId uint) (*model.Certificate, error) {
	if strings.TrimSpace(studentName) == "" || strings.TrimSpace(studentId) == "" || courseId == 0 {
		return nil, apperror.Validation("Missing required fields")
	}

	// Courtesy pre-check. The unique index on student_id remains the
	// authoritative guard under concurrent requests.
	if _, err := s.certificates.GetByStudentId(ctx, nil, studentId); err == nil {
		return nil, apperror.Conflict("Certificate for this student ID already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	course, err := s.courses.GetById(ctx, nil, courseId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Invalid course_id")
		}
		return nil, err
	}

	var cert *model.Certificate
	for attempt := 1; ; attempt++ {
		number, err := util.GenerateCertificateNumber()
		if err != nil {
			return nil, err
		}

		cert, err = s.certificates.Create(ctx, nil, &model.Certificate{
			StudentName:       studentName,
			StudentID:         studentId,
			CourseID:          course.ID,
			CertificateNumber: number,
			IssueDate:         time.Now().UTC(),
		})
		if err == nil {
			break
		}

		if errors.Is(err, repository.ErrDuplicateStudentID) {
			return nil, apperror.Conflict("Certificate for this student ID already exists")
		}

		if errors.Is(err, repository.ErrDuplicateCertificateNumber) && attempt < constant.CERT_NUMBER_MAX_ATTEMPTS {
			s.logger.Warnf("Certificate number collision on %s, retrying (attempt %d)", number, attempt)
			continue
		}

		return nil, err
	}

	cert.Course = *course

	if err := s.generateAndAttach(ctx, cert); err != nil {
		// The record is durable; report the failure without rolling back.
		return cert, err
	}

	return cert, nil
}

// Regenerate re-runs artifact generation for an existing record. Used to
// recover partial records and to refresh artifacts after asset changes.
func (s IssuanceService) Regenerate(ctx context.Context, id uint) (*model.Certificate, error) {
	cert, err := s.certificates.GetById(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Certificate not found")
		}
		return nil, err
	}

	if err := s.generateAndAttach(ctx, cert); err != nil {
		return cert, err
	}

	return cert, nil
}

// Verify resolves a public certificate number to its record, exact match.
func (s IssuanceService) Verify(ctx context.Context, certificateNumber string) (*model.Certificate, error) {
	cert, err := s.certificates.GetByNumber(ctx, nil, certificateNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Certificate not found")
		}
		return nil, err
	}

	return cert, nil
}

func (s IssuanceService) generateAndAttach(ctx context.Context, cert *model.Certificate) error {
	result, err := s.generator.Generate(cert.ID, certgen.CertificateData{
		StudentName:       cert.StudentName,
		CourseTitle:       cert.Course.Title,
		CertificateNumber: cert.CertificateNumber,
		IssueDate:         cert.IssueDate,
	})
	if err != nil {
		s.logger.Errorf("Artifact generation failed for certificate %d: %v", cert.ID, err)
		return apperror.Artifact("Failed to generate certificate artifacts", err)
	}

	if err := s.certificates.AttachArtifacts(ctx, nil, cert.ID, result.QrcodeFile, result.PdfFile); err != nil {
		s.logger.Errorf("Failed to attach artifacts for certificate %d: %v", cert.ID, err)
		return apperror.Artifact("Failed to record certificate artifacts", err)
	}

	cert.QrcodePath = &result.QrcodeFile
	cert.PdfPath = &result.PdfFile

	return nil
}
