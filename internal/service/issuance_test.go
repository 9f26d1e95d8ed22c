package service

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/psucert/certserve/internal/apperror"
	"github.com/psucert/certserve/internal/model"
	"github.com/psucert/certserve/internal/repository"
	"github.com/psucert/certserve/pkg/certgen"
	"gorm.io/gorm"
)

// fakeCertificateStore enforces the same uniqueness rules as the Postgres
// indexes: at most one record per student id and per certificate number.
type fakeCertificateStore struct {
	mu        sync.Mutex
	nextID    uint
	byID      map[uint]*model.Certificate
	byStudent map[string]*model.Certificate
	byNumber  map[string]*model.Certificate

	// failNumberInserts makes the next n Create calls fail with a
	// certificate_number collision, to exercise the retry path.
	failNumberInserts int
	attachErr         error
}

func newFakeCertificateStore() *fakeCertificateStore {
	return &fakeCertificateStore{
		byID:      make(map[uint]*model.Certificate),
		byStudent: make(map[string]*model.Certificate),
		byNumber:  make(map[string]*model.Certificate),
	}
}

func (f *fakeCertificateStore) Create(ctx context.Context, tx *gorm.DB, cert *model.Certificate) (*model.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNumberInserts > 0 {
		f.failNumberInserts--
		return cert, repository.ErrDuplicateCertificateNumber
	}

	if _, exists := f.byStudent[cert.StudentID]; exists {
		return cert, repository.ErrDuplicateStudentID
	}
	if _, exists := f.byNumber[cert.CertificateNumber]; exists {
		return cert, repository.ErrDuplicateCertificateNumber
	}

	f.nextID++
	cert.ID = f.nextID
	f.byID[cert.ID] = cert
	f.byStudent[cert.StudentID] = cert
	f.byNumber[cert.CertificateNumber] = cert

	return cert, nil
}

func (f *fakeCertificateStore) AttachArtifacts(ctx context.Context, tx *gorm.DB, id uint, qrcodePath, pdfPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.attachErr != nil {
		return f.attachErr
	}

	cert, exists := f.byID[id]
	if !exists {
		return gorm.ErrRecordNotFound
	}

	cert.QrcodePath = &qrcodePath
	cert.PdfPath = &pdfPath

	return nil
}

func (f *fakeCertificateStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cert, exists := f.byID[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return cert, nil
}

func (f *fakeCertificateStore) GetByNumber(ctx context.Context, tx *gorm.DB, number string) (*model.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cert, exists := f.byNumber[number]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return cert, nil
}

func (f *fakeCertificateStore) GetByStudentId(ctx context.Context, tx *gorm.DB, studentId string) (*model.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cert, exists := f.byStudent[studentId]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return cert, nil
}

type fakeCourseStore struct {
	courses map[uint]model.Course
}

func (f *fakeCourseStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Course, error) {
	course, exists := f.courses[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return &course, nil
}

type fakeGenerator struct {
	fail  bool
	calls int
}

func (f *fakeGenerator) Generate(certificateId uint, data certgen.CertificateData) (*certgen.GeneratedResult, error) {
	f.calls++
	if f.fail {
		return nil, fmt.Errorf("renderer unavailable")
	}
	return &certgen.GeneratedResult{
		QrcodeFile: fmt.Sprintf("%d.png", certificateId),
		PdfFile:    fmt.Sprintf("%d.pdf", certificateId),
	}, nil
}

func newTestService() (*IssuanceService, *fakeCertificateStore, *fakeGenerator) {
	certs := newFakeCertificateStore()
	courses := &fakeCourseStore{courses: map[uint]model.Course{
		1: {BaseModel: model.BaseModel{ID: 1}, Title: "Computer Science"},
	}}
	gen := &fakeGenerator{}

	return NewIssuanceService(certs, courses, gen, nil), certs, gen
}

func TestIssueCertificate(t *testing.T) {
	svc, _, _ := newTestService()

	cert, err := svc.Issue(context.Background(), "Amina Yusuf", "S100", 1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if matched := regexp.MustCompile(`^PSU-[0-9A-F]{8}$`).MatchString(cert.CertificateNumber); !matched {
		t.Errorf("Certificate number %q does not match expected pattern", cert.CertificateNumber)
	}
	if cert.QrcodePath == nil || cert.PdfPath == nil {
		t.Error("Expected artifact paths to be attached after issuance")
	}
	if cert.ArtifactsPending() {
		t.Error("Expected complete record, got artifacts pending")
	}
	if cert.Course.Title != "Computer Science" {
		t.Errorf("Expected course title to be resolved, got %q", cert.Course.Title)
	}
	if cert.IssueDate.IsZero() {
		t.Error("Expected issue date to be set")
	}
}

func TestIssueValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name        string
		studentName string
		studentId   string
		courseId    uint
	}{
		{"Empty student name", "", "S100", 1},
		{"Whitespace student name", "   ", "S100", 1},
		{"Empty student id", "Amina Yusuf", "", 1},
		{"Zero course id", "Amina Yusuf", "S100", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Issue(context.Background(), tt.studentName, tt.studentId, tt.courseId)
			if !apperror.IsKind(err, apperror.KindValidation) {
				t.Errorf("Issue() error = %v, want validation error", err)
			}
		})
	}
}

func TestIssueUnknownCourse(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Issue(context.Background(), "Amina Yusuf", "S100", 999)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("Issue() error = %v, want not-found error", err)
	}
}

func TestIssueDuplicateStudent(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Issue(context.Background(), "Amina Yusuf", "S100", 1); err != nil {
		t.Fatalf("First Issue() error = %v", err)
	}

	_, err := svc.Issue(context.Background(), "Someone Else", "S100", 1)
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("Second Issue() error = %v, want conflict error", err)
	}
	if err.Error() != "Certificate for this student ID already exists" {
		t.Errorf("Unexpected conflict message: %s", err.Error())
	}
}

// Two concurrent submissions for the same student must yield exactly one
// success; the store-level uniqueness check is what decides the winner.
func TestIssueConcurrentSameStudent(t *testing.T) {
	svc, _, _ := newTestService()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = svc.Issue(context.Background(), "Amina Yusuf", "S100", 1)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case apperror.IsKind(err, apperror.KindConflict):
			conflicts++
		default:
			t.Errorf("Unexpected error under concurrency: %v", err)
		}
	}

	if successes != 1 {
		t.Errorf("Expected exactly 1 success, got %d", successes)
	}
	if conflicts != workers-1 {
		t.Errorf("Expected %d conflicts, got %d", workers-1, conflicts)
	}
}

func TestIssueRetriesNumberCollision(t *testing.T) {
	svc, certs, _ := newTestService()
	certs.failNumberInserts = 2

	cert, err := svc.Issue(context.Background(), "Amina Yusuf", "S100", 1)
	if err != nil {
		t.Fatalf("Issue() error = %v, want success after retries", err)
	}
	if cert.ID == 0 {
		t.Error("Expected a persisted record after retried inserts")
	}
}

func TestIssueGivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, certs, _ := newTestService()
	certs.failNumberInserts = 100

	_, err := svc.Issue(context.Background(), "Amina Yusuf", "S100", 1)
	if err == nil {
		t.Fatal("Expected Issue() to fail when collisions never stop")
	}
}

func TestIssueArtifactFailureLeavesPartialRecord(t *testing.T) {
	svc, certs, gen := newTestService()
	gen.fail = true

	cert, err := svc.Issue(context.Background(), "Amina Yusuf", "S100", 1)
	if !apperror.IsKind(err, apperror.KindArtifact) {
		t.Fatalf("Issue() error = %v, want artifact error", err)
	}
	if cert == nil || cert.ID == 0 {
		t.Fatal("Expected the persisted record to be returned alongside the artifact error")
	}
	if !cert.ArtifactsPending() {
		t.Error("Expected partial record with artifacts pending")
	}

	// The record must be verifiable despite the failed generation.
	got, err := svc.Verify(context.Background(), cert.CertificateNumber)
	if err != nil {
		t.Fatalf("Verify() after artifact failure error = %v", err)
	}
	if got.StudentID != "S100" {
		t.Errorf("Verify() returned wrong record: %+v", got)
	}

	// Regeneration recovers the partial record.
	gen.fail = false
	recovered, err := svc.Regenerate(context.Background(), cert.ID)
	if err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if recovered.ArtifactsPending() {
		t.Error("Expected artifacts attached after regeneration")
	}

	stored, _ := certs.GetById(context.Background(), nil, cert.ID)
	if stored.ArtifactsPending() {
		t.Error("Expected stored record updated after regeneration")
	}
}

func TestRegenerateUnknownCertificate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Regenerate(context.Background(), 42)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("Regenerate() error = %v, want not-found error", err)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	issued, err := svc.Issue(context.Background(), "Amina Yusuf", "S100", 1)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	got, err := svc.Verify(context.Background(), issued.CertificateNumber)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if got.StudentName != "Amina Yusuf" || got.StudentID != "S100" || got.CertificateNumber != issued.CertificateNumber {
		t.Errorf("Verify() returned mismatched fields: %+v", got)
	}

	// Reads have no side effects; a second lookup returns the same record.
	again, err := svc.Verify(context.Background(), issued.CertificateNumber)
	if err != nil || again.ID != got.ID {
		t.Errorf("Repeated Verify() differed: %+v, err = %v", again, err)
	}
}

func TestVerifyUnknownNumber(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Verify(context.Background(), "PSU-DOESNOTEXIST")
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("Verify() error = %v, want not-found error", err)
	}
}
