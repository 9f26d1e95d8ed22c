package model

import "time"

// Certificate is the durable record behind a public certificate number.
// StudentID and CertificateNumber carry unique indexes; insert-time
// violations of those indexes are the authoritative conflict signal for the
// issuance workflow, a pre-insert lookup is only a courtesy check.
type Certificate struct {
	BaseModel
	StudentName       string    `gorm:"type:varchar(100);not null" json:"student_name" form:"student_name" binding:"required,strNotEmpty"`
	StudentID         string    `gorm:"type:varchar(50);not null;uniqueIndex:uni_certificates_student_id" json:"student_id" form:"student_id" binding:"required,strNotEmpty"`
	CourseID          uint      `gorm:"not null" json:"course_id" form:"course_id" binding:"required"`
	CertificateNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:uni_certificates_certificate_number" json:"certificate_number"`
	IssueDate         time.Time `gorm:"type:timestamptz;not null" json:"issue_date"`

	// Artifact locations, relative to the configured output directories.
	// Nil until generation succeeds; a record with nil paths is a valid but
	// partial certificate awaiting (re)generation.
	PdfPath    *string `gorm:"type:varchar(200)" json:"pdf_path"`
	QrcodePath *string `gorm:"type:varchar(200)" json:"qrcode_path"`

	Course Course `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"course,omitempty" form:"course"`
}

func (c Certificate) TableName() string {
	return "certificates"
}

// ArtifactsPending reports whether the record still needs artifact
// generation (either file reference missing).
func (c Certificate) ArtifactsPending() bool {
	return c.PdfPath == nil || c.QrcodePath == nil
}
