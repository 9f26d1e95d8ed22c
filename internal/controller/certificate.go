package controller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/psucert/certserve/internal/apperror"
	"github.com/psucert/certserve/internal/model"
	"github.com/psucert/certserve/internal/util"
)

type CertificateController struct {
	*baseController
}

const dateLayout = "2006-01-02"

func (cc CertificateController) GetAllCertificates(ctx *gin.Context) {
	certificates, err := cc.app.Repository.Certificate.GetAll(ctx, nil)
	if err != nil {
		cc.app.Logger.Errorf("Failed to list certificates: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to list certificates")
		return
	}

	list := make([]gin.H, len(certificates))
	for i, cert := range certificates {
		list[i] = gin.H{
			"id":                 cert.ID,
			"student_name":       cert.StudentName,
			"student_id":         cert.StudentID,
			"course":             cert.Course.Title,
			"issue_date":         cert.IssueDate.Format(dateLayout),
			"certificate_number": cert.CertificateNumber,
		}
	}

	util.ResponseJSON(ctx, http.StatusOK, list)
}

// IssueCertificate runs the issuance workflow. An artifact failure after the
// insert still returns the persisted id so the caller can regenerate.
func (cc CertificateController) IssueCertificate(ctx *gin.Context) {
	type IssueRequest struct {
		StudentName string `json:"student_name" binding:"required,strNotEmpty"`
		StudentID   string `json:"student_id" binding:"required,strNotEmpty"`
		CourseID    uint   `json:"course_id" binding:"required"`
	}

	var req IssueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Missing required fields")
		return
	}

	cert, err := cc.app.Issuance.Issue(ctx, req.StudentName, req.StudentID, req.CourseID)
	if err != nil {
		switch kind, _ := apperror.KindOf(err); kind {
		case apperror.KindValidation, apperror.KindConflict:
			util.ResponseMessage(ctx, http.StatusBadRequest, err.Error())
		case apperror.KindNotFound:
			// An unresolvable course reference is a bad request, not a
			// missing resource.
			util.ResponseMessage(ctx, http.StatusBadRequest, "Invalid course_id")
		case apperror.KindArtifact:
			util.ResponseJSON(ctx, http.StatusInternalServerError, gin.H{
				"message": "Certificate issued but artifact generation failed, use regenerate",
				"id":      cert.ID,
			})
		default:
			cc.app.Logger.Errorf("Failed to issue certificate: %v", err)
			util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to issue certificate")
		}
		return
	}

	if admin, err := cc.getAuthAdmin(ctx); err == nil {
		cc.app.Logger.Infof("Certificate %s issued by admin %s", cert.CertificateNumber, admin.Username)
	}

	util.ResponseJSON(ctx, http.StatusCreated, gin.H{
		"id":                 cert.ID,
		"certificate_number": cert.CertificateNumber,
		"qr":                 cert.QrcodePath,
		"pdf":                cert.PdfPath,
	})
}

func (cc CertificateController) GetCertificateDetails(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Invalid certificate id")
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, uint(id))
	if err != nil {
		util.ResponseMessage(ctx, http.StatusNotFound, "Certificate not found")
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{
		"id":                 cert.ID,
		"student_name":       cert.StudentName,
		"student_id":         cert.StudentID,
		"course":             cert.Course.Title,
		"issue_date":         cert.IssueDate.Format(dateLayout),
		"certificate_number": cert.CertificateNumber,
		"qr_filename":        cert.QrcodePath,
		"pdf_filename":       cert.PdfPath,
		"artifacts_pending":  cert.ArtifactsPending(),
	})
}

// VerifyCertificateByNumber is the public verification endpoint: anyone
// holding a certificate number can check it without authentication.
func (cc CertificateController) VerifyCertificateByNumber(ctx *gin.Context) {
	certificateNumber := ctx.Param("certificateNumber")

	cert, err := cc.app.Issuance.Verify(ctx, certificateNumber)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			util.ResponseMessage(ctx, http.StatusNotFound, "Certificate not found")
			return
		}
		cc.app.Logger.Errorf("Failed to verify certificate: %v", err)
		util.ResponseMessage(ctx, http.StatusInternalServerError, "Verification failed")
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, cc.verificationProjection(cert))
}

// verificationProjection is the public-safe view of a certificate record.
func (cc CertificateController) verificationProjection(cert *model.Certificate) gin.H {
	return gin.H{
		"valid":              true,
		"id":                 cert.ID,
		"student_name":       cert.StudentName,
		"student_id":         cert.StudentID,
		"course":             cert.Course.Title,
		"issue_date":         cert.IssueDate.Format(dateLayout),
		"certificate_number": cert.CertificateNumber,
	}
}

func (cc CertificateController) DownloadCertificate(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Invalid certificate id")
		return
	}

	cert, err := cc.app.Repository.Certificate.GetById(ctx, nil, uint(id))
	if err != nil {
		util.ResponseMessage(ctx, http.StatusNotFound, "Certificate not found")
		return
	}

	if cert.PdfPath == nil {
		util.ResponseMessage(ctx, http.StatusConflict, "Certificate artifacts are pending generation")
		return
	}

	pdfPath := filepath.Join(cc.app.Config.Certificate.CertDir, *cert.PdfPath)
	if _, err := os.Stat(pdfPath); err != nil {
		util.ResponseMessage(ctx, http.StatusNotFound, "Certificate document is missing, regenerate it")
		return
	}

	ctx.FileAttachment(pdfPath, fmt.Sprintf("certificate_%s.pdf", cert.CertificateNumber))
}

// RegenerateArtifacts re-runs artifact generation for a record, recovering
// certificates left partial by an earlier generation failure.
func (cc CertificateController) RegenerateArtifacts(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.ResponseMessage(ctx, http.StatusBadRequest, "Invalid certificate id")
		return
	}

	cert, err := cc.app.Issuance.Regenerate(ctx, uint(id))
	if err != nil {
		switch kind, _ := apperror.KindOf(err); kind {
		case apperror.KindNotFound:
			util.ResponseMessage(ctx, http.StatusNotFound, "Certificate not found")
		case apperror.KindArtifact:
			util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to regenerate certificate artifacts")
		default:
			cc.app.Logger.Errorf("Failed to regenerate artifacts: %v", err)
			util.ResponseMessage(ctx, http.StatusInternalServerError, "Failed to regenerate certificate artifacts")
		}
		return
	}

	util.ResponseJSON(ctx, http.StatusOK, gin.H{
		"id":                 cert.ID,
		"certificate_number": cert.CertificateNumber,
		"qr":                 cert.QrcodePath,
		"pdf":                cert.PdfPath,
	})
}
