package certgen

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

/*
 * tdewolff/canvas uses mm as the unit of measurement. The layout below is an
 * A4 portrait page with absolute coordinates; presentation only, the contract
 * is that every field is present, legible and horizontally centered.
 */

const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

var (
	psuBlue  = canvas.Hex("#0d6efd")
	gold     = canvas.Hex("#ffd700")
	darkBlue = canvas.Hex("#003366")
)

// CertificateData carries everything the rendered document shows.
type CertificateData struct {
	StudentName       string
	CourseTitle       string
	CertificateNumber string
	IssueDate         time.Time
}

// Converts points to millimeters
func ptToMM(pt float64) float64 {
	return pt * 25.4 / 72.0
}

type templateRenderer struct {
	fontFamily *canvas.FontFamily
	ctx        *canvas.Context
}

func (tr *templateRenderer) face(sizePt float64, col color.RGBA, style canvas.FontStyle) *canvas.FontFace {
	return tr.fontFamily.Face(sizePt, col, style, canvas.FontNormal)
}

func (tr *templateRenderer) drawCenteredText(text string, sizePt float64, col color.RGBA, style canvas.FontStyle, yMM float64) {
	line := canvas.NewTextLine(tr.face(sizePt, col, style), text, canvas.Center)
	tr.ctx.DrawText(pageWidthMM/2, yMM, line)
}

func (tr *templateRenderer) drawCenteredTextAt(text string, sizePt float64, col color.RGBA, style canvas.FontStyle, xMM, yMM float64) {
	line := canvas.NewTextLine(tr.face(sizePt, col, style), text, canvas.Center)
	tr.ctx.DrawText(xMM, yMM, line)
}

func (tr *templateRenderer) drawLeftText(text string, sizePt float64, col color.RGBA, xMM, yMM float64) {
	line := canvas.NewTextLine(tr.face(sizePt, col, canvas.FontRegular), text, canvas.Left)
	tr.ctx.DrawText(xMM, yMM, line)
}

func (tr *templateRenderer) drawRect(insetMM, strokeWidthMM float64, col color.RGBA) {
	tr.ctx.SetFillColor(canvas.Transparent)
	tr.ctx.SetStrokeColor(col)
	tr.ctx.SetStrokeWidth(strokeWidthMM)
	tr.ctx.DrawPath(insetMM, insetMM, canvas.Rectangle(pageWidthMM-2*insetMM, pageHeightMM-2*insetMM))
}

func (tr *templateRenderer) drawLine(x1, x2, yMM, strokeWidthMM float64, col color.RGBA) {
	tr.ctx.SetStrokeColor(col)
	tr.ctx.SetStrokeWidth(strokeWidthMM)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(x2-x1, 0)
	tr.ctx.DrawPath(x1, yMM, p)
}

// renderTemplate draws the text-and-frame layer of the certificate document.
// QR code and signature images are composited afterwards with pdfcpu.
// presPlaceholder/deanPlaceholder request a drawn signature line when the
// corresponding image asset is missing.
func renderTemplate(fontFamily *canvas.FontFamily, data CertificateData, presPlaceholder, deanPlaceholder bool, outputPath string) error {
	c := canvas.New(pageWidthMM, pageHeightMM)
	canvasCtx := canvas.NewContext(c)
	// Change coordination from bottom-left to top-left
	canvasCtx.SetCoordSystem(canvas.CartesianIV)

	tr := &templateRenderer{fontFamily: fontFamily, ctx: canvasCtx}

	// Double frame
	tr.drawRect(ptToMM(30), ptToMM(8), psuBlue)
	tr.drawRect(ptToMM(45), ptToMM(3), gold)

	// Header
	tr.drawCenteredText("PUNTLAND STATE UNIVERSITY", 32, psuBlue, canvas.FontBold, ptToMM(120))
	tr.drawCenteredText("Garowe, Puntland State of Somalia", 18, darkBlue, canvas.FontRegular, ptToMM(150))

	// Title and divider
	tr.drawCenteredText("CERTIFICATE OF COMPLETION", 28, gold, canvas.FontBold, ptToMM(220))
	tr.drawLine(ptToMM(150), pageWidthMM-ptToMM(150), ptToMM(240), ptToMM(2), gold)

	// Body
	black := canvas.Black
	tr.drawCenteredText("This is to certify that", 16, black, canvas.FontRegular, ptToMM(290))
	tr.drawCenteredText(strings.ToUpper(data.StudentName), 24, psuBlue, canvas.FontBold, ptToMM(330))
	tr.drawCenteredText("has successfully completed all the requirements and coursework for the program of study in", 12, black, canvas.FontRegular, ptToMM(370))
	tr.drawCenteredText(data.CourseTitle, 20, darkBlue, canvas.FontBold, ptToMM(410))

	// Issue metadata, left aligned
	tr.drawLeftText(fmt.Sprintf("Date of Issue: %s", data.IssueDate.Format("January 2, 2006")), 14, black, ptToMM(100), ptToMM(480))
	tr.drawLeftText(fmt.Sprintf("Certificate No: %s", data.CertificateNumber), 14, black, ptToMM(100), ptToMM(520))

	// Caption under the QR stamp position
	tr.drawCenteredText("Scan to Verify", 10, black, canvas.FontRegular, pageHeightMM-ptToMM(205))

	// Signature blocks. Images are stamped later; lines only when missing.
	leftX := ptToMM(160)
	rightX := pageWidthMM - ptToMM(180)
	if presPlaceholder {
		tr.drawCenteredTextAt("_________________________", 12, black, canvas.FontRegular, leftX, pageHeightMM-ptToMM(150))
	}
	if deanPlaceholder {
		tr.drawCenteredTextAt("_________________________", 12, black, canvas.FontRegular, rightX, pageHeightMM-ptToMM(150))
	}

	tr.drawCenteredTextAt("PSU-President", 11, black, canvas.FontRegular, leftX, pageHeightMM-ptToMM(85))
	tr.drawCenteredTextAt("Puntland State University", 10, black, canvas.FontRegular, leftX, pageHeightMM-ptToMM(70))
	tr.drawCenteredTextAt("Dean of Faculty", 11, black, canvas.FontRegular, rightX, pageHeightMM-ptToMM(85))
	tr.drawCenteredTextAt("Puntland State University", 10, black, canvas.FontRegular, rightX, pageHeightMM-ptToMM(70))

	// Footer
	tr.drawCenteredText("This certificate is issued by Puntland State University and is valid upon verification", 10, psuBlue, canvas.FontItalic, pageHeightMM-ptToMM(50))

	if err := renderers.Write(outputPath, c); err != nil {
		return fmt.Errorf("failed to write PDF: %v", err)
	}

	return nil
}
