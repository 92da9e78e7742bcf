package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/rmacalintal/studentportal/internal/models"
)

// CertificateFilename returns the attachment name for a user's grade
// certificate.
func CertificateFilename(userID string) string {
	return userID + "_grades.pdf"
}

// GradeCertificate renders a one-page "Certificate of Grades" for the given
// user: title, student info, then a bordered two-column Subject/Grade table
// with one row per grade record. Grades are rendered in the order given; a
// user with no grades gets the header row only.
func GradeCertificate(user *models.User, grades []models.Grade) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(200, 10, "Certificate of Grades", "", 1, "C", false, 0, "")
	pdf.CellFormat(200, 10, fmt.Sprintf("Student: %s", user.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(200, 10, fmt.Sprintf("Course: %s, Year: %d", user.Course, user.Year), "", 1, "L", false, 0, "")

	pdf.CellFormat(90, 10, "Subject", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 10, "Grade", "1", 1, "L", false, 0, "")
	for _, g := range grades {
		pdf.CellFormat(90, 10, g.Subject, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 10, strconv.FormatFloat(g.Grade, 'g', -1, 64), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate: %w", err)
	}
	return &buf, nil
}
