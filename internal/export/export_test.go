package export

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/rmacalintal/studentportal/internal/models"
)

func TestStudents(t *testing.T) {
	students := []models.Student{
		{ID: "S1", Name: "Juan dela Cruz", Age: 19, YearLevel: 2, Section: "A", Course: "BSCS"},
		{ID: "S2", Name: "Maria Santos", Age: 20, YearLevel: 3, Section: "B", Course: "BSIT"},
	}

	buf, err := Students(students)
	if err != nil {
		t.Fatalf("Students failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Workbook is not readable: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "students" {
		t.Fatalf("Expected single sheet %q, got %v", "students", sheets)
	}

	rows, err := f.GetRows("students")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"id", "name", "age", "year_level", "section", "course"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("Header col %d: got %q, want %q", i, rows[0][i], h)
		}
	}

	wantFirst := []string{"S1", "Juan dela Cruz", "19", "2", "A", "BSCS"}
	for i, v := range wantFirst {
		if rows[1][i] != v {
			t.Errorf("Row 1 col %d: got %q, want %q", i, rows[1][i], v)
		}
	}
}

func TestStudentsEmptyRoster(t *testing.T) {
	buf, err := Students(nil)
	if err != nil {
		t.Fatalf("Students failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Workbook is not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("students")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header row only, got %d rows", len(rows))
	}
}

func TestGradeCertificate(t *testing.T) {
	user := &models.User{ID: "U1", Name: "Maria Santos", Course: "BSCS", Year: 3}

	t.Run("renders with grades", func(t *testing.T) {
		grades := []models.Grade{
			{StudentID: "U1", Subject: "Mathematics", Grade: 90},
			{StudentID: "U1", Subject: "Science", Grade: 85.5},
		}

		buf, err := GradeCertificate(user, grades)
		if err != nil {
			t.Fatalf("GradeCertificate failed: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			t.Error("Output is not a PDF document")
		}
	})

	t.Run("renders with zero grades", func(t *testing.T) {
		buf, err := GradeCertificate(user, nil)
		if err != nil {
			t.Fatalf("GradeCertificate failed: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			t.Error("Output is not a PDF document")
		}

		// The content streams are compressed, so assert structure by size:
		// the gradeless certificate still carries the title, student lines
		// and table header, making it larger than a bare page, and each
		// grade row adds further content on top of it.
		blank := gofpdf.New("P", "mm", "A4", "")
		blank.AddPage()
		var bare bytes.Buffer
		if err := blank.Output(&bare); err != nil {
			t.Fatalf("Blank page failed: %v", err)
		}
		if buf.Len() <= bare.Len() {
			t.Errorf("Certificate (%d bytes) carries no content beyond a blank page (%d bytes)", buf.Len(), bare.Len())
		}

		graded, err := GradeCertificate(user, []models.Grade{
			{StudentID: "U1", Subject: "Mathematics", Grade: 90},
		})
		if err != nil {
			t.Fatalf("GradeCertificate failed: %v", err)
		}
		if graded.Len() <= buf.Len() {
			t.Errorf("Grade row added no content: %d bytes with a row, %d without", graded.Len(), buf.Len())
		}
	})
}

func TestCertificateFilename(t *testing.T) {
	if got := CertificateFilename("U1"); got != "U1_grades.pdf" {
		t.Errorf("CertificateFilename: got %q, want %q", got, "U1_grades.pdf")
	}
}
