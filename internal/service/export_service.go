package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
	"github.com/noah-isme/gradetracker-api/pkg/export"
)

// Export formats accepted by the report endpoints.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ReportFile is a rendered export ready to be served.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders per-student report cards from the document.
type ExportService struct {
	store  store.Store
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs ExportService.
func NewExportService(st store.Store, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{store: st, csv: csv, pdf: pdf, logger: logger}
}

// ReportCard renders a student's per-subject averages and GPA in the
// requested format.
func (s *ExportService) ReportCard(studentID, format string) (*ReportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported format")
	}

	doc := s.store.Load()
	student, ok := doc.Students[studentID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	dataset := reportDataset(doc, studentID)
	title := fmt.Sprintf("Report Card: %s %s", student.Name, student.Surname)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPDF:
		data, err = s.pdf.Render(dataset, title)
	default:
		data, err = s.csv.Render(dataset)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	return &ReportFile{
		Filename:    fmt.Sprintf("report-card-%s.%s", studentID, format),
		ContentType: contentTypeFor(format),
		Data:        data,
	}, nil
}

func reportDataset(doc *store.Document, studentID string) export.Dataset {
	headers := []string{"Subject", "Grades", "Average"}
	grades := doc.Grades[studentID]

	rows := make([]map[string]string, 0, len(grades)+1)
	for _, subject := range subjectOrder(grades) {
		entries := grades[subject]
		row := map[string]string{
			"Subject": subject,
			"Grades":  fmt.Sprintf("%d", len(entries)),
			"Average": "",
		}
		if avg, ok := subjectAverage(entries); ok {
			row["Average"] = fmt.Sprintf("%.2f", avg)
		}
		rows = append(rows, row)
	}

	rows = append(rows, map[string]string{
		"Subject": "GPA",
		"Grades":  "",
		"Average": fmt.Sprintf("%.2f", gpaFromGrades(grades)),
	})

	return export.Dataset{Headers: headers, Rows: rows}
}

func contentTypeFor(format string) string {
	if format == FormatPDF {
		return "application/pdf"
	}
	return "text/csv"
}
