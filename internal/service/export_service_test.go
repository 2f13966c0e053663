package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

func newExportFixture(t *testing.T) (*ExportService, string) {
	t.Helper()
	st := store.NewMemoryStore()
	student, err := NewStudentService(st, nil, nil).Add(AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 12})
	require.NoError(t, err)

	grades := NewGradeService(st, nil, nil)
	for _, req := range []AddGradeRequest{
		{StudentID: student.ID, Subject: "Math", Grade: 80, Teacher: "t"},
		{StudentID: student.ID, Subject: "Math", Grade: 90, Teacher: "t"},
		{StudentID: student.ID, Subject: "English", Grade: 70, Teacher: "t"},
	} {
		_, err := grades.Add(req)
		require.NoError(t, err)
	}

	return NewExportService(st, nil, nil, nil), student.ID
}

func TestReportCardCSV(t *testing.T) {
	svc, studentID := newExportFixture(t)

	file, err := svc.ReportCard(studentID, "csv")

	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "report-card-"+studentID+".csv", file.Filename)

	body := string(file.Data)
	assert.Contains(t, body, "Subject,Grades,Average")
	assert.Contains(t, body, "Math,2,85.00")
	assert.Contains(t, body, "English,1,70.00")
	assert.Contains(t, body, "GPA,,77.50")

	// English precedes Math in the fixed subject order.
	assert.Less(t, strings.Index(body, "English"), strings.Index(body, "Math"))
}

func TestReportCardDefaultsToCSV(t *testing.T) {
	svc, studentID := newExportFixture(t)

	file, err := svc.ReportCard(studentID, "")

	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestReportCardPDF(t *testing.T) {
	svc, studentID := newExportFixture(t)

	file, err := svc.ReportCard(studentID, "pdf")

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestReportCardUnsupportedFormat(t *testing.T) {
	svc, studentID := newExportFixture(t)

	_, err := svc.ReportCard(studentID, "xlsx")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportCardUnknownStudent(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, err := svc.ReportCard("missing", "csv")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
