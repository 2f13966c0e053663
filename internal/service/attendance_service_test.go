package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

func TestAddAttendanceCreatesSequence(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewAttendanceService(st, nil, nil)

	record, err := svc.Add(AddAttendanceRequest{
		StudentID: "s1", Status: "late", Subject: "Math", Teacher: "MathTeacher", Notes: "traffic",
	})

	require.NoError(t, err)
	assert.Equal(t, models.AttendanceLate, record.Status)
	assert.NotEmpty(t, record.Date)

	records := svc.StudentAttendance("s1")
	require.Len(t, records, 1)
	assert.Equal(t, "traffic", records[0].Notes)
}

func TestAddAttendanceInvalidStatus(t *testing.T) {
	svc := NewAttendanceService(store.NewMemoryStore(), nil, nil)

	_, err := svc.Add(AddAttendanceRequest{StudentID: "s1", Status: "vanished", Subject: "Math", Teacher: "t"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestStudentAttendanceEmptyWhenNoneRecorded(t *testing.T) {
	svc := NewAttendanceService(store.NewMemoryStore(), nil, nil)

	records := svc.StudentAttendance("s1")

	assert.NotNil(t, records)
	assert.Empty(t, records)
}
