package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

func TestAddStudentSeedsEmptyGradeSequences(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewStudentService(st, nil, nil)

	student, err := svc.Add(AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 12})
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.NotEmpty(t, student.CreatedAt)

	grades := st.Load().Grades[student.ID]
	require.Len(t, grades, len(models.Subjects))
	for _, subject := range models.Subjects {
		entries, ok := grades[subject]
		require.True(t, ok, subject)
		assert.Empty(t, entries)
	}
}

func TestAddStudentRejectsInvalidAge(t *testing.T) {
	svc := NewStudentService(store.NewMemoryStore(), nil, nil)

	_, err := svc.Add(AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 0})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAddStudentWithUsernameCreatesEmptyPasswordAccount(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewStudentService(st, nil, nil)

	student, err := svc.Add(AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 12, Username: "ana"})
	require.NoError(t, err)

	user, ok := st.Load().Users["ana"]
	require.True(t, ok)
	assert.Equal(t, "", user.Password)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "Ana Lovelace", user.Name)
	assert.Equal(t, student.ID, user.StudentID)
}

func TestAddStudentTakenUsernameSkipsAccount(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewStudentService(st, nil, nil)

	student, err := svc.Add(AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 12, Username: "MathTeacher"})
	require.NoError(t, err)

	doc := st.Load()
	assert.Equal(t, models.RoleTeacher, doc.Users["MathTeacher"].Role)
	assert.Contains(t, doc.Students, student.ID)
}

func TestListStudentsOldestFirst(t *testing.T) {
	st := store.NewMemoryStore()
	doc := st.Load()
	doc.Students["b"] = models.Student{ID: "b", Name: "Ben", CreatedAt: "2026-02-01T00:00:00Z"}
	doc.Students["a"] = models.Student{ID: "a", Name: "Ana", CreatedAt: "2026-01-01T00:00:00Z"}
	st.Save(doc)

	students := NewStudentService(st, nil, nil).List()
	require.Len(t, students, 2)
	assert.Equal(t, "a", students[0].ID)
	assert.Equal(t, "b", students[1].ID)
}

func TestListByParent(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewStudentService(st, nil, nil)

	mine, err := svc.Add(AddStudentRequest{Name: "Ana", Surname: "A", Age: 12, ParentID: "mom"})
	require.NoError(t, err)
	_, err = svc.Add(AddStudentRequest{Name: "Ben", Surname: "B", Age: 13, ParentID: "dad"})
	require.NoError(t, err)

	students := svc.ListByParent("mom")
	require.Len(t, students, 1)
	assert.Equal(t, mine.ID, students[0].ID)
}

func TestDeleteStudentCascades(t *testing.T) {
	st := store.NewMemoryStore()
	students := NewStudentService(st, nil, nil)
	auth := NewAuthService(st, nil, nil, AuthConfig{TokenSecret: "s", TokenExpiry: time.Hour})
	grades := NewGradeService(st, nil, nil)
	attendance := NewAttendanceService(st, nil, nil)
	assignments := NewAssignmentService(st, nil, nil)

	student, err := students.Add(AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 12})
	require.NoError(t, err)
	_, err = auth.CreateStudentAccount(CreateStudentAccountRequest{StudentID: student.ID, Username: "ana", Password: "pw"})
	require.NoError(t, err)
	_, err = grades.Add(AddGradeRequest{StudentID: student.ID, Subject: "Math", Grade: 90, Teacher: "MathTeacher"})
	require.NoError(t, err)
	_, err = attendance.Add(AddAttendanceRequest{StudentID: student.ID, Status: "present", Subject: "Math", Teacher: "MathTeacher"})
	require.NoError(t, err)
	_, err = assignments.UpsertSubmission(UpsertSubmissionRequest{StudentID: student.ID, AssignmentID: "a1", Status: "submitted"})
	require.NoError(t, err)

	require.NoError(t, students.Delete(student.ID))

	doc := st.Load()
	assert.NotContains(t, doc.Students, student.ID)
	assert.NotContains(t, doc.Users, "ana")
	assert.NotContains(t, doc.Grades, student.ID)
	assert.NotContains(t, doc.Attendance, student.ID)
	assert.NotContains(t, doc.Submissions, student.ID)
}

func TestDeleteStudentUnknown(t *testing.T) {
	svc := NewStudentService(store.NewMemoryStore(), nil, nil)

	err := svc.Delete("missing")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
