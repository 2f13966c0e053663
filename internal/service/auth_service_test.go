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

func newAuthService(t *testing.T) (*AuthService, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	svc := NewAuthService(st, nil, nil, AuthConfig{
		TokenSecret: "test_secret",
		TokenExpiry: time.Hour,
		Issuer:      "gradetracker-test",
	})
	return svc, st
}

func TestAuthenticateSeededTeacher(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Authenticate(models.LoginRequest{Username: "MathTeacher", Password: "Math"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "MathTeacher", resp.User.Username)
	assert.Equal(t, models.RoleTeacher, resp.User.Role)
	assert.Greater(t, resp.ExpiresIn, int64(0))
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Authenticate(models.LoginRequest{Username: "MathTeacher", Password: "wrong"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Authenticate(models.LoginRequest{Username: "nobody", Password: "x"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestRegisterParentStripsPassword(t *testing.T) {
	svc, st := newAuthService(t)

	public, err := svc.RegisterParent(RegisterParentRequest{
		Username: "mom", Password: "secret", Name: "Mona Lisa",
	})

	require.NoError(t, err)
	assert.Equal(t, "mom", public.Username)
	assert.Equal(t, models.RoleParent, public.Role)

	stored := st.Load().Users["mom"]
	assert.Equal(t, "secret", stored.Password)
}

func TestRegisterParentDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.RegisterParent(RegisterParentRequest{Username: "mom", Password: "a", Name: "A"})
	require.NoError(t, err)

	_, err = svc.RegisterParent(RegisterParentRequest{Username: "mom", Password: "b", Name: "B"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRegisterParentSeededUsernameConflicts(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.RegisterParent(RegisterParentRequest{Username: "MathTeacher", Password: "x", Name: "X"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestCreateStudentAccountLinksBothSides(t *testing.T) {
	svc, st := newAuthService(t)
	students := NewStudentService(st, nil, nil)

	student, err := students.Add(AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 12})
	require.NoError(t, err)

	public, err := svc.CreateStudentAccount(CreateStudentAccountRequest{
		StudentID: student.ID, Username: "ana", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, public.Role)
	assert.Equal(t, "Ana Lovelace", public.Name)

	doc := st.Load()
	assert.Equal(t, student.ID, doc.Users["ana"].StudentID)
	assert.Equal(t, "ana", doc.Students[student.ID].Username)
}

func TestCreateStudentAccountUnknownStudent(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.CreateStudentAccount(CreateStudentAccountRequest{StudentID: "missing", Username: "ana"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestListTeachersSortedAndStripped(t *testing.T) {
	svc, _ := newAuthService(t)

	teachers := svc.ListTeachers()

	require.Len(t, teachers, len(models.Subjects))
	for i := 1; i < len(teachers); i++ {
		assert.LessOrEqual(t, teachers[i-1].Username, teachers[i].Username)
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Authenticate(models.LoginRequest{Username: "MathTeacher", Password: "Math"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "MathTeacher", claims.Username)
	assert.Equal(t, models.RoleTeacher, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc, st := newAuthService(t)

	resp, err := svc.Authenticate(models.LoginRequest{Username: "MathTeacher", Password: "Math"})
	require.NoError(t, err)

	other := NewAuthService(st, nil, nil, AuthConfig{TokenSecret: "different", TokenExpiry: time.Hour})
	_, err = other.ValidateToken(resp.AccessToken)
	assert.Error(t, err)
}
