package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gradetracker-api/internal/service"
	"github.com/noah-isme/gradetracker-api/internal/store"
)

func newStudentHandler(t *testing.T) (*StudentHandler, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	students := service.NewStudentService(st, nil, nil)
	grades := service.NewGradeService(st, nil, nil)
	return NewStudentHandler(students, grades), st
}

func TestStudentHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, st := newStudentHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.AddStudentRequest{Name: "Ana", Surname: "Lovelace", Age: 12})
	req, _ := http.NewRequest(http.MethodPost, "/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, st.Load().Students, 1)
}

func TestStudentHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newStudentHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/students", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newStudentHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/students/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentHandlerGPAUnknownStudentIsZero(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newStudentHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/students/missing/gpa", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GPA(c)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			GPA float64 `json:"gpa"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 0.0, envelope.Data.GPA)
}
