package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/service"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
	"github.com/noah-isme/gradetracker-api/pkg/response"
)

// AuthHandler exposes authentication and account endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Authenticate a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.auth.Authenticate(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Register godoc
// @Summary Register a parent account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body service.RegisterParentRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	user, err := h.auth.RegisterParent(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// CreateStudentAccount godoc
// @Summary Create a login for an existing student
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentAccountRequest true "Account payload"
// @Success 201 {object} response.Envelope
// @Router /auth/student-accounts [post]
func (h *AuthHandler) CreateStudentAccount(c *gin.Context) {
	var req service.CreateStudentAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	user, err := h.auth.CreateStudentAccount(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// ListTeachers godoc
// @Summary List teacher accounts
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *AuthHandler) ListTeachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.auth.ListTeachers())
}

// ListParents godoc
// @Summary List parent accounts
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /parents [get]
func (h *AuthHandler) ListParents(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.auth.ListParents())
}
