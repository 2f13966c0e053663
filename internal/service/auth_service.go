package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	TokenSecret string
	TokenExpiry time.Duration
	Issuer      string
}

// RegisterParentRequest is the payload for parent self-registration.
type RegisterParentRequest struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Name           string `json:"name" validate:"required"`
	ProfilePicture string `json:"profilePicture"`
}

// CreateStudentAccountRequest links a login to an existing student record.
// The password may be blank; accounts created alongside a new student start
// without one and the UI prompts for it later.
type CreateStudentAccountRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password"`
}

// AuthService provides authentication and account-management use cases over
// the document store. Credential checks are exact plaintext matches against
// the stored user record, preserving the legacy document contract.
type AuthService struct {
	store     store.Store
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(st store.Store, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{store: st, validator: validate, logger: logger, config: config}
}

// Authenticate verifies credentials and returns an issued access token plus
// the user with its password stripped.
func (s *AuthService) Authenticate(req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	doc := s.store.Load()
	user, ok := doc.Users[req.Username]
	if !ok || user.Password != req.Password {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid username or password")
	}

	accessToken, expiresAt, err := s.generateAccessToken(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	issuedAt := time.Now().UTC()
	return &models.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
		User:        user.Public(),
		IssuedAt:    issuedAt,
	}, nil
}

// RegisterParent inserts a parent-role account. Usernames are globally unique
// across all roles.
func (s *AuthService) RegisterParent(req RegisterParentRequest) (*models.PublicUser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid register payload")
	}

	doc := s.store.Load()
	if _, exists := doc.Users[req.Username]; exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already taken")
	}

	user := models.User{
		Username:       req.Username,
		Password:       req.Password,
		Role:           models.RoleParent,
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
	}
	doc.Users[req.Username] = user
	s.store.Save(doc)

	public := user.Public()
	return &public, nil
}

// CreateStudentAccount creates a student-role login linked to a student
// record and sets the student's username back-reference. Both sides of the
// link are written in a single load-save cycle.
func (s *AuthService) CreateStudentAccount(req CreateStudentAccountRequest) (*models.PublicUser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student account payload")
	}

	doc := s.store.Load()
	if _, exists := doc.Users[req.Username]; exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already taken")
	}
	student, ok := doc.Students[req.StudentID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	user := models.User{
		Username:  req.Username,
		Password:  req.Password,
		Role:      models.RoleStudent,
		Name:      student.Name + " " + student.Surname,
		StudentID: req.StudentID,
	}
	doc.Users[req.Username] = user

	student.Username = req.Username
	doc.Students[req.StudentID] = student

	s.store.Save(doc)

	public := user.Public()
	return &public, nil
}

// ListTeachers returns every teacher account, passwords stripped.
func (s *AuthService) ListTeachers() []models.PublicUser {
	return s.listByRole(models.RoleTeacher)
}

// ListParents returns every parent account, passwords stripped.
func (s *AuthService) ListParents() []models.PublicUser {
	return s.listByRole(models.RoleParent)
}

func (s *AuthService) listByRole(role models.UserRole) []models.PublicUser {
	doc := s.store.Load()
	users := make([]models.PublicUser, 0)
	for _, user := range doc.Users {
		if user.Role == role {
			users = append(users, user.Public())
		}
	}
	sortPublicUsers(users)
	return users
}

func sortPublicUsers(users []models.PublicUser) {
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(user models.User) (string, time.Time, error) {
	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.TokenExpiry)
	claims := &models.JWTClaims{
		Username: user.Username,
		Role:     user.Role,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
