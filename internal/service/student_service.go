package service

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

// AddStudentRequest is the payload for enrolling a new student.
type AddStudentRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Age      int    `json:"age" validate:"required,gt=0"`
	ParentID string `json:"parentId"`
	Username string `json:"username"`
}

// StudentService manages student records and their cascading collections.
type StudentService struct {
	store     store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(st store.Store, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, validator: validate, logger: logger}
}

// Add enrolls a student and initializes an empty grade sequence for every
// subject. When a username is supplied a student login is created in the same
// write with an empty password; the account is skipped (not an error) if the
// username is already taken.
func (s *StudentService) Add(req AddStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	doc := s.store.Load()

	student := models.Student{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Surname:   req.Surname,
		Age:       req.Age,
		ParentID:  req.ParentID,
		Username:  req.Username,
		CreatedAt: nowISO(),
	}
	doc.Students[student.ID] = student

	grades := make(map[string][]models.Grade, len(models.Subjects))
	for _, subject := range models.Subjects {
		grades[subject] = []models.Grade{}
	}
	doc.Grades[student.ID] = grades

	if req.Username != "" {
		if _, taken := doc.Users[req.Username]; taken {
			s.logger.Warn("student account skipped, username already taken",
				zap.String("username", req.Username), zap.String("student_id", student.ID))
		} else {
			doc.Users[req.Username] = models.User{
				Username:  req.Username,
				Password:  "",
				Role:      models.RoleStudent,
				Name:      student.Name + " " + student.Surname,
				StudentID: student.ID,
			}
		}
	}

	s.store.Save(doc)
	return &student, nil
}

// Get returns one student record.
func (s *StudentService) Get(studentID string) (*models.Student, error) {
	doc := s.store.Load()
	student, ok := doc.Students[studentID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &student, nil
}

// List returns every student, oldest first.
func (s *StudentService) List() []models.Student {
	doc := s.store.Load()
	return sortedStudents(doc.Students, func(models.Student) bool { return true })
}

// ListByParent returns the students linked to a parent account.
func (s *StudentService) ListByParent(parentUsername string) []models.Student {
	doc := s.store.Load()
	return sortedStudents(doc.Students, func(st models.Student) bool {
		return st.ParentID == parentUsername
	})
}

// Delete removes a student and cascades to its linked login, grades,
// attendance and submissions. Messages and the assignments or exams the
// student interacted with are left untouched.
func (s *StudentService) Delete(studentID string) error {
	doc := s.store.Load()

	student, ok := doc.Students[studentID]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	if student.Username != "" {
		delete(doc.Users, student.Username)
	}
	delete(doc.Students, studentID)
	delete(doc.Grades, studentID)
	delete(doc.Attendance, studentID)
	delete(doc.Submissions, studentID)

	s.store.Save(doc)
	return nil
}

func sortedStudents(students map[string]models.Student, keep func(models.Student) bool) []models.Student {
	result := make([]models.Student, 0, len(students))
	for _, student := range students {
		if keep(student) {
			result = append(result, student)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].ID < result[j].ID
	})
	return result
}
