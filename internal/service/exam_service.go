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

// CreateExamRequest is the payload for scheduling an exam.
type CreateExamRequest struct {
	Title     string `json:"title" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	CreatedBy string `json:"createdBy" validate:"required"`
}

// ExamService manages the exam schedule.
type ExamService struct {
	store     store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExamService constructs ExamService.
func NewExamService(st store.Store, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{store: st, validator: validate, logger: logger}
}

// Create inserts an exam with a generated id and creation timestamp.
func (s *ExamService) Create(req CreateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}
	if !models.ValidSubject(req.Subject) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown subject")
	}

	doc := s.store.Load()

	exam := models.Exam{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Subject:   req.Subject,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedBy: req.CreatedBy,
		CreatedAt: nowISO(),
	}
	doc.Exams[exam.ID] = exam

	s.store.Save(doc)
	return &exam, nil
}

// List returns every scheduled exam, oldest first.
func (s *ExamService) List() []models.Exam {
	doc := s.store.Load()
	return sortedExams(doc.Exams, "")
}

// ListBySubject returns the exams scheduled for one subject.
func (s *ExamService) ListBySubject(subject string) []models.Exam {
	doc := s.store.Load()
	return sortedExams(doc.Exams, subject)
}

// Delete removes an exam. Nothing cascades.
func (s *ExamService) Delete(examID string) error {
	doc := s.store.Load()

	if _, ok := doc.Exams[examID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	delete(doc.Exams, examID)

	s.store.Save(doc)
	return nil
}

func sortedExams(exams map[string]models.Exam, subject string) []models.Exam {
	result := make([]models.Exam, 0, len(exams))
	for _, exam := range exams {
		if subject != "" && exam.Subject != subject {
			continue
		}
		result = append(result, exam)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].ID < result[j].ID
	})
	return result
}
