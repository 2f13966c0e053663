package service

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

// AddGradeRequest is the payload for recording a grade. The grade value is
// accepted without range checks at this layer; the UI constrains it to 0-100.
type AddGradeRequest struct {
	StudentID string  `json:"studentId" validate:"required"`
	Subject   string  `json:"subject" validate:"required"`
	Grade     float64 `json:"grade"`
	Teacher   string  `json:"teacher" validate:"required"`
	Comment   string  `json:"comment"`
}

// GradeService records grades and derives GPA figures.
type GradeService struct {
	store     store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs GradeService.
func NewGradeService(st store.Store, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{store: st, validator: validate, logger: logger}
}

// Add appends a timestamped grade entry to the subject's sequence.
func (s *GradeService) Add(req AddGradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	if !models.ValidSubject(req.Subject) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown subject")
	}

	doc := s.store.Load()
	grades, ok := doc.Grades[req.StudentID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	entry := models.Grade{
		Grade:   req.Grade,
		Teacher: req.Teacher,
		Date:    nowISO(),
		Comment: req.Comment,
	}
	grades[req.Subject] = append(grades[req.Subject], entry)

	s.store.Save(doc)
	return &entry, nil
}

// StudentGrades returns the full subject-to-entries mapping for a student.
// The mapping always contains every subject in the fixed set.
func (s *GradeService) StudentGrades(studentID string) (map[string][]models.Grade, error) {
	doc := s.store.Load()
	grades, ok := doc.Grades[studentID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return grades, nil
}

// CalculateGPA computes the mean of per-subject means. Subjects with no
// grades are excluded entirely rather than counted as zero. Unknown students
// and students without any grades yield 0.
func (s *GradeService) CalculateGPA(studentID string) float64 {
	doc := s.store.Load()
	return gpaFromGrades(doc.Grades[studentID])
}

func gpaFromGrades(grades map[string][]models.Grade) float64 {
	if grades == nil {
		return 0
	}

	totalPoints := 0.0
	gradedSubjects := 0
	for _, entries := range grades {
		if len(entries) == 0 {
			continue
		}
		sum := 0.0
		for _, entry := range entries {
			sum += entry.Grade
		}
		totalPoints += sum / float64(len(entries))
		gradedSubjects++
	}

	if gradedSubjects == 0 {
		return 0
	}
	return totalPoints / float64(gradedSubjects)
}

func subjectAverage(entries []models.Grade) (float64, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, entry := range entries {
		sum += entry.Grade
	}
	return sum / float64(len(entries)), true
}

// subjectOrder lists the subjects of a grade collection in the fixed-set
// order, with any stray legacy keys appended alphabetically.
func subjectOrder(grades map[string][]models.Grade) []string {
	order := make([]string, 0, len(grades))
	for _, subject := range models.Subjects {
		if _, ok := grades[subject]; ok {
			order = append(order, subject)
		}
	}
	extras := make([]string, 0)
	for subject := range grades {
		if !models.ValidSubject(subject) {
			extras = append(extras, subject)
		}
	}
	sort.Strings(extras)
	return append(order, extras...)
}
