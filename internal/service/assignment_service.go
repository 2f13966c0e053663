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

// CreateAssignmentRequest is the payload for publishing an assignment.
type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
	CreatedBy   string `json:"createdBy" validate:"required"`
}

// UpsertSubmissionRequest replaces or appends a student's submission for one
// assignment.
type UpsertSubmissionRequest struct {
	StudentID    string   `json:"studentId" validate:"required"`
	AssignmentID string   `json:"assignmentId" validate:"required"`
	Status       string   `json:"status" validate:"required,oneof=pending submitted late graded"`
	Grade        *float64 `json:"grade"`
	Feedback     string   `json:"feedback"`
}

// AssignmentService manages assignments and their submissions.
type AssignmentService struct {
	store     store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssignmentService constructs AssignmentService.
func NewAssignmentService(st store.Store, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{store: st, validator: validate, logger: logger}
}

// Create inserts an assignment. No ownership or duplicate checks apply.
func (s *AssignmentService) Create(req CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	if !models.ValidSubject(req.Subject) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown subject")
	}

	doc := s.store.Load()

	assignment := models.Assignment{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		CreatedBy:   req.CreatedBy,
		CreatedAt:   nowISO(),
	}
	doc.Assignments[assignment.ID] = assignment

	s.store.Save(doc)
	return &assignment, nil
}

// List returns every assignment, oldest first.
func (s *AssignmentService) List() []models.Assignment {
	doc := s.store.Load()
	return sortedAssignments(doc.Assignments, "")
}

// ListBySubject returns the assignments published for one subject.
func (s *AssignmentService) ListBySubject(subject string) []models.Assignment {
	doc := s.store.Load()
	return sortedAssignments(doc.Assignments, subject)
}

// Delete removes an assignment and filters it out of every student's
// submission sequence.
func (s *AssignmentService) Delete(assignmentID string) error {
	doc := s.store.Load()

	if _, ok := doc.Assignments[assignmentID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	delete(doc.Assignments, assignmentID)

	for studentID, submissions := range doc.Submissions {
		kept := submissions[:0]
		for _, submission := range submissions {
			if submission.AssignmentID != assignmentID {
				kept = append(kept, submission)
			}
		}
		doc.Submissions[studentID] = kept
	}

	s.store.Save(doc)
	return nil
}

// UpsertSubmission replaces the existing submission for the
// (student, assignment) pair or appends a new one. SubmittedAt is stamped
// only when the status is submitted or late.
func (s *AssignmentService) UpsertSubmission(req UpsertSubmissionRequest) (*models.Submission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}

	doc := s.store.Load()

	status := models.SubmissionStatus(req.Status)
	submission := models.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		Status:       status,
		Grade:        req.Grade,
		Feedback:     req.Feedback,
	}
	if status == models.SubmissionSubmitted || status == models.SubmissionLate {
		submission.SubmittedAt = nowISO()
	}

	submissions := doc.Submissions[req.StudentID]
	replaced := false
	for i, existing := range submissions {
		if existing.AssignmentID == req.AssignmentID {
			submissions[i] = submission
			replaced = true
			break
		}
	}
	if !replaced {
		submissions = append(submissions, submission)
	}
	doc.Submissions[req.StudentID] = submissions

	s.store.Save(doc)
	return &submission, nil
}

// StudentSubmissions returns a student's submission sequence, empty when none
// exists.
func (s *AssignmentService) StudentSubmissions(studentID string) []models.Submission {
	doc := s.store.Load()
	submissions := doc.Submissions[studentID]
	if submissions == nil {
		return []models.Submission{}
	}
	return submissions
}

func sortedAssignments(assignments map[string]models.Assignment, subject string) []models.Assignment {
	result := make([]models.Assignment, 0, len(assignments))
	for _, assignment := range assignments {
		if subject != "" && assignment.Subject != subject {
			continue
		}
		result = append(result, assignment)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].ID < result[j].ID
	})
	return result
}
