package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

// AddAttendanceRequest is the payload for recording attendance.
type AddAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
	Subject   string `json:"subject" validate:"required"`
	Teacher   string `json:"teacher" validate:"required"`
	Notes     string `json:"notes"`
}

// AttendanceService records per-student attendance sequences.
type AttendanceService struct {
	store     store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs AttendanceService.
func NewAttendanceService(st store.Store, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{store: st, validator: validate, logger: logger}
}

// Add appends a timestamped attendance record, creating the student's
// sequence on first use.
func (s *AttendanceService) Add(req AddAttendanceRequest) (*models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}

	doc := s.store.Load()

	record := models.AttendanceRecord{
		Date:    nowISO(),
		Status:  models.AttendanceStatus(req.Status),
		Subject: req.Subject,
		Teacher: req.Teacher,
		Notes:   req.Notes,
	}
	doc.Attendance[req.StudentID] = append(doc.Attendance[req.StudentID], record)

	s.store.Save(doc)
	return &record, nil
}

// StudentAttendance returns a student's attendance sequence, empty when none
// has been recorded.
func (s *AttendanceService) StudentAttendance(studentID string) []models.AttendanceRecord {
	doc := s.store.Load()
	records := doc.Attendance[studentID]
	if records == nil {
		return []models.AttendanceRecord{}
	}
	return records
}
