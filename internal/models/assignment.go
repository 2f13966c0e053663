package models

// Assignment is a piece of homework published for a subject.
type Assignment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	DueDate     string `json:"dueDate"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   string `json:"createdAt"`
}

// SubmissionStatus enumerates the lifecycle of a student's submission.
type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionLate      SubmissionStatus = "late"
	SubmissionGraded    SubmissionStatus = "graded"
)

// Submission tracks a student's progress on one assignment. At most one
// submission exists per (student, assignment) pair.
type Submission struct {
	AssignmentID string           `json:"assignmentId"`
	StudentID    string           `json:"studentId"`
	Status       SubmissionStatus `json:"status"`
	SubmittedAt  string           `json:"submittedAt,omitempty"`
	Grade        *float64         `json:"grade,omitempty"`
	Feedback     string           `json:"feedback,omitempty"`
}
