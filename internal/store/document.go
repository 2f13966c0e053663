package store

import (
	"strings"

	"github.com/noah-isme/gradetracker-api/internal/models"
)

// SchemaVersion is the current document shape. Version 0 (field absent) is
// the legacy shape whose optional collections may be missing entirely.
const SchemaVersion = 1

// Document is the single serialized value holding every collection. Keys are
// usernames for users and generated ids everywhere else; grades, attendance
// and submissions are keyed by student id.
type Document struct {
	SchemaVersion int `json:"schemaVersion,omitempty"`

	Users       map[string]models.User               `json:"users"`
	Students    map[string]models.Student            `json:"students"`
	Grades      map[string]map[string][]models.Grade `json:"grades"`
	Messages    map[string]models.Message            `json:"messages"`
	Attendance  map[string][]models.AttendanceRecord `json:"attendance"`
	Assignments map[string]models.Assignment         `json:"assignments"`
	Submissions map[string][]models.Submission       `json:"submissions"`
	Exams       map[string]models.Exam               `json:"exams"`
}

// NewDocument builds a fresh document seeded with one fixed teacher account
// per subject. The seeded credentials are the subject name with spaces
// removed, a legacy contract carried over from the stored data this layout
// replaces.
func NewDocument() *Document {
	users := make(map[string]models.User, len(models.Subjects))
	for _, subject := range models.Subjects {
		compact := strings.ReplaceAll(subject, " ", "")
		username := compact + "Teacher"
		users[username] = models.User{
			Username: username,
			Password: compact,
			Role:     models.RoleTeacher,
			Subject:  subject,
			Name:     subject + " Teacher",
		}
	}

	return &Document{
		SchemaVersion: SchemaVersion,
		Users:         users,
		Students:      map[string]models.Student{},
		Grades:        map[string]map[string][]models.Grade{},
		Messages:      map[string]models.Message{},
		Attendance:    map[string][]models.AttendanceRecord{},
		Assignments:   map[string]models.Assignment{},
		Submissions:   map[string][]models.Submission{},
		Exams:         map[string]models.Exam{},
	}
}

// migrate steps a loaded document up to the current schema version and
// reports whether anything changed and a re-save is due. The version 0 to 1
// step back-fills collections that older stored shapes did not carry.
func migrate(doc *Document) bool {
	if doc.SchemaVersion >= SchemaVersion {
		return false
	}

	if doc.Users == nil {
		doc.Users = map[string]models.User{}
	}
	if doc.Students == nil {
		doc.Students = map[string]models.Student{}
	}
	if doc.Grades == nil {
		doc.Grades = map[string]map[string][]models.Grade{}
	}
	if doc.Messages == nil {
		doc.Messages = map[string]models.Message{}
	}
	if doc.Attendance == nil {
		doc.Attendance = map[string][]models.AttendanceRecord{}
	}
	if doc.Assignments == nil {
		doc.Assignments = map[string]models.Assignment{}
	}
	if doc.Submissions == nil {
		doc.Submissions = map[string][]models.Submission{}
	}
	if doc.Exams == nil {
		doc.Exams = map[string]models.Exam{}
	}

	doc.SchemaVersion = SchemaVersion
	return true
}
