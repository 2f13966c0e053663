package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gradetracker-api/internal/models"
)

func TestNewDocumentSeedsTeacherPerSubject(t *testing.T) {
	doc := NewDocument()

	require.Len(t, doc.Users, len(models.Subjects))

	english, ok := doc.Users["EnglishTeacher"]
	require.True(t, ok)
	assert.Equal(t, "English", english.Password)
	assert.Equal(t, models.RoleTeacher, english.Role)
	assert.Equal(t, "English", english.Subject)
	assert.Equal(t, "English Teacher", english.Name)

	cs, ok := doc.Users["ComputerScienceTeacher"]
	require.True(t, ok)
	assert.Equal(t, "ComputerScience", cs.Password)
	assert.Equal(t, "Computer Science", cs.Subject)

	pe, ok := doc.Users["PhysicalEducationTeacher"]
	require.True(t, ok)
	assert.Equal(t, "PhysicalEducation", pe.Password)

	assert.Equal(t, SchemaVersion, doc.SchemaVersion)
	assert.NotNil(t, doc.Students)
	assert.NotNil(t, doc.Grades)
	assert.NotNil(t, doc.Messages)
	assert.NotNil(t, doc.Attendance)
	assert.NotNil(t, doc.Assignments)
	assert.NotNil(t, doc.Submissions)
	assert.NotNil(t, doc.Exams)
}

func TestMigrateBackfillsLegacyShape(t *testing.T) {
	doc := &Document{
		Users: map[string]models.User{
			"mom": {Username: "mom", Role: models.RoleParent},
		},
	}

	changed := migrate(doc)

	require.True(t, changed)
	assert.Equal(t, SchemaVersion, doc.SchemaVersion)
	assert.Contains(t, doc.Users, "mom")
	assert.NotNil(t, doc.Students)
	assert.NotNil(t, doc.Grades)
	assert.NotNil(t, doc.Messages)
	assert.NotNil(t, doc.Attendance)
	assert.NotNil(t, doc.Assignments)
	assert.NotNil(t, doc.Submissions)
	assert.NotNil(t, doc.Exams)
}

func TestMigrateCurrentVersionNoop(t *testing.T) {
	doc := NewDocument()
	assert.False(t, migrate(doc))
}
