package models

// Subjects is the closed set of taught subjects. A student's grade collection
// always carries an entry (possibly empty) for every subject in this list.
var Subjects = []string{
	"English",
	"Math",
	"Biology",
	"Chemistry",
	"Physics",
	"History",
	"Geography",
	"Computer Science",
	"Art",
	"Physical Education",
}

// ValidSubject reports whether the subject belongs to the fixed set.
func ValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Grade is a single graded entry within a subject's ordered sequence.
// Dates are ISO-8601 strings throughout the document.
type Grade struct {
	Grade   float64 `json:"grade"`
	Teacher string  `json:"teacher"`
	Date    string  `json:"date"`
	Comment string  `json:"comment,omitempty"`
}
