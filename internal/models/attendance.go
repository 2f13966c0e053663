package models

// AttendanceStatus enumerates the recordable attendance outcomes.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// AttendanceRecord is one entry in a student's attendance sequence.
type AttendanceRecord struct {
	Date    string           `json:"date"`
	Status  AttendanceStatus `json:"status"`
	Subject string           `json:"subject"`
	Teacher string           `json:"teacher"`
	Notes   string           `json:"notes,omitempty"`
}
