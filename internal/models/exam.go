package models

// Exam is a scheduled examination for a subject.
type Exam struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}
