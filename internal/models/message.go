package models

// Message is a threaded conversation starter between two users. Replies hang
// off the message and carry no read state of their own.
type Message struct {
	ID        string   `json:"id"`
	From      string   `json:"from"`
	FromRole  UserRole `json:"fromRole"`
	To        string   `json:"to"`
	ToRole    UserRole `json:"toRole,omitempty"`
	Subject   string   `json:"subject"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
	Read      bool     `json:"read"`
	Replies   []Reply  `json:"replies"`
}

// Reply is one entry in a message thread.
type Reply struct {
	ID        string   `json:"id"`
	From      string   `json:"from"`
	FromRole  UserRole `json:"fromRole"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
}
