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

// SendMessageRequest is the payload for starting a message thread. ToRole is
// optional; when blank it is derived from the recipient's current account.
type SendMessageRequest struct {
	From     string `json:"from" validate:"required"`
	FromRole string `json:"fromRole" validate:"required,oneof=teacher parent student"`
	To       string `json:"to" validate:"required"`
	ToRole   string `json:"toRole" validate:"omitempty,oneof=teacher parent student"`
	Subject  string `json:"subject" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// ReplyRequest is the payload for appending to an existing thread.
type ReplyRequest struct {
	From     string `json:"from" validate:"required"`
	FromRole string `json:"fromRole" validate:"required,oneof=teacher parent student"`
	Content  string `json:"content" validate:"required"`
}

// MessageService manages message threads between users.
type MessageService struct {
	store     store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs MessageService.
func NewMessageService(st store.Store, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{store: st, validator: validate, logger: logger}
}

// Send inserts an unread message with an empty reply thread.
func (s *MessageService) Send(req SendMessageRequest) (*models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload")
	}

	doc := s.store.Load()

	toRole := models.UserRole(req.ToRole)
	if toRole == "" {
		if recipient, ok := doc.Users[req.To]; ok {
			toRole = recipient.Role
		}
	}

	message := models.Message{
		ID:        uuid.NewString(),
		From:      req.From,
		FromRole:  models.UserRole(req.FromRole),
		To:        req.To,
		ToRole:    toRole,
		Subject:   req.Subject,
		Content:   req.Content,
		Timestamp: nowISO(),
		Read:      false,
		Replies:   []models.Reply{},
	}
	doc.Messages[message.ID] = message

	s.store.Save(doc)
	return &message, nil
}

// Reply appends a reply entry to an existing thread.
func (s *MessageService) Reply(messageID string, req ReplyRequest) (*models.Reply, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reply payload")
	}

	doc := s.store.Load()

	message, ok := doc.Messages[messageID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "message not found")
	}

	reply := models.Reply{
		ID:        uuid.NewString(),
		From:      req.From,
		FromRole:  models.UserRole(req.FromRole),
		Content:   req.Content,
		Timestamp: nowISO(),
	}
	message.Replies = append(message.Replies, reply)
	doc.Messages[messageID] = message

	s.store.Save(doc)
	return &reply, nil
}

// ForUser returns every message the user sent or received, oldest first.
func (s *MessageService) ForUser(username string) []models.Message {
	doc := s.store.Load()

	result := make([]models.Message, 0)
	for _, message := range doc.Messages {
		if message.From == username || message.To == username {
			result = append(result, message)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Timestamp != result[j].Timestamp {
			return result[i].Timestamp < result[j].Timestamp
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// MarkRead flags a message as read. Unknown ids are a silent no-op.
func (s *MessageService) MarkRead(messageID string) {
	doc := s.store.Load()

	message, ok := doc.Messages[messageID]
	if !ok {
		return
	}
	message.Read = true
	doc.Messages[messageID] = message

	s.store.Save(doc)
}

// Delete removes a thread.
func (s *MessageService) Delete(messageID string) error {
	doc := s.store.Load()

	if _, ok := doc.Messages[messageID]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "message not found")
	}
	delete(doc.Messages, messageID)

	s.store.Save(doc)
	return nil
}
