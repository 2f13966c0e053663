package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/store"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
)

func TestSendMessageDerivesRecipientRole(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMessageService(st, nil, nil)

	message, err := svc.Send(SendMessageRequest{
		From: "mom", FromRole: "parent", To: "MathTeacher",
		Subject: "Homework", Content: "Question about the homework",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, message.ToRole)
	assert.False(t, message.Read)
	assert.NotNil(t, message.Replies)
	assert.Empty(t, message.Replies)
	assert.NotEmpty(t, message.Timestamp)
}

func TestSendMessageUnknownRecipientKeepsBlankRole(t *testing.T) {
	svc := NewMessageService(store.NewMemoryStore(), nil, nil)

	message, err := svc.Send(SendMessageRequest{
		From: "mom", FromRole: "parent", To: "ghost", Subject: "s", Content: "c",
	})

	require.NoError(t, err)
	assert.Empty(t, message.ToRole)
}

func TestReplyAppendsToThread(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMessageService(st, nil, nil)

	message, err := svc.Send(SendMessageRequest{
		From: "mom", FromRole: "parent", To: "MathTeacher", Subject: "s", Content: "c",
	})
	require.NoError(t, err)

	reply, err := svc.Reply(message.ID, ReplyRequest{From: "MathTeacher", FromRole: "teacher", Content: "answer"})
	require.NoError(t, err)
	assert.NotEmpty(t, reply.ID)

	stored := st.Load().Messages[message.ID]
	require.Len(t, stored.Replies, 1)
	assert.Equal(t, "answer", stored.Replies[0].Content)
}

func TestReplyUnknownMessageLeavesCollectionUnchanged(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMessageService(st, nil, nil)

	_, err := svc.Reply("missing", ReplyRequest{From: "x", FromRole: "teacher", Content: "c"})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, st.Load().Messages)
}

func TestForUserReturnsSentAndReceived(t *testing.T) {
	svc := NewMessageService(store.NewMemoryStore(), nil, nil)

	_, err := svc.Send(SendMessageRequest{From: "mom", FromRole: "parent", To: "MathTeacher", Subject: "a", Content: "x"})
	require.NoError(t, err)
	_, err = svc.Send(SendMessageRequest{From: "MathTeacher", FromRole: "teacher", To: "mom", Subject: "b", Content: "y"})
	require.NoError(t, err)
	_, err = svc.Send(SendMessageRequest{From: "dad", FromRole: "parent", To: "EnglishTeacher", Subject: "c", Content: "z"})
	require.NoError(t, err)

	assert.Len(t, svc.ForUser("mom"), 2)
	assert.Len(t, svc.ForUser("dad"), 1)
	assert.Empty(t, svc.ForUser("ghost"))
}

func TestMarkReadFlagsMessage(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMessageService(st, nil, nil)

	message, err := svc.Send(SendMessageRequest{From: "mom", FromRole: "parent", To: "MathTeacher", Subject: "s", Content: "c"})
	require.NoError(t, err)

	svc.MarkRead(message.ID)

	assert.True(t, st.Load().Messages[message.ID].Read)
}

func TestMarkReadUnknownIDIsNoop(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMessageService(st, nil, nil)

	svc.MarkRead("missing")

	assert.Empty(t, st.Load().Messages)
}

func TestDeleteMessage(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMessageService(st, nil, nil)

	message, err := svc.Send(SendMessageRequest{From: "mom", FromRole: "parent", To: "MathTeacher", Subject: "s", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(message.ID))
	assert.NotContains(t, st.Load().Messages, message.ID)

	err = svc.Delete(message.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
