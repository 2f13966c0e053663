package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/gradetracker-api/internal/middleware"
	"github.com/noah-isme/gradetracker-api/internal/service"
	appErrors "github.com/noah-isme/gradetracker-api/pkg/errors"
	"github.com/noah-isme/gradetracker-api/pkg/response"
)

// MessageHandler exposes messaging endpoints. The sender identity always
// comes from the access token, never from the request body.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler constructs handler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// List godoc
// @Summary List the current user's messages
// @Tags Messages
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, h.messages.ForUser(claims.Username))
}

// Send godoc
// @Summary Start a message thread
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body service.SendMessageRequest true "Message payload"
// @Success 201 {object} response.Envelope
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.From = claims.Username
	req.FromRole = string(claims.Role)

	message, err := h.messages.Send(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message)
}

// Reply godoc
// @Summary Reply to a thread
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Message id"
// @Param payload body service.ReplyRequest true "Reply payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /messages/{id}/replies [post]
func (h *MessageHandler) Reply(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.From = claims.Username
	req.FromRole = string(claims.Role)

	reply, err := h.messages.Reply(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reply)
}

// MarkRead godoc
// @Summary Mark a message as read
// @Tags Messages
// @Produce json
// @Param id path string true "Message id"
// @Success 204 "No Content"
// @Router /messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	h.messages.MarkRead(c.Param("id"))
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a thread
// @Tags Messages
// @Produce json
// @Param id path string true "Message id"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messages.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
