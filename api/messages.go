package api

import (
	"context"
	"net/url"

	"github.com/wisdom2788/youthguard-go/core/gateway"
)

// SendMessageRequest is a direct message submission.
type SendMessageRequest struct {
	Content    string `json:"content"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

// MessagesService wraps the direct messaging endpoints.
type MessagesService struct {
	gw *gateway.Gateway
}

// NewMessagesService creates the messaging endpoint wrapper.
func NewMessagesService(gw *gateway.Gateway) *MessagesService {
	return &MessagesService{gw: gw}
}

// Send delivers a message and returns the stored record.
func (s *MessagesService) Send(ctx context.Context, req SendMessageRequest) (Message, error) {
	var message Message
	if err := s.gw.Post(ctx, "/messages", req, &message); err != nil {
		return Message{}, err
	}
	return message, nil
}

// Between returns the conversation history between two users.
func (s *MessagesService) Between(ctx context.Context, userID1, userID2 string) ([]Message, error) {
	var messages []Message
	path := "/messages/" + url.PathEscape(userID1) + "/" + url.PathEscape(userID2)
	if err := s.gw.Get(ctx, path, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// Unread returns a user's unread messages.
func (s *MessagesService) Unread(ctx context.Context, userID string) ([]Message, error) {
	var messages []Message
	if err := s.gw.Get(ctx, "/users/"+url.PathEscape(userID)+"/messages/unread", &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flags a message as read.
func (s *MessagesService) MarkRead(ctx context.Context, messageID string) error {
	return s.gw.Put(ctx, "/messages/"+url.PathEscape(messageID)+"/read", nil, nil)
}
