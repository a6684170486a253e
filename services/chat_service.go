package services

import (
	"strings"

	"fittrack/models"
	"fittrack/utils"

	"gorm.io/gorm"
)

// ChatService handles the shared community chat room: text messages and
// voice notes (uploaded to S3, referenced by URL).
type ChatService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewChatService(db *gorm.DB, hub *RealtimeHub) *ChatService {
	return &ChatService{db: db, hub: hub}
}

func (s *ChatService) broadcast(m *models.Message) {
	if s.hub != nil {
		s.hub.Broadcast(map[string]any{
			"kind":    "message.created",
			"message": m,
		})
	}
}

// SendText stores a text message and broadcasts it to the room.
func (s *ChatService) SendText(user *models.User, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	m := &models.Message{
		UserID:    user.ID,
		UserName:  displayName(user),
		UserPhoto: user.PhotoURL,
		Type:      "text",
		Text:      text,
	}
	if err := s.db.Create(m).Error; err != nil {
		return nil, &WriteError{Op: "send message", Err: err}
	}
	s.broadcast(m)
	return m, nil
}

// SendAudio uploads a base64 voice note to S3 and stores a message row
// pointing at it.
func (s *ChatService) SendAudio(user *models.User, audioBase64 string) (*models.Message, error) {
	if audioBase64 == "" {
		return nil, &ValidationError{Field: "audio_base64", Reason: "must not be empty"}
	}

	url, err := utils.UploadBase64AudioToS3(audioBase64, user.ID)
	if err != nil {
		return nil, &WriteError{Op: "upload audio", Err: err}
	}

	m := &models.Message{
		UserID:    user.ID,
		UserName:  displayName(user),
		UserPhoto: user.PhotoURL,
		Type:      "audio",
		AudioURL:  url,
	}
	if err := s.db.Create(m).Error; err != nil {
		return nil, &WriteError{Op: "send audio message", Err: err}
	}
	s.broadcast(m)
	return m, nil
}

// ListMessages returns room history oldest-first, capped at limit.
func (s *ChatService) ListMessages(limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	var msgs []models.Message
	err := s.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, &ReadError{Op: "list messages", Err: err}
	}
	// reverse to ascending for display
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func displayName(u *models.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return "Anonymous"
}
