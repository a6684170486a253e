package models

import "time"

// Message is one entry in the shared community chat.
// Type is "text" or "audio"; audio messages keep the S3 URL.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	UserName  string    `json:"user_name"`
	UserPhoto string    `json:"user_photo,omitempty"`
	Type      string    `gorm:"size:10" json:"type"`
	Text      string    `gorm:"type:text" json:"text,omitempty"`
	AudioURL  string    `json:"audio_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
