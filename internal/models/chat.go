package models

import "time"

// Feedback is the per-message rating a user can toggle.
type Feedback string

const (
	FeedbackGood Feedback = "good"
	FeedbackBad  Feedback = "bad"
)

// Valid reports whether f is a known label.
func (f Feedback) Valid() bool {
	return f == FeedbackGood || f == FeedbackBad
}

// Message is a single chat bubble.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Feedback  *Feedback `json:"feedback,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat is a server-persisted conversation with the generation service.
type Chat struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	ProjectID *uint     `json:"projectId,omitempty"`
	Messages  []Message `json:"messages"`
}

// InProject reports whether the chat belongs to the project with the given id.
func (c Chat) InProject(id uint) bool {
	return c.ProjectID != nil && *c.ProjectID == id
}

// Clone returns a deep copy so snapshots never share message slices.
func (c Chat) Clone() Chat {
	out := c
	if c.ProjectID != nil {
		id := *c.ProjectID
		out.ProjectID = &id
	}
	if c.Messages != nil {
		out.Messages = make([]Message, len(c.Messages))
		for i, m := range c.Messages {
			if m.Feedback != nil {
				fb := *m.Feedback
				m.Feedback = &fb
			}
			out.Messages[i] = m
		}
	}
	return out
}

// ChatRecord is the story API's persisted chat.
type ChatRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;index"`
	UserID    uint   `gorm:"index;not null"`
	ProjectID *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []ChatMessageRecord `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE"`
}

func (ChatRecord) TableName() string { return "chats" }

// ChatMessageRecord is the story API's persisted message.
type ChatMessageRecord struct {
	ID        uint   `gorm:"primaryKey"`
	ChatID    uint   `gorm:"index;not null"`
	UserID    uint   `gorm:"index;not null"`
	Message   string `gorm:"type:text"`
	IsUser    bool   `gorm:"not null"`
	CreatedAt time.Time
}

func (ChatMessageRecord) TableName() string { return "chat_messages" }
