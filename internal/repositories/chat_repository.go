package repositories

import (
	"context"

	"gorm.io/gorm"

	"storycrafter/internal/models"
)

type ChatRepository interface {
	Create(ctx context.Context, c *models.ChatRecord) error
	// CreateWithMessages stores a chat and its messages in one transaction.
	CreateWithMessages(ctx context.Context, c *models.ChatRecord, msgs []models.ChatMessageRecord) error
	ListByUser(ctx context.Context, userID uint, projectID *uint) ([]models.ChatRecord, error)
	FindForUser(ctx context.Context, userID, id uint) (*models.ChatRecord, error)
	CreateMessage(ctx context.Context, m *models.ChatMessageRecord) error
	ListMessages(ctx context.Context, chatID uint) ([]models.ChatMessageRecord, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, c *models.ChatRecord) error {
	return r.db.WithContext(ctx).Omit("Messages").Create(c).Error
}

func (r *chatRepository) CreateWithMessages(ctx context.Context, c *models.ChatRecord, msgs []models.ChatMessageRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Messages").Create(c).Error; err != nil {
			return err
		}
		for i := range msgs {
			msgs[i].ChatID = c.ID
			if err := tx.Create(&msgs[i]).Error; err != nil {
				return err
			}
		}
		c.Messages = msgs
		return nil
	})
}

func (r *chatRepository) ListByUser(ctx context.Context, userID uint, projectID *uint) ([]models.ChatRecord, error) {
	var chats []models.ChatRecord
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	if err := q.Order("id ASC").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatRepository) FindForUser(ctx context.Context, userID, id uint) (*models.ChatRecord, error) {
	var c models.ChatRecord
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Take(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, m *models.ChatMessageRecord) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListMessages returns a chat's messages in creation order.
func (r *chatRepository) ListMessages(ctx context.Context, chatID uint) ([]models.ChatMessageRecord, error) {
	var msgs []models.ChatMessageRecord
	if err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
