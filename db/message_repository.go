package db

import (
	"github.com/pkg/errors"
	"github.com/techagentng/bookxchange/models"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../mocks/mock_message_repository.go -package=mocks

type MessageRepository interface {
	CreateMessage(message *models.Message) error
	FindConversation(listingID, userA, userB uint) ([]models.Message, error)
	FindMessagesForUser(userID uint) ([]models.Message, error)
}

type messageRepo struct {
	DB *gorm.DB
}

func NewMessageRepo(db *GormDB) MessageRepository {
	return &messageRepo{db.DB}
}

func (r *messageRepo) CreateMessage(message *models.Message) error {
	if err := r.DB.Create(message).Error; err != nil {
		return errors.Wrap(err, "could not create message")
	}
	return nil
}

// FindConversation returns the messages exchanged between userA and userB about
// the listing, oldest first.
func (r *messageRepo) FindConversation(listingID, userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.DB.
		Where("listing_id = ?", listingID).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", userA, userB, userB, userA).
		Order("timestamp ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch conversation")
	}
	return messages, nil
}

func (r *messageRepo) FindMessagesForUser(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.DB.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("timestamp ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch messages")
	}
	return messages, nil
}
