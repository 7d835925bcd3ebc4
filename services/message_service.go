package services

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/techagentng/bookxchange/config"
	"github.com/techagentng/bookxchange/db"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
)

// MessageService sends messages about listings and derives conversations.
type MessageService interface {
	SendMessage(sender *models.User, listing *models.Listing, content string) (*models.Message, error)
	Conversation(listingID, userA, userB uint) ([]models.Message, error)
	ConversationsForUser(userID uint) (map[models.ConversationKey]models.Message, error)
	ConversationSummaries(userID uint) ([]models.ConversationSummary, error)
}

type messageService struct {
	Config      *config.Config
	messageRepo db.MessageRepository
	listingRepo db.ListingRepository
	authRepo    db.AuthRepository
	log         *logrus.Logger
	now         func() time.Time
}

func NewMessageService(messageRepo db.MessageRepository, listingRepo db.ListingRepository, authRepo db.AuthRepository, conf *config.Config, log *logrus.Logger) MessageService {
	return &messageService{
		Config:      conf,
		messageRepo: messageRepo,
		listingRepo: listingRepo,
		authRepo:    authRepo,
		log:         log,
		now:         time.Now,
	}
}

// SendMessage always addresses the listing owner. An owner therefore cannot
// reply through it; that asymmetry is intentional for now.
func (m *messageService) SendMessage(sender *models.User, listing *models.Listing, content string) (*models.Message, error) {
	if sender == nil {
		return nil, apiError.ErrLoginRequired
	}
	if listing == nil {
		return nil, apiError.ErrListingNotFound
	}
	req := models.SendMessageRequest{Content: content}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if sender.ID == listing.OwnerID {
		return nil, apiError.ErrSelfMessage
	}

	message := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: listing.OwnerID,
		ListingID:  listing.ID,
		Content:    req.Content,
		Timestamp:  m.now().UTC(),
	}
	if err := m.messageRepo.CreateMessage(message); err != nil {
		return nil, passOrInternal(m.log, err, "send message")
	}
	m.log.WithFields(logrus.Fields{
		"message_id": message.ID,
		"listing_id": listing.ID,
		"sender_id":  sender.ID,
	}).Info("message sent")
	return message, nil
}

func (m *messageService) Conversation(listingID, userA, userB uint) ([]models.Message, error) {
	if userA == userB {
		return []models.Message{}, nil
	}
	messages, err := m.messageRepo.FindConversation(listingID, userA, userB)
	if err != nil {
		return nil, passOrInternal(m.log, err, "conversation")
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (m *messageService) ConversationsForUser(userID uint) (map[models.ConversationKey]models.Message, error) {
	messages, err := m.messageRepo.FindMessagesForUser(userID)
	if err != nil {
		return nil, passOrInternal(m.log, err, "conversations for user")
	}
	return models.LatestByConversation(userID, messages), nil
}

// ConversationSummaries lists one row per conversation, most recent first.
func (m *messageService) ConversationSummaries(userID uint) ([]models.ConversationSummary, error) {
	latest, err := m.ConversationsForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(latest) == 0 {
		return []models.ConversationSummary{}, nil
	}

	keys := lo.Keys(latest)
	listingIDs := lo.Uniq(lo.Map(keys, func(k models.ConversationKey, _ int) uint { return k.ListingID }))
	partnerIDs := lo.Uniq(lo.Map(keys, func(k models.ConversationKey, _ int) uint { return k.PartnerID }))

	listings, err := m.listingRepo.FindListingsByIDs(listingIDs)
	if err != nil {
		return nil, passOrInternal(m.log, err, "conversation summaries")
	}
	partners, err := m.authRepo.FindUsersByIDs(partnerIDs)
	if err != nil {
		return nil, passOrInternal(m.log, err, "conversation summaries")
	}
	listingByID := lo.KeyBy(listings, func(l models.Listing) uint { return l.ID })
	partnerByID := lo.KeyBy(partners, func(u models.User) uint { return u.ID })

	summaries := make([]models.ConversationSummary, 0, len(latest))
	for key, msg := range latest {
		summaries = append(summaries, models.ConversationSummary{
			ListingID:       key.ListingID,
			ListingTitle:    listingByID[key.ListingID].Title,
			PartnerID:       key.PartnerID,
			PartnerUsername: partnerByID[key.PartnerID].Username,
			LastMessage:     msg,
			LastSentByMe:    msg.SenderID == userID,
			UpdatedAt:       msg.Timestamp,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		if a.Timestamp.Equal(b.Timestamp) {
			return a.ID > b.ID
		}
		return a.Timestamp.After(b.Timestamp)
	})
	return summaries, nil
}
