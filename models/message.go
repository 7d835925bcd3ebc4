package models

import (
	"time"

	apiError "github.com/techagentng/bookxchange/errors"
)

// Message is a direct message about a listing. It is never edited or deleted.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	ListingID  uint      `gorm:"not null;index" json:"listing_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
	Sender     *User     `gorm:"foreignKey:SenderID;constraint:OnDelete:RESTRICT" json:"-"`
	Receiver   *User     `gorm:"foreignKey:ReceiverID;constraint:OnDelete:RESTRICT" json:"-"`
	Listing    *Listing  `gorm:"foreignKey:ListingID;constraint:OnDelete:RESTRICT" json:"-"`
}

type SendMessageRequest struct {
	Content string `form:"content" json:"content" conform:"trim" validate:"required"`
}

func (r *SendMessageRequest) Validate() error {
	if err := validateWhiteSpaces(r); err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return translateError(err, apiError.ErrEmptyMessage)
	}
	return nil
}

// PartnerOf returns the participant that is not userID.
func (m *Message) PartnerOf(userID uint) uint {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// ConversationKey identifies a conversation from one participant's point of view.
type ConversationKey struct {
	ListingID uint
	PartnerID uint
}

// ConversationSummary is one row of the messages overview.
type ConversationSummary struct {
	ListingID       uint      `json:"listing_id"`
	ListingTitle    string    `json:"listing_title"`
	PartnerID       uint      `json:"partner_id"`
	PartnerUsername string    `json:"partner_username"`
	LastMessage     Message   `json:"last_message"`
	LastSentByMe    bool      `json:"last_sent_by_me"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LatestByConversation keeps, per (listing, partner) key, the message with the
// greatest timestamp. Equal timestamps resolve to the highest message ID so the
// result does not depend on msgs order. Messages not involving userID are ignored.
func LatestByConversation(userID uint, msgs []Message) map[ConversationKey]Message {
	latest := make(map[ConversationKey]Message)
	for _, m := range msgs {
		if m.SenderID != userID && m.ReceiverID != userID {
			continue
		}
		key := ConversationKey{ListingID: m.ListingID, PartnerID: m.PartnerOf(userID)}
		cur, ok := latest[key]
		if !ok || newer(m, cur) {
			latest[key] = m
		}
	}
	return latest
}

func newer(a, b Message) bool {
	if a.Timestamp.Equal(b.Timestamp) {
		return a.ID > b.ID
	}
	return a.Timestamp.After(b.Timestamp)
}
