package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/logger"
	"github.com/techagentng/bookxchange/mocks"
	"github.com/techagentng/bookxchange/models"
	"go.uber.org/mock/gomock"
)

type messageMocks struct {
	messages *mocks.MockMessageRepository
	listings *mocks.MockListingRepository
	users    *mocks.MockAuthRepository
}

func newMessageService(t *testing.T) (*messageService, messageMocks) {
	ctrl := gomock.NewController(t)
	m := messageMocks{
		messages: mocks.NewMockMessageRepository(ctrl),
		listings: mocks.NewMockListingRepository(ctrl),
		users:    mocks.NewMockAuthRepository(ctrl),
	}
	svc := NewMessageService(m.messages, m.listings, m.users, testConfig(), logger.Discard()).(*messageService)
	return svc, m
}

func TestMessageService_SendMessage(t *testing.T) {
	svc, m := newMessageService(t)
	owner := &models.User{Model: models.Model{ID: 1}, Username: "owner"}
	buyer := &models.User{Model: models.Model{ID: 2}, Username: "buyer"}
	listing := &models.Listing{ID: 10, Title: "Dune", OwnerID: owner.ID}

	t.Run("receiver is always the owner", func(t *testing.T) {
		req := require.New(t)
		m.messages.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(msg *models.Message) error {
			msg.ID = 100
			return nil
		})

		msg, err := svc.SendMessage(buyer, listing, "  Is this still available? ")
		req.NoError(err)
		req.Equal(buyer.ID, msg.SenderID)
		req.Equal(owner.ID, msg.ReceiverID)
		req.Equal(listing.ID, msg.ListingID)
		req.Equal("Is this still available?", msg.Content)
		req.False(msg.Timestamp.IsZero())
	})

	t.Run("owner cannot message about own listing", func(t *testing.T) {
		req := require.New(t)
		m.messages.EXPECT().CreateMessage(gomock.Any()).Times(0)

		_, err := svc.SendMessage(owner, listing, "hello me")
		req.ErrorIs(err, apiError.ErrSelfMessage)
	})

	t.Run("blank content is rejected before the owner check", func(t *testing.T) {
		req := require.New(t)
		m.messages.EXPECT().CreateMessage(gomock.Any()).Times(0)

		_, err := svc.SendMessage(buyer, listing, "   ")
		req.ErrorIs(err, apiError.ErrEmptyMessage)
		_, err = svc.SendMessage(owner, listing, "")
		req.ErrorIs(err, apiError.ErrValidation)
	})

	t.Run("requires a sender and a listing", func(t *testing.T) {
		req := require.New(t)
		_, err := svc.SendMessage(nil, listing, "hi")
		req.ErrorIs(err, apiError.ErrAuth)
		_, err = svc.SendMessage(buyer, nil, "hi")
		req.ErrorIs(err, apiError.ErrNotFound)
	})
}

func TestMessageService_Conversation(t *testing.T) {
	svc, m := newMessageService(t)

	t.Run("empty is a slice, not an error", func(t *testing.T) {
		req := require.New(t)
		m.messages.EXPECT().FindConversation(uint(10), uint(2), uint(1)).Return(nil, nil)

		got, err := svc.Conversation(10, 2, 1)
		req.NoError(err)
		req.NotNil(got)
		req.Empty(got)
	})

	t.Run("same user on both sides yields nothing", func(t *testing.T) {
		req := require.New(t)
		m.messages.EXPECT().FindConversation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		got, err := svc.Conversation(10, 1, 1)
		req.NoError(err)
		req.Empty(got)
	})
}

func TestMessageService_ConversationSummaries(t *testing.T) {
	svc, m := newMessageService(t)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	msgs := []models.Message{
		{ID: 1, SenderID: 2, ReceiverID: 1, ListingID: 10, Content: "hi", Timestamp: t0},
		{ID: 2, SenderID: 2, ReceiverID: 1, ListingID: 10, Content: "still there?", Timestamp: t0.Add(time.Hour)},
		{ID: 3, SenderID: 3, ReceiverID: 1, ListingID: 10, Content: "me too", Timestamp: t0.Add(30 * time.Minute)},
		{ID: 4, SenderID: 1, ReceiverID: 5, ListingID: 20, Content: "about yours", Timestamp: t0.Add(2 * time.Hour)},
	}
	m.messages.EXPECT().FindMessagesForUser(uint(1)).Return(msgs, nil).Times(2)
	m.listings.EXPECT().FindListingsByIDs(gomock.Any()).
		Return([]models.Listing{{ID: 10, Title: "Dune"}, {ID: 20, Title: "Emma"}}, nil)
	m.users.EXPECT().FindUsersByIDs(gomock.Any()).
		Return([]models.User{
			{Model: models.Model{ID: 2}, Username: "buyer"},
			{Model: models.Model{ID: 3}, Username: "other"},
			{Model: models.Model{ID: 5}, Username: "seller"},
		}, nil)

	req := require.New(t)
	latest, err := svc.ConversationsForUser(1)
	req.NoError(err)
	req.Len(latest, 3)
	req.Equal(uint(2), latest[models.ConversationKey{ListingID: 10, PartnerID: 2}].ID)

	summaries, err := svc.ConversationSummaries(1)
	req.NoError(err)
	req.Len(summaries, 3)

	req.Equal("Emma", summaries[0].ListingTitle)
	req.Equal("seller", summaries[0].PartnerUsername)
	req.True(summaries[0].LastSentByMe)

	req.Equal("buyer", summaries[1].PartnerUsername)
	req.Equal("still there?", summaries[1].LastMessage.Content)
	req.False(summaries[1].LastSentByMe)

	req.Equal("other", summaries[2].PartnerUsername)
}

func TestMessageService_NoConversations(t *testing.T) {
	svc, m := newMessageService(t)
	m.messages.EXPECT().FindMessagesForUser(uint(7)).Return(nil, nil)
	m.listings.EXPECT().FindListingsByIDs(gomock.Any()).Times(0)

	summaries, err := svc.ConversationSummaries(7)
	require.NoError(t, err)
	require.Empty(t, summaries)
}
