package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"github.com/techagentng/bookxchange/server/response"
)

func (s *Server) handleSendMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, owner, ok := s.loadListing(c)
		if !ok {
			return
		}

		var req models.SendMessageRequest
		if err := c.ShouldBind(&req); err != nil {
			req.Content = ""
		}

		message, err := s.MessageService.SendMessage(currentUser(c), listing, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, apiError.ErrSelfMessage):
				s.Metrics.RejectedMessages.WithLabelValues("self").Inc()
			case errors.Is(err, apiError.ErrValidation):
				s.Metrics.RejectedMessages.WithLabelValues("invalid").Inc()
			}
			page, pageErr := s.listingPage(c, listing, owner)
			if pageErr != nil {
				s.renderError(c, pageErr)
				return
			}
			s.renderFormError(c, "listing_detail.html", page, err)
			return
		}
		s.Metrics.MessagesSent.Inc()

		if wantsJSON(c) {
			response.JSON(c, "Message sent.", http.StatusCreated, message, nil)
			return
		}
		s.flash(c, FlashSuccess, "Message sent.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/listing/%d", listing.ID))
	}
}

func (s *Server) handleMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		summaries, err := s.MessageService.ConversationSummaries(currentUser(c).ID)
		if err != nil {
			s.renderError(c, err)
			return
		}
		s.respond(c, http.StatusOK, "messages.html", gin.H{
			"Title":         "Messages",
			"Conversations": summaries,
		}, gin.H{"conversations": summaries})
	}
}
