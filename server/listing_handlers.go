package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"github.com/techagentng/bookxchange/server/response"
	"github.com/techagentng/bookxchange/services"
)

func toResponses(listings []models.Listing) []models.ListingResponse {
	return lo.Map(listings, func(l models.Listing, _ int) models.ListingResponse {
		return l.ToResponse()
	})
}

func (s *Server) handleHome() gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := s.ListingService.RecentListings(services.DefaultRecentLimit)
		if err != nil {
			s.renderError(c, err)
			return
		}
		data := toResponses(listings)
		s.respond(c, http.StatusOK, "index.html", gin.H{"Title": "Home", "Listings": data}, gin.H{"listings": data})
	}
}

func (s *Server) handleListings() gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.ListingFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			s.renderError(c, apiError.ErrBadRequest)
			return
		}

		listings, err := s.ListingService.ListListings(filter)
		if err != nil {
			s.renderError(c, err)
			return
		}
		genres, err := s.ListingService.DistinctGenres()
		if err != nil {
			s.renderError(c, err)
			return
		}
		conditions, err := s.ListingService.DistinctConditions()
		if err != nil {
			s.renderError(c, err)
			return
		}

		data := toResponses(listings)
		s.respond(c, http.StatusOK, "listings.html", gin.H{
			"Title":      "Browse listings",
			"Listings":   data,
			"Genres":     genres,
			"Conditions": conditions,
			"Filter":     filter,
		}, gin.H{
			"listings":   data,
			"genres":     genres,
			"conditions": conditions,
			"filter":     filter,
		})
	}
}

// loadListing resolves :id and the listing owner, writing a 404 when either is missing.
func (s *Server) loadListing(c *gin.Context) (*models.Listing, *models.User, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		s.renderError(c, apiError.ErrListingNotFound)
		return nil, nil, false
	}
	listing, err := s.ListingService.GetListing(uint(id))
	if err != nil {
		s.renderError(c, err)
		return nil, nil, false
	}
	owner, err := s.AuthService.GetUser(listing.OwnerID)
	if err != nil {
		s.renderError(c, err)
		return nil, nil, false
	}
	return listing, owner, true
}

// listingPage is the view of a listing from the requester's side.
func (s *Server) listingPage(c *gin.Context, listing *models.Listing, owner *models.User) (gin.H, error) {
	messages := []models.Message{}
	user := currentUser(c)
	if user != nil {
		var err error
		messages, err = s.MessageService.Conversation(listing.ID, user.ID, owner.ID)
		if err != nil {
			return nil, err
		}
	}
	return gin.H{
		"Title":    listing.Title,
		"Listing":  listing.ToResponse(),
		"Owner":    owner.ToResponse(),
		"Messages": messages,
		"IsOwner":  user != nil && user.ID == owner.ID,
	}, nil
}

func (s *Server) handleListingDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, owner, ok := s.loadListing(c)
		if !ok {
			return
		}
		page, err := s.listingPage(c, listing, owner)
		if err != nil {
			s.renderError(c, err)
			return
		}
		s.respond(c, http.StatusOK, "listing_detail.html", page, gin.H{
			"listing":  page["Listing"],
			"owner":    page["Owner"],
			"messages": page["Messages"],
		})
	}
}

func (s *Server) handleCreateListingPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.render(c, http.StatusOK, "create_listing.html", gin.H{"Title": "New listing"})
	}
}

func (s *Server) handleCreateListing() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := gin.H{"Title": "New listing"}
		var req models.CreateListingRequest
		if err := c.ShouldBind(&req); err != nil {
			s.renderFormError(c, "create_listing.html", page, apiError.ErrBadRequest)
			return
		}

		listing, err := s.ListingService.CreateListing(currentUser(c), &req)
		if err != nil {
			page["Form"] = req
			s.renderFormError(c, "create_listing.html", page, err)
			return
		}
		s.Metrics.ListingsCreated.Inc()

		if wantsJSON(c) {
			response.JSON(c, "Listing created successfully.", http.StatusCreated, listing.ToResponse(), nil)
			return
		}
		s.flash(c, FlashSuccess, "Listing created successfully.")
		c.Redirect(http.StatusFound, "/listings")
	}
}

func (s *Server) handleMyListings() gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := s.ListingService.ListingsByOwner(currentUser(c).ID)
		if err != nil {
			s.renderError(c, err)
			return
		}
		data := toResponses(listings)
		s.respond(c, http.StatusOK, "my_listings.html", gin.H{"Title": "My listings", "Listings": data}, gin.H{"listings": data})
	}
}

func (s *Server) handleNotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.renderError(c, apiError.NotFound("Page not found."))
	}
}

func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.DB == nil {
			c.String(http.StatusServiceUnavailable, "no database")
			return
		}
		if err := s.DB.Ping(); err != nil {
			s.Log.WithError(err).Error("health check failed")
			c.String(http.StatusServiceUnavailable, "unavailable")
			return
		}
		c.String(http.StatusOK, "ok")
	}
}
