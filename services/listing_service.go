package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techagentng/bookxchange/config"
	"github.com/techagentng/bookxchange/db"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
)

const DefaultRecentLimit = 5

// ListingService is the book catalog
type ListingService interface {
	CreateListing(owner *models.User, req *models.CreateListingRequest) (*models.Listing, error)
	ListListings(filter models.ListingFilter) ([]models.Listing, error)
	RecentListings(limit int) ([]models.Listing, error)
	DistinctGenres() ([]string, error)
	DistinctConditions() ([]string, error)
	ListingsByOwner(userID uint) ([]models.Listing, error)
	GetListing(id uint) (*models.Listing, error)
}

type listingService struct {
	Config      *config.Config
	listingRepo db.ListingRepository
	log         *logrus.Logger
	now         func() time.Time
}

func NewListingService(listingRepo db.ListingRepository, conf *config.Config, log *logrus.Logger) ListingService {
	return &listingService{
		Config:      conf,
		listingRepo: listingRepo,
		log:         log,
		now:         time.Now,
	}
}

func (l *listingService) CreateListing(owner *models.User, req *models.CreateListingRequest) (*models.Listing, error) {
	if owner == nil {
		return nil, apiError.ErrLoginRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	listing := &models.Listing{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Description: req.Description,
		Condition:   req.Condition,
		CreatedAt:   l.now().UTC(),
		OwnerID:     owner.ID,
	}
	if err := l.listingRepo.CreateListing(listing); err != nil {
		return nil, passOrInternal(l.log, err, "create listing")
	}
	l.log.WithFields(logrus.Fields{"listing_id": listing.ID, "owner_id": owner.ID}).Info("listing created")
	return listing, nil
}

func (l *listingService) ListListings(filter models.ListingFilter) ([]models.Listing, error) {
	if err := filter.Normalize(); err != nil {
		return nil, err
	}
	listings, err := l.listingRepo.SearchListings(filter)
	if err != nil {
		return nil, passOrInternal(l.log, err, "list listings")
	}
	return listings, nil
}

func (l *listingService) RecentListings(limit int) ([]models.Listing, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	listings, err := l.listingRepo.RecentListings(limit)
	if err != nil {
		return nil, passOrInternal(l.log, err, "recent listings")
	}
	return listings, nil
}

func (l *listingService) DistinctGenres() ([]string, error) {
	genres, err := l.listingRepo.DistinctValues("genre")
	if err != nil {
		return nil, passOrInternal(l.log, err, "distinct genres")
	}
	return genres, nil
}

func (l *listingService) DistinctConditions() ([]string, error) {
	conditions, err := l.listingRepo.DistinctValues("condition")
	if err != nil {
		return nil, passOrInternal(l.log, err, "distinct conditions")
	}
	return conditions, nil
}

func (l *listingService) ListingsByOwner(userID uint) ([]models.Listing, error) {
	listings, err := l.listingRepo.ListingsByOwner(userID)
	if err != nil {
		return nil, passOrInternal(l.log, err, "listings by owner")
	}
	return listings, nil
}

func (l *listingService) GetListing(id uint) (*models.Listing, error) {
	listing, err := l.listingRepo.FindListingByID(id)
	if err != nil {
		return nil, passOrInternal(l.log, err, "get listing")
	}
	return listing, nil
}
