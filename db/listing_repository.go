package db

import (
	"strings"

	"github.com/pkg/errors"
	apiError "github.com/techagentng/bookxchange/errors"
	"github.com/techagentng/bookxchange/models"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen -source=listing_repository.go -destination=../mocks/mock_listing_repository.go -package=mocks

type ListingRepository interface {
	CreateListing(listing *models.Listing) error
	FindListingByID(id uint) (*models.Listing, error)
	FindListingsByIDs(ids []uint) ([]models.Listing, error)
	SearchListings(filter models.ListingFilter) ([]models.Listing, error)
	RecentListings(limit int) ([]models.Listing, error)
	ListingsByOwner(ownerID uint) ([]models.Listing, error)
	DistinctValues(column string) ([]string, error)
}

type listingRepo struct {
	DB *gorm.DB
}

func NewListingRepo(db *GormDB) ListingRepository {
	return &listingRepo{db.DB}
}

const newestFirst = "created_at DESC, id DESC"

func (r *listingRepo) CreateListing(listing *models.Listing) error {
	if err := r.DB.Create(listing).Error; err != nil {
		return errors.Wrap(err, "could not create listing")
	}
	return nil
}

func (r *listingRepo) FindListingByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	err := r.DB.Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrListingNotFound
		}
		return nil, errors.Wrap(err, "could not find listing")
	}
	return &listing, nil
}

func (r *listingRepo) FindListingsByIDs(ids []uint) ([]models.Listing, error) {
	var listings []models.Listing
	if len(ids) == 0 {
		return listings, nil
	}
	if err := r.DB.Where("id IN ?", ids).Find(&listings).Error; err != nil {
		return nil, errors.Wrap(err, "could not find listings")
	}
	return listings, nil
}

// SearchListings applies q as a case-insensitive substring over title, author
// and genre, and genre/condition as exact matches.
func (r *listingRepo) SearchListings(filter models.ListingFilter) ([]models.Listing, error) {
	query := r.DB.Model(&models.Listing{})
	if filter.Q != "" {
		// both sides go through the same lower(); on sqlite that is unicodeLower
		pattern := "%" + escapeLike(filter.Q) + "%"
		query = query.Where(
			`LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(author) LIKE LOWER(?) ESCAPE '\' OR LOWER(genre) LIKE LOWER(?) ESCAPE '\'`,
			pattern, pattern, pattern,
		)
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}

	var listings []models.Listing
	if err := query.Order(newestFirst).Find(&listings).Error; err != nil {
		return nil, errors.Wrap(err, "could not search listings")
	}
	return listings, nil
}

func (r *listingRepo) RecentListings(limit int) ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.DB.Order(newestFirst).Limit(limit).Find(&listings).Error; err != nil {
		return nil, errors.Wrap(err, "could not fetch recent listings")
	}
	return listings, nil
}

func (r *listingRepo) ListingsByOwner(ownerID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.DB.Where("owner_id = ?", ownerID).Order(newestFirst).Find(&listings).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch listings by owner")
	}
	return listings, nil
}

var distinctColumns = map[string]bool{"genre": true, "condition": true}

// DistinctValues returns the non-empty distinct values of column, sorted.
func (r *listingRepo) DistinctValues(column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, errors.Errorf("column %q cannot be listed", column)
	}
	var values []string
	err := r.DB.Model(&models.Listing{}).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Distinct().
		Order(column).
		Pluck(column, &values).Error
	if err != nil {
		return nil, errors.Wrapf(err, "could not list distinct %s", column)
	}
	return values, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
