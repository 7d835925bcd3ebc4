package models

import (
	"time"

	apiError "github.com/techagentng/bookxchange/errors"
)

// Listing is a single book offered for exchange. Owner is declared only so the
// schema carries the foreign key; it is never preloaded.
type Listing struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Author      string    `gorm:"size:200;not null" json:"author"`
	Genre       string    `gorm:"size:100;index" json:"genre"`
	Description string    `gorm:"type:text" json:"description"`
	Condition   string    `gorm:"size:50;index" json:"condition"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

type CreateListingRequest struct {
	Title       string `form:"title" json:"title" conform:"trim" validate:"required,max=200"`
	Author      string `form:"author" json:"author" conform:"trim" validate:"required,max=200"`
	Genre       string `form:"genre" json:"genre" conform:"trim" validate:"max=100"`
	Description string `form:"description" json:"description" conform:"trim"`
	Condition   string `form:"condition" json:"condition" conform:"trim" validate:"max=50"`
}

// ListingFilter narrows the catalog; empty fields do not filter.
type ListingFilter struct {
	Q         string `form:"q" json:"q" conform:"trim"`
	Genre     string `form:"genre" json:"genre" conform:"trim"`
	Condition string `form:"condition" json:"condition" conform:"trim"`
}

// ListingResponse is the wire shape of a listing, with an ISO-8601 timestamp.
type ListingResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description,omitempty"`
	Condition   string `json:"condition"`
	CreatedAt   string `json:"created_at"`
	OwnerID     uint   `json:"owner_id"`
}

func (l *Listing) ToResponse() ListingResponse {
	return ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Author:      l.Author,
		Genre:       l.Genre,
		Description: l.Description,
		Condition:   l.Condition,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
		OwnerID:     l.OwnerID,
	}
}

func (r *CreateListingRequest) Validate() error {
	if err := validateWhiteSpaces(r); err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return translateError(err, apiError.ErrTitleAuthorRequired)
	}
	return nil
}

func (f *ListingFilter) Normalize() error {
	return validateWhiteSpaces(f)
}
