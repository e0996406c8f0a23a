package api

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
)

// listingRequest is the quick edit sent from the admin list views: move a row
// or show/hide it without resending the whole record
type listingRequest struct {
	Order    *int  `json:"order"`
	IsActive *bool `json:"is_active"`
}

func (l listingRequest) Validate() error {
	if l.Order == nil && l.IsActive == nil {
		return errors.New("order or is_active is required")
	}
	return validation.ValidateStruct(&l,
		validation.Field(&l.Order, validation.Min(0)),
	)
}

func (l listingRequest) patch() database.ListingPatch {
	return database.ListingPatch{Order: l.Order, IsActive: l.IsActive}
}

// activeOr returns *flag when set and fallback otherwise
func activeOr(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}

func deletedResponse(entity string) map[string]string {
	return map[string]string{
		"status":  "success",
		"message": entity + " deleted successfully",
	}
}
