package models

import (
	"fmt"
	"strings"
)

// Since values accepted by ListQuery.
const (
	SinceToday = "today"
	SinceWeek  = "week"
	SinceMonth = "month"
	SinceYear  = "year"
)

// DesiredOption is a client-submitted option. An empty ID asks for a new row.
type DesiredOption struct {
	ID      string `json:"id,omitempty"`
	LabelAr string `json:"label_ar"`
	LabelEn string `json:"label_en"`
	// Price is coerced to a decimal; anything non-numeric becomes zero.
	Price any `json:"price"`
	// OfferPrice is coerced to a nullable decimal; missing or non-positive values become NULL.
	OfferPrice any `json:"offer_price"`
}

// DesiredVariant is a client-submitted variant. An empty ID asks for a new row.
type DesiredVariant struct {
	ID     string `json:"id,omitempty"`
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
	// ImageURL nil keeps the stored value; "" clears it.
	ImageURL *string `json:"image_url,omitempty"`
	// Options nil (key missing or null) leaves the stored options alone.
	// A non-nil empty slice deletes all of them.
	Options *[]DesiredOption `json:"options,omitempty"`
}

// ScalarFields are the writable root fields of an item. Nil fields are left unchanged.
// For optional fields an empty string stores NULL.
type ScalarFields struct {
	TitleAr       *string `json:"title_ar,omitempty"`
	TitleEn       *string `json:"title_en,omitempty"`
	DescriptionAr *string `json:"description_ar,omitempty"`
	DescriptionEn *string `json:"description_en,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
}

// Validate rejects blank values for required fields.
func (f ScalarFields) Validate() error {
	required := []struct {
		name string
		val  *string
	}{
		{"title_ar", f.TitleAr},
		{"title_en", f.TitleEn},
		{"category_id", f.CategoryID},
	}
	for _, r := range required {
		if r.val != nil && strings.TrimSpace(*r.val) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrValidation, r.name)
		}
	}
	return nil
}

// Columns returns the column updates for the supplied fields.
func (f ScalarFields) Columns() map[string]any {
	cols := make(map[string]any)
	setRequired := func(col string, v *string) {
		if v != nil {
			cols[col] = strings.TrimSpace(*v)
		}
	}
	setOptional := func(col string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			cols[col] = nil
			return
		}
		cols[col] = *v
	}

	setRequired("title_ar", f.TitleAr)
	setRequired("title_en", f.TitleEn)
	setRequired("category_id", f.CategoryID)
	setOptional("description_ar", f.DescriptionAr)
	setOptional("description_en", f.DescriptionEn)
	setOptional("image_url", f.ImageURL)
	return cols
}

// UpdateRequest edits an item. Variants nil leaves the subtree untouched.
type UpdateRequest struct {
	ScalarFields
	Variants *[]DesiredVariant `json:"variants,omitempty"`
}

// CreateRequest creates an item together with its variants and options.
type CreateRequest struct {
	TitleAr       string           `json:"title_ar"`
	TitleEn       string           `json:"title_en"`
	DescriptionAr *string          `json:"description_ar,omitempty"`
	DescriptionEn *string          `json:"description_en,omitempty"`
	CategoryID    string           `json:"category_id"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Variants      []DesiredVariant `json:"variants"`
}

// Validate checks the required root fields.
func (r CreateRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.TitleAr) == "":
		return fmt.Errorf("%w: title_ar is required", ErrValidation)
	case strings.TrimSpace(r.TitleEn) == "":
		return fmt.Errorf("%w: title_en is required", ErrValidation)
	case strings.TrimSpace(r.CategoryID) == "":
		return fmt.Errorf("%w: category_id is required", ErrValidation)
	}
	return nil
}

// Item builds the root row owned by userID.
func (r CreateRequest) Item(userID string) Item {
	return Item{
		TitleAr:       strings.TrimSpace(r.TitleAr),
		TitleEn:       strings.TrimSpace(r.TitleEn),
		DescriptionAr: nonEmpty(r.DescriptionAr),
		DescriptionEn: nonEmpty(r.DescriptionEn),
		CategoryID:    strings.TrimSpace(r.CategoryID),
		UserID:        userID,
		ImageURL:      nonEmpty(r.ImageURL),
	}
}

// ListQuery filters and pages the item list.
type ListQuery struct {
	Page       int
	Limit      int
	CategoryID string
	Search     string
	// Since is one of the Since* constants or empty.
	Since string
	// SortByRank orders by sort_order instead of newest first.
	SortByRank bool
}

// ItemPage is one page of items with their trees.
type ItemPage struct {
	Items []Item `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
