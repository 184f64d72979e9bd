package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is the root of a catalog tree.
type Item struct {
	ID            string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TitleAr       string    `gorm:"column:title_ar;size:255;not null" json:"title_ar"`
	TitleEn       string    `gorm:"column:title_en;size:255;not null" json:"title_en"`
	DescriptionAr *string   `gorm:"column:description_ar;type:text" json:"description_ar"`
	DescriptionEn *string   `gorm:"column:description_en;type:text" json:"description_en"`
	CategoryID    string    `gorm:"column:category_id;type:varchar(64);not null;index" json:"category_id"`
	UserID        string    `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id"`
	ImageURL      *string   `gorm:"column:image_url;type:text" json:"image_url"`
	SortOrder     int       `gorm:"column:sort_order;not null;index" json:"sort_order"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`

	Variants []Variant `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"variants"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "items"
}

// BeforeCreate assigns a fresh id.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Variant is a named variation of an item, e.g. a colour.
type Variant struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	ItemID    string    `gorm:"column:item_id;type:varchar(36);not null;index" json:"item_id"`
	NameAr    string    `gorm:"column:name_ar;size:255;not null" json:"name_ar"`
	NameEn    string    `gorm:"column:name_en;size:255;not null" json:"name_en"`
	ImageURL  *string   `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Options []Option `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"options"`
}

// TableName overrides the table name.
func (Variant) TableName() string {
	return "variants"
}

// BeforeCreate assigns a fresh id.
func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Option is a priced choice within a variant, e.g. a size.
type Option struct {
	ID         string              `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	VariantID  string              `gorm:"column:variant_id;type:varchar(36);not null;index" json:"variant_id"`
	LabelAr    string              `gorm:"column:label_ar;size:255" json:"label_ar"`
	LabelEn    string              `gorm:"column:label_en;size:255" json:"label_en"`
	Price      decimal.Decimal     `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	OfferPrice decimal.NullDecimal `gorm:"column:offer_price;type:decimal(12,2)" json:"offer_price"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name.
func (Option) TableName() string {
	return "options"
}

// BeforeCreate assigns a fresh id.
func (o *Option) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// All returns the models in dependency order for auto-migration.
func All() []any {
	return []any{&Item{}, &Variant{}, &Option{}}
}

// CurrentTree is the persisted state of one item as read before reconciliation.
type CurrentTree struct {
	Item               Item
	Variants           []Variant
	OptionsByVariantID map[string][]Option
}

// VariantIDs returns the ids of the current variants in stored order.
func (t *CurrentTree) VariantIDs() []string {
	ids := make([]string, 0, len(t.Variants))
	for _, v := range t.Variants {
		ids = append(ids, v.ID)
	}
	return ids
}
