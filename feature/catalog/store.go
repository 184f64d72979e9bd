package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog-admin/core/reconcile"
	itemreconcile "catalog-admin/feature/catalog/reconcile"
	"catalog-admin/feature/catalog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter is the store-level form of a list query.
type ListFilter struct {
	Offset       int
	Limit        int
	CategoryID   string
	Search       string
	CreatedAfter *time.Time
	SortByRank   bool
}

// Store is the entity store behind the catalog.
type Store interface {
	itemreconcile.Store

	GetItem(ctx context.Context, id string) (*models.Item, error)
	GetItemTree(ctx context.Context, id string) (*models.Item, error)
	ListItems(ctx context.Context, f ListFilter) ([]models.Item, int64, error)
	InsertItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, id string, cols map[string]any) error
	DeleteItem(ctx context.Context, id string) error

	NextSortOrder(ctx context.Context) (int, error)
	ItemRanks(ctx context.Context, ids []string) (map[string]int, error)
	UpdateRanks(ctx context.Context, changes []reconcile.RankChange) error

	ListVariants(ctx context.Context, itemID string) ([]models.Variant, error)
	ListOptions(ctx context.Context, variantIDs []string) ([]models.Option, error)
}

// GormStore implements Store on gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func byCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// GetItem reads the root row only.
func (s *GormStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err, "item", id)
	}
	return &item, nil
}

// GetItemTree reads an item with its variants and their options.
func (s *GormStore) GetItemTree(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).
		Preload("Variants", byCreation).
		Preload("Variants.Options", byCreation).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, notFound(err, "item", id)
	}
	return &item, nil
}

// ListItems returns one page of item trees and the total number of matches.
func (s *GormStore) ListItems(ctx context.Context, f ListFilter) ([]models.Item, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if f.CategoryID != "" {
			db = db.Where("category_id = ?", f.CategoryID)
		}
		if f.Search != "" {
			like := "%" + strings.ToLower(f.Search) + "%"
			db = db.Where("LOWER(title_ar) LIKE ? OR LOWER(title_en) LIKE ?", like, like)
		}
		if f.CreatedAfter != nil {
			db = db.Where("created_at >= ?", *f.CreatedAfter)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Item{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	q := s.db.WithContext(ctx).Scopes(filter)
	if f.SortByRank {
		q = q.Order("sort_order ASC").Order("created_at DESC")
	} else {
		q = q.Order("created_at DESC")
	}

	var items []models.Item
	err := q.Order("id ASC").
		Offset(f.Offset).
		Limit(f.Limit).
		Preload("Variants", byCreation).
		Preload("Variants.Options", byCreation).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	return items, total, nil
}

// InsertItem inserts the root row. The store assigns the id.
func (s *GormStore) InsertItem(ctx context.Context, item *models.Item) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// UpdateItem writes cols to the item row.
func (s *GormStore) UpdateItem(ctx context.Context, id string, cols map[string]any) error {
	return s.updateByID(ctx, &models.Item{}, "item", id, cols)
}

// DeleteItem deletes the item. Variants and options go with it through the foreign keys.
func (s *GormStore) DeleteItem(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Item{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// NextSortOrder returns one past the highest rank in use.
func (s *GormStore) NextSortOrder(ctx context.Context) (int, error) {
	var highest int
	err := s.db.WithContext(ctx).Model(&models.Item{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&highest).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read max sort order: %w", err)
	}
	return highest + 1, nil
}

// ItemRanks returns the stored rank of each existing id.
func (s *GormStore) ItemRanks(ctx context.Context, ids []string) (map[string]int, error) {
	var rows []models.Item
	err := s.db.WithContext(ctx).
		Select("id", "sort_order").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read ranks: %w", err)
	}

	ranks := make(map[string]int, len(rows))
	for _, r := range rows {
		ranks[r.ID] = r.SortOrder
	}
	return ranks, nil
}

// UpdateRanks persists all rank changes in one transaction.
func (s *GormStore) UpdateRanks(ctx context.Context, changes []reconcile.RankChange) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range changes {
			err := tx.Model(&models.Item{}).Where("id = ?", c.ID).Update("sort_order", c.To).Error
			if err != nil {
				return fmt.Errorf("failed to update rank of %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// ListVariants returns the variants of an item in creation order.
func (s *GormStore) ListVariants(ctx context.Context, itemID string) ([]models.Variant, error) {
	var variants []models.Variant
	err := s.db.WithContext(ctx).Scopes(byCreation).Where("item_id = ?", itemID).Find(&variants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list variants of %s: %w", itemID, err)
	}
	return variants, nil
}

// ListOptions returns the options of all given variants with a single query.
func (s *GormStore) ListOptions(ctx context.Context, variantIDs []string) ([]models.Option, error) {
	if len(variantIDs) == 0 {
		return nil, nil
	}
	var options []models.Option
	err := s.db.WithContext(ctx).Scopes(byCreation).Where("variant_id IN ?", variantIDs).Find(&options).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	return options, nil
}

// InsertVariant inserts a variant row without its options.
func (s *GormStore) InsertVariant(ctx context.Context, v *models.Variant) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error; err != nil {
		return fmt.Errorf("failed to insert variant: %w", err)
	}
	return nil
}

// UpdateVariant writes cols to the variant row.
func (s *GormStore) UpdateVariant(ctx context.Context, id string, cols map[string]any) error {
	return s.updateByID(ctx, &models.Variant{}, "variant", id, cols)
}

// DeleteVariants deletes the given variants in one statement.
func (s *GormStore) DeleteVariants(ctx context.Context, ids []string) error {
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Variant{}).Error; err != nil {
		return fmt.Errorf("failed to delete variants: %w", err)
	}
	return nil
}

// InsertOption inserts an option row.
func (s *GormStore) InsertOption(ctx context.Context, o *models.Option) error {
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to insert option: %w", err)
	}
	return nil
}

// UpdateOption writes cols to the option row.
func (s *GormStore) UpdateOption(ctx context.Context, id string, cols map[string]any) error {
	return s.updateByID(ctx, &models.Option{}, "option", id, cols)
}

// DeleteOptions deletes the given options in one statement.
func (s *GormStore) DeleteOptions(ctx context.Context, ids []string) error {
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Option{}).Error; err != nil {
		return fmt.Errorf("failed to delete options: %w", err)
	}
	return nil
}

// updateByID applies cols to one row. Zero affected rows is only an error when the row is gone,
// since MySQL reports unchanged rows as unaffected.
func (s *GormStore) updateByID(ctx context.Context, model any, kind, id string, cols map[string]any) error {
	db := s.db.WithContext(ctx)
	if len(cols) > 0 {
		res := db.Model(model).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return fmt.Errorf("failed to update %s %s: %w", kind, id, res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}
	}

	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check %s %s: %w", kind, id, err)
	}
	if count == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return nil
}

func notFound(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, models.ErrNotFound)
	}
	return fmt.Errorf("failed to read %s %s: %w", kind, id, err)
}
