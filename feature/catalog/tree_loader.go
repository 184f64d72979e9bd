package catalog

import (
	"context"

	"catalog-admin/feature/catalog/models"
)

// TreeLoader reads the persisted tree of one item. It never caches.
type TreeLoader struct {
	store Store
}

// NewTreeLoader creates a loader on store.
func NewTreeLoader(store Store) *TreeLoader {
	return &TreeLoader{store: store}
}

// Load returns the current root, its variants and their options grouped by variant id.
// Options of all variants are fetched with one query.
func (l *TreeLoader) Load(ctx context.Context, itemID string) (*models.CurrentTree, error) {
	item, err := l.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	variants, err := l.store.ListVariants(ctx, itemID)
	if err != nil {
		return nil, err
	}

	tree := &models.CurrentTree{
		Item:               *item,
		Variants:           variants,
		OptionsByVariantID: make(map[string][]models.Option, len(variants)),
	}

	options, err := l.store.ListOptions(ctx, tree.VariantIDs())
	if err != nil {
		return nil, err
	}
	for _, o := range options {
		tree.OptionsByVariantID[o.VariantID] = append(tree.OptionsByVariantID[o.VariantID], o)
	}

	return tree, nil
}
