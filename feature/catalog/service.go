package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catalog-admin/core/imaging"
	"catalog-admin/core/reconcile"
	"catalog-admin/core/storage"
	itemreconcile "catalog-admin/feature/catalog/reconcile"
	"catalog-admin/feature/catalog/models"

	"go.uber.org/zap"
)

// Image folders accepted by UploadImage.
const (
	FolderProducts = "products"
	FolderVariants = "variants"
)

// Publisher stores image bytes and hands back public URLs.
type Publisher interface {
	Upload(ctx context.Context, data []byte, contentType, objectPath string) (string, error)
	DeleteByPath(ctx context.Context, objectPath string) error
	PathFromURL(publicURL string) (string, bool)
}

// Service implements the catalog operations.
type Service struct {
	store      Store
	loader     *TreeLoader
	reconciler *itemreconcile.Reconciler
	publisher  Publisher
	logger     *zap.Logger
	cfg        Config
	now        func() time.Time
}

// NewService creates a new catalog service.
func NewService(store Store, publisher Publisher, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		store:      store,
		loader:     NewTreeLoader(store),
		reconciler: itemreconcile.New(store, logger, itemreconcile.Options{Workers: cfg.Workers}),
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// List returns one page of items with their variants and options.
func (s *Service) List(ctx context.Context, q models.ListQuery) (*models.ItemPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := s.cfg.pageSize(q.Limit)

	filter := ListFilter{
		Offset:     (page - 1) * limit,
		Limit:      limit,
		CategoryID: strings.TrimSpace(q.CategoryID),
		Search:     strings.TrimSpace(q.Search),
		SortByRank: q.SortByRank,
	}

	if q.Since != "" {
		from, err := sinceTime(s.now(), q.Since)
		if err != nil {
			return nil, err
		}
		filter.CreatedAfter = &from
	}

	items, total, err := s.store.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}

	return &models.ItemPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// Get returns one item with its variants and options.
func (s *Service) Get(ctx context.Context, id string) (*models.Item, error) {
	return s.store.GetItemTree(ctx, id)
}

// Create inserts an item owned by actorID at the end of the ranking, then creates its children.
// Child failures are reported, not returned.
func (s *Service) Create(ctx context.Context, actorID string, req models.CreateRequest) (*models.Item, *reconcile.Report, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, nil, fmt.Errorf("%w: acting user is required", models.ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	rank, err := s.store.NextSortOrder(ctx)
	if err != nil {
		return nil, nil, err
	}

	item := req.Item(actorID)
	item.SortOrder = rank
	if err := s.store.InsertItem(ctx, &item); err != nil {
		return nil, nil, err
	}

	empty := &models.CurrentTree{Item: item, OptionsByVariantID: map[string][]models.Option{}}
	report := s.reconciler.Apply(ctx, empty, req.Variants)
	s.logReport("Item created", item.ID, report)

	tree, err := s.store.GetItemTree(ctx, item.ID)
	if err != nil {
		return nil, report, err
	}
	return tree, report, nil
}

// Update writes the supplied root fields and, when variants were supplied,
// reconciles the subtree against them.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateRequest) (*models.Item, *reconcile.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	if err := s.store.UpdateItem(ctx, id, req.Columns()); err != nil {
		return nil, nil, err
	}

	report := reconcile.NewReport()
	if req.Variants != nil {
		current, err := s.loader.Load(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		report = s.reconciler.Apply(ctx, current, *req.Variants)
		s.logReport("Item reconciled", id, report)
	}

	tree, err := s.store.GetItemTree(ctx, id)
	if err != nil {
		return nil, report, err
	}
	return tree, report, nil
}

// UpdateScalar writes the supplied root fields only.
func (s *Service) UpdateScalar(ctx context.Context, id string, fields models.ScalarFields) (*models.Item, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.UpdateItem(ctx, id, fields.Columns()); err != nil {
		return nil, err
	}
	return s.store.GetItem(ctx, id)
}

// Delete removes an item and its subtree. The item image is removed from storage first;
// a storage failure is logged and does not stop the delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if item.ImageURL != nil && *item.ImageURL != "" {
		if objectPath, ok := s.publisher.PathFromURL(*item.ImageURL); ok {
			if err := s.publisher.DeleteByPath(ctx, objectPath); err != nil {
				s.logger.Warn("Failed to delete item image",
					zap.String("id", id),
					zap.String("path", objectPath),
					zap.Error(err),
				)
			}
		} else {
			s.logger.Debug("Item image is not hosted in the bucket", zap.String("id", id), zap.String("url", *item.ImageURL))
		}
	}

	return s.store.DeleteItem(ctx, id)
}

// Reorder ranks the given items by their position and persists only the ranks that changed.
func (s *Service) Reorder(ctx context.Context, ids []string) ([]reconcile.RankChange, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ranks, err := s.store.ItemRanks(ctx, ids)
	if err != nil {
		return nil, err
	}

	changes, err := reconcile.PlanRanks(ranks, ids)
	switch {
	case errors.Is(err, reconcile.ErrUnknownKey):
		return nil, fmt.Errorf("%w: %w", models.ErrNotFound, err)
	case errors.Is(err, reconcile.ErrDuplicateKey):
		return nil, fmt.Errorf("%w: %w", models.ErrValidation, err)
	case err != nil:
		return nil, err
	}

	if len(changes) == 0 {
		return changes, nil
	}
	if err := s.store.UpdateRanks(ctx, changes); err != nil {
		return nil, err
	}

	s.logger.Info("Items reordered", zap.Int("changed", len(changes)))
	return changes, nil
}

// UploadImage normalizes an image and publishes it under folder, returning its public URL.
func (s *Service) UploadImage(ctx context.Context, folder, filename string, data []byte) (string, error) {
	if folder != FolderProducts && folder != FolderVariants {
		return "", fmt.Errorf("%w: unknown image folder %q", models.ErrValidation, folder)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty image", models.ErrValidation)
	}

	img, err := imaging.Process(data, s.cfg.ImageMaxDimension)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", models.ErrValidation, filename, err)
	}

	url, err := s.publisher.Upload(ctx, img.Data, img.MIME, storage.ObjectPath(folder, img.Ext))
	if err != nil {
		return "", err
	}

	s.logger.Info("Image uploaded",
		zap.String("folder", folder),
		zap.String("filename", filename),
		zap.Int("bytes", len(img.Data)),
	)
	return url, nil
}

func (s *Service) logReport(msg, itemID string, report *reconcile.Report) {
	sum := report.Summary()
	s.logger.Info(msg,
		zap.String("id", itemID),
		zap.Int("created", sum.Created),
		zap.Int("updated", sum.Updated),
		zap.Int("deleted", sum.Deleted),
		zap.Int("failed", sum.Failed),
		zap.Int("skipped", sum.Skipped),
	)
}

func sinceTime(now time.Time, since string) (time.Time, error) {
	switch since {
	case models.SinceToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	case models.SinceWeek:
		return now.AddDate(0, 0, -7), nil
	case models.SinceMonth:
		return now.AddDate(0, -1, 0), nil
	case models.SinceYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown since value %q", models.ErrValidation, since)
	}
}
