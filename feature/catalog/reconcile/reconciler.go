package reconcile

import (
	"context"
	"fmt"
	"strings"

	"catalog-admin/core/reconcile"
	"catalog-admin/core/utils"
	"catalog-admin/feature/catalog/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Store is the write side of the entity store used during reconciliation.
type Store interface {
	InsertVariant(ctx context.Context, v *models.Variant) error
	UpdateVariant(ctx context.Context, id string, cols map[string]any) error
	DeleteVariants(ctx context.Context, ids []string) error

	InsertOption(ctx context.Context, o *models.Option) error
	UpdateOption(ctx context.Context, id string, cols map[string]any) error
	DeleteOptions(ctx context.Context, ids []string) error
}

// Options tunes a Reconciler.
type Options struct {
	// Workers bounds how many variant subtrees are written concurrently.
	// Values below 2 process variants sequentially.
	Workers int
}

// Reconciler brings the variants and options of an item in line with a desired tree.
type Reconciler struct {
	store   Store
	logger  *zap.Logger
	workers int
}

// New creates a Reconciler.
func New(store Store, logger *zap.Logger, opts Options) *Reconciler {
	return &Reconciler{
		store:   store,
		logger:  logger,
		workers: opts.Workers,
	}
}

// Apply reconciles current against desired and reports one outcome per mutation.
//
// Variants missing from desired are removed with a single delete before any other
// write, and their options go with them through the schema cascade. Failures of
// individual children are recorded and do not stop their siblings.
func (r *Reconciler) Apply(ctx context.Context, current *models.CurrentTree, desired []models.DesiredVariant) *reconcile.Report {
	report := reconcile.NewReport()
	itemID := current.Item.ID

	existing := make(map[string]models.Variant, len(current.Variants))
	for _, v := range current.Variants {
		existing[v.ID] = v
	}

	plan := reconcile.PlanLevel(current.VariantIDs(), desired, func(v models.DesiredVariant) string {
		return strings.TrimSpace(v.ID)
	})

	if len(plan.Deletes) > 0 {
		r.deleteAll(ctx, report, reconcile.EntityVariant, itemID, plan.Deletes, r.store.DeleteVariants)
	}

	subs := make([]*reconcile.Report, len(plan.Entries))
	apply := func(i int) {
		subs[i] = r.applyVariant(ctx, itemID, plan.Entries[i], existing, current.OptionsByVariantID)
	}

	if r.workers > 1 && len(plan.Entries) > 1 {
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i := range plan.Entries {
			i := i
			g.Go(func() error {
				apply(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range plan.Entries {
			apply(i)
		}
	}

	for _, sub := range subs {
		report.Merge(sub)
	}
	return report
}

func (r *Reconciler) applyVariant(
	ctx context.Context,
	itemID string,
	entry reconcile.Entry[models.DesiredVariant],
	existing map[string]models.Variant,
	currentOptions map[string][]models.Option,
) *reconcile.Report {
	sub := reconcile.NewReport()
	d := entry.Desired

	if entry.Action == reconcile.ActionSkip {
		sub.Skip(reconcile.EntityVariant, d.ID, itemID, entry.Reason)
		return sub
	}

	if err := validateVariant(d); err != nil {
		r.fail(sub, reconcile.EntityVariant, entry.Action, entry.ID, itemID, err)
		r.skipOptions(sub, d, entry.ID)
		return sub
	}

	var variantID string
	var current []models.Option

	switch entry.Action {
	case reconcile.ActionCreate:
		v := &models.Variant{
			ItemID:   itemID,
			NameAr:   strings.TrimSpace(d.NameAr),
			NameEn:   strings.TrimSpace(d.NameEn),
			ImageURL: nullable(d.ImageURL),
		}
		if err := r.store.InsertVariant(ctx, v); err != nil {
			r.fail(sub, reconcile.EntityVariant, reconcile.ActionCreate, "", itemID, err)
			r.skipOptions(sub, d, "")
			return sub
		}
		if entry.Reason != "" {
			r.logger.Debug("Variant created in place of unknown id",
				zap.String("requested_id", d.ID),
				zap.String("id", v.ID),
			)
		}
		sub.Succeed(reconcile.EntityVariant, reconcile.ActionCreate, v.ID, itemID)
		variantID = v.ID

	case reconcile.ActionUpdate:
		cur := existing[entry.ID]
		if cols := variantChanges(cur, d); len(cols) > 0 {
			if err := r.store.UpdateVariant(ctx, cur.ID, cols); err != nil {
				r.fail(sub, reconcile.EntityVariant, reconcile.ActionUpdate, cur.ID, itemID, err)
				r.skipOptions(sub, d, cur.ID)
				return sub
			}
			sub.Succeed(reconcile.EntityVariant, reconcile.ActionUpdate, cur.ID, itemID)
		}
		variantID = cur.ID
		current = currentOptions[cur.ID]
	}

	if d.Options != nil {
		r.applyOptions(ctx, sub, variantID, current, *d.Options)
	}
	return sub
}

func (r *Reconciler) applyOptions(
	ctx context.Context,
	sub *reconcile.Report,
	variantID string,
	current []models.Option,
	desired []models.DesiredOption,
) {
	existing := make(map[string]models.Option, len(current))
	currentIDs := make([]string, 0, len(current))
	for _, o := range current {
		existing[o.ID] = o
		currentIDs = append(currentIDs, o.ID)
	}

	plan := reconcile.PlanLevel(currentIDs, desired, func(o models.DesiredOption) string {
		return strings.TrimSpace(o.ID)
	})

	if len(plan.Deletes) > 0 {
		r.deleteAll(ctx, sub, reconcile.EntityOption, variantID, plan.Deletes, r.store.DeleteOptions)
	}

	for _, entry := range plan.Entries {
		d := entry.Desired

		switch entry.Action {
		case reconcile.ActionSkip:
			sub.Skip(reconcile.EntityOption, d.ID, variantID, entry.Reason)

		case reconcile.ActionCreate:
			price, offer, err := optionPrices(d)
			if err != nil {
				r.fail(sub, reconcile.EntityOption, reconcile.ActionCreate, "", variantID, err)
				continue
			}
			o := &models.Option{
				VariantID:  variantID,
				LabelAr:    strings.TrimSpace(d.LabelAr),
				LabelEn:    strings.TrimSpace(d.LabelEn),
				Price:      price,
				OfferPrice: offer,
			}
			if err := r.store.InsertOption(ctx, o); err != nil {
				r.fail(sub, reconcile.EntityOption, reconcile.ActionCreate, "", variantID, err)
				continue
			}
			sub.Succeed(reconcile.EntityOption, reconcile.ActionCreate, o.ID, variantID)

		case reconcile.ActionUpdate:
			cur := existing[entry.ID]
			cols, err := optionChanges(cur, d)
			if err != nil {
				r.fail(sub, reconcile.EntityOption, reconcile.ActionUpdate, cur.ID, variantID, err)
				continue
			}
			if len(cols) == 0 {
				continue
			}
			if err := r.store.UpdateOption(ctx, cur.ID, cols); err != nil {
				r.fail(sub, reconcile.EntityOption, reconcile.ActionUpdate, cur.ID, variantID, err)
				continue
			}
			sub.Succeed(reconcile.EntityOption, reconcile.ActionUpdate, cur.ID, variantID)
		}
	}
}

func (r *Reconciler) deleteAll(
	ctx context.Context,
	report *reconcile.Report,
	entity reconcile.EntityKind,
	parentID string,
	ids []string,
	del func(context.Context, []string) error,
) {
	if err := del(ctx, ids); err != nil {
		for _, id := range ids {
			r.fail(report, entity, reconcile.ActionDelete, id, parentID, err)
		}
		return
	}
	for _, id := range ids {
		report.Succeed(entity, reconcile.ActionDelete, id, parentID)
	}
}

func (r *Reconciler) fail(
	report *reconcile.Report,
	entity reconcile.EntityKind,
	action reconcile.ActionType,
	id, parentID string,
	err error,
) {
	r.logger.Warn("Reconciliation step failed",
		zap.String("entity", string(entity)),
		zap.String("action", string(action)),
		zap.String("id", id),
		zap.String("parent_id", parentID),
		zap.Error(err),
	)
	report.Fail(entity, action, id, parentID, err)
}

// skipOptions records that the options of a variant were not attempted.
func (r *Reconciler) skipOptions(report *reconcile.Report, d models.DesiredVariant, variantID string) {
	if d.Options == nil {
		return
	}
	for _, o := range *d.Options {
		report.Skip(reconcile.EntityOption, o.ID, variantID, "parent variant was not written")
	}
}

func validateVariant(d models.DesiredVariant) error {
	if strings.TrimSpace(d.NameAr) == "" || strings.TrimSpace(d.NameEn) == "" {
		return fmt.Errorf("%w: variant name_ar and name_en are required", models.ErrValidation)
	}
	return nil
}

func variantChanges(cur models.Variant, d models.DesiredVariant) map[string]any {
	cols := make(map[string]any)
	if name := strings.TrimSpace(d.NameAr); name != cur.NameAr {
		cols["name_ar"] = name
	}
	if name := strings.TrimSpace(d.NameEn); name != cur.NameEn {
		cols["name_en"] = name
	}
	if d.ImageURL != nil {
		want := nullable(d.ImageURL)
		if !sameString(cur.ImageURL, want) {
			cols["image_url"] = want
		}
	}
	return cols
}

func optionPrices(d models.DesiredOption) (decimal.Decimal, decimal.NullDecimal, error) {
	price := utils.ToPrice(d.Price)
	if price.IsNegative() {
		return decimal.Zero, decimal.NullDecimal{}, fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	return price, utils.ToOfferPrice(d.OfferPrice), nil
}

func optionChanges(cur models.Option, d models.DesiredOption) (map[string]any, error) {
	price, offer, err := optionPrices(d)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]any)
	if label := strings.TrimSpace(d.LabelAr); label != cur.LabelAr {
		cols["label_ar"] = label
	}
	if label := strings.TrimSpace(d.LabelEn); label != cur.LabelEn {
		cols["label_en"] = label
	}
	if !price.Equal(cur.Price) {
		cols["price"] = price
	}
	if offer.Valid != cur.OfferPrice.Valid || (offer.Valid && !offer.Decimal.Equal(cur.OfferPrice.Decimal)) {
		cols["offer_price"] = offer
	}
	return cols, nil
}

// nullable maps "" to nil so optional columns store NULL.
func nullable(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
