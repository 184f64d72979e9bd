package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"catalog-admin/core/reconcile"
	"catalog-admin/feature/catalog/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// probeStore records every write and can be told to fail specific ones.
type probeStore struct {
	mu     sync.Mutex
	calls  []string
	nextID int

	variants      []models.Variant
	options       []models.Option
	variantUpdate map[string]map[string]any
	optionUpdate  map[string]map[string]any
	variantDelete [][]string
	optionDelete  [][]string

	// failOn maps "Method:key" to an error. The key is NameEn for variant inserts,
	// LabelEn for option inserts and the id otherwise.
	failOn map[string]error
}

func newProbe() *probeStore {
	return &probeStore{
		variantUpdate: map[string]map[string]any{},
		optionUpdate:  map[string]map[string]any{},
		failOn:        map[string]error{},
	}
}

func (p *probeStore) record(call, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
	return p.failOn[call+":"+key]
}

func (p *probeStore) id(prefix string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	return fmt.Sprintf("%s-new-%d", prefix, p.nextID)
}

func (p *probeStore) InsertVariant(ctx context.Context, v *models.Variant) error {
	if err := p.record("InsertVariant", v.NameEn); err != nil {
		return err
	}
	v.ID = p.id("v")
	p.mu.Lock()
	p.variants = append(p.variants, *v)
	p.mu.Unlock()
	return nil
}

func (p *probeStore) UpdateVariant(ctx context.Context, id string, cols map[string]any) error {
	if err := p.record("UpdateVariant", id); err != nil {
		return err
	}
	p.mu.Lock()
	p.variantUpdate[id] = cols
	p.mu.Unlock()
	return nil
}

func (p *probeStore) DeleteVariants(ctx context.Context, ids []string) error {
	if err := p.record("DeleteVariants", ids[0]); err != nil {
		return err
	}
	p.mu.Lock()
	p.variantDelete = append(p.variantDelete, ids)
	p.mu.Unlock()
	return nil
}

func (p *probeStore) InsertOption(ctx context.Context, o *models.Option) error {
	if err := p.record("InsertOption", o.LabelEn); err != nil {
		return err
	}
	o.ID = p.id("o")
	p.mu.Lock()
	p.options = append(p.options, *o)
	p.mu.Unlock()
	return nil
}

func (p *probeStore) UpdateOption(ctx context.Context, id string, cols map[string]any) error {
	if err := p.record("UpdateOption", id); err != nil {
		return err
	}
	p.mu.Lock()
	p.optionUpdate[id] = cols
	p.mu.Unlock()
	return nil
}

func (p *probeStore) DeleteOptions(ctx context.Context, ids []string) error {
	if err := p.record("DeleteOptions", ids[0]); err != nil {
		return err
	}
	p.mu.Lock()
	p.optionDelete = append(p.optionDelete, ids)
	p.mu.Unlock()
	return nil
}

func strPtr(s string) *string { return &s }

func opts(o ...models.DesiredOption) *[]models.DesiredOption { return &o }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seededTree is item-1 with v1 {o1 price 10, o2 price 5 offer 3} and v2 {}.
func seededTree() *models.CurrentTree {
	return &models.CurrentTree{
		Item: models.Item{ID: "item-1"},
		Variants: []models.Variant{
			{ID: "v1", ItemID: "item-1", NameAr: "أحمر", NameEn: "Red"},
			{ID: "v2", ItemID: "item-1", NameAr: "أزرق", NameEn: "Blue", ImageURL: strPtr("http://img/blue.jpg")},
		},
		OptionsByVariantID: map[string][]models.Option{
			"v1": {
				{ID: "o1", VariantID: "v1", LabelAr: "صغير", LabelEn: "S", Price: dec("10")},
				{ID: "o2", VariantID: "v1", LabelAr: "كبير", LabelEn: "L", Price: dec("5"), OfferPrice: decimal.NewNullDecimal(dec("3"))},
			},
		},
	}
}

func identicalDesired() []models.DesiredVariant {
	return []models.DesiredVariant{
		{
			ID: "v1", NameAr: "أحمر", NameEn: "Red",
			Options: opts(
				models.DesiredOption{ID: "o1", LabelAr: "صغير", LabelEn: "S", Price: 10.0},
				models.DesiredOption{ID: "o2", LabelAr: "كبير", LabelEn: "L", Price: "5", OfferPrice: "3.00"},
			),
		},
		{ID: "v2", NameAr: "أزرق", NameEn: "Blue", ImageURL: strPtr("http://img/blue.jpg")},
	}
}

func newReconciler(store Store, workers int) *Reconciler {
	return New(store, zap.NewNop(), Options{Workers: workers})
}

func emptyTree() *models.CurrentTree {
	return &models.CurrentTree{Item: models.Item{ID: "item-1"}, OptionsByVariantID: map[string][]models.Option{}}
}

func TestApply_EmptyCurrentCreatesEverything(t *testing.T) {
	probe := newProbe()
	desired := []models.DesiredVariant{
		{NameAr: "أ", NameEn: "A", Options: opts(
			models.DesiredOption{LabelEn: "S", Price: 1},
			models.DesiredOption{LabelEn: "M", Price: "2.5", OfferPrice: 2},
		)},
		{NameAr: "ب", NameEn: "B"},
	}

	report := newReconciler(probe, 1).Apply(context.Background(), emptyTree(), desired)

	require.Len(t, probe.variants, 2)
	for _, v := range probe.variants {
		assert.Equal(t, "item-1", v.ItemID)
	}
	require.Len(t, probe.options, 2)
	for _, o := range probe.options {
		assert.Equal(t, probe.variants[0].ID, o.VariantID)
	}
	assert.True(t, probe.options[1].OfferPrice.Valid)
	assert.Empty(t, probe.variantDelete)
	assert.Empty(t, probe.optionDelete)
	assert.Equal(t, reconcile.Summary{Created: 4}, report.Summary())
	assert.Empty(t, report.Failed())
}

func TestApply_IdenticalTreeWritesNothing(t *testing.T) {
	probe := newProbe()

	report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), identicalDesired())

	assert.Empty(t, probe.calls)
	assert.Empty(t, report.Outcomes)
}

func TestApply_OmittedVariantsDeletedOnceBeforeWrites(t *testing.T) {
	probe := newProbe()
	desired := []models.DesiredVariant{
		{NameAr: "ج", NameEn: "New"},
	}

	report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), desired)

	require.Len(t, probe.variantDelete, 1)
	assert.Equal(t, []string{"v1", "v2"}, probe.variantDelete[0])
	assert.Equal(t, []string{"DeleteVariants", "InsertVariant"}, probe.calls)
	assert.Equal(t, reconcile.Summary{Created: 1, Deleted: 2}, report.Summary())
}

func TestApply_AbsentVersusEmptyOptions(t *testing.T) {
	t.Run("Absent Leaves Options", func(t *testing.T) {
		probe := newProbe()
		desired := identicalDesired()
		desired[0].Options = nil

		newReconciler(probe, 1).Apply(context.Background(), seededTree(), desired)

		assert.Empty(t, probe.calls)
	})

	t.Run("Empty Deletes All Options", func(t *testing.T) {
		probe := newProbe()
		desired := identicalDesired()
		desired[0].Options = opts()

		report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), desired)

		require.Len(t, probe.optionDelete, 1)
		assert.Equal(t, []string{"o1", "o2"}, probe.optionDelete[0])
		assert.Equal(t, []string{"DeleteOptions"}, probe.calls)
		assert.Equal(t, 2, report.Summary().Deleted)
	})
}

func TestApply_OnlyChangedFieldsWritten(t *testing.T) {
	probe := newProbe()
	desired := identicalDesired()
	desired[0].NameEn = "Crimson"
	(*desired[0].Options)[1].OfferPrice = nil
	desired[1].ImageURL = strPtr("")

	report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), desired)

	assert.Equal(t, map[string]any{"name_en": "Crimson"}, probe.variantUpdate["v1"])
	assert.Equal(t, map[string]any{"offer_price": decimal.NullDecimal{}}, probe.optionUpdate["o2"])
	assert.Contains(t, probe.variantUpdate["v2"], "image_url")
	assert.Nil(t, probe.variantUpdate["v2"]["image_url"])
	assert.NotContains(t, probe.optionUpdate, "o1")
	assert.Equal(t, 3, report.Summary().Updated)
}

func TestApply_PriceCoercion(t *testing.T) {
	probe := newProbe()
	desired := []models.DesiredVariant{
		{NameAr: "أ", NameEn: "A", Options: opts(
			models.DesiredOption{LabelEn: "bad", Price: "abc"},
			models.DesiredOption{LabelEn: "zero-offer", Price: "4", OfferPrice: "0"},
		)},
	}

	newReconciler(probe, 1).Apply(context.Background(), emptyTree(), desired)

	require.Len(t, probe.options, 2)
	assert.True(t, probe.options[0].Price.IsZero())
	assert.False(t, probe.options[0].OfferPrice.Valid)
	assert.False(t, probe.options[1].OfferPrice.Valid)
}

func TestApply_NegativePriceRejectedPerOption(t *testing.T) {
	probe := newProbe()
	desired := []models.DesiredVariant{
		{NameAr: "أ", NameEn: "A", Options: opts(
			models.DesiredOption{LabelEn: "neg", Price: -1},
			models.DesiredOption{LabelEn: "ok", Price: 1},
		)},
	}

	report := newReconciler(probe, 1).Apply(context.Background(), emptyTree(), desired)

	require.Len(t, probe.options, 1)
	assert.Equal(t, "ok", probe.options[0].LabelEn)
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0].Err, models.ErrValidation)
	assert.Equal(t, reconcile.EntityOption, failed[0].Entity)
}

func TestApply_ReplacementScenario(t *testing.T) {
	probe := newProbe()
	current := &models.CurrentTree{
		Item:     models.Item{ID: "item-1"},
		Variants: []models.Variant{{ID: "v1", ItemID: "item-1", NameAr: "ق", NameEn: "Old"}},
		OptionsByVariantID: map[string][]models.Option{
			"v1": {{ID: "o1", VariantID: "v1", Price: dec("10")}},
		},
	}
	desired := []models.DesiredVariant{
		{NameAr: "ج", NameEn: "New", Options: opts(models.DesiredOption{Price: 5})},
	}

	report := newReconciler(probe, 1).Apply(context.Background(), current, desired)

	assert.Equal(t, [][]string{{"v1"}}, probe.variantDelete)
	require.Len(t, probe.variants, 1)
	assert.NotEqual(t, "v1", probe.variants[0].ID)
	require.Len(t, probe.options, 1)
	assert.True(t, probe.options[0].Price.Equal(dec("5")))
	assert.Equal(t, probe.variants[0].ID, probe.options[0].VariantID)
	assert.Empty(t, report.Failed())
}

func TestApply_FailuresContinueWithSiblings(t *testing.T) {
	probe := newProbe()
	probe.failOn["InsertVariant:Broken"] = errors.New("insert failed")
	probe.failOn["UpdateOption:o1"] = errors.New("update failed")

	desired := []models.DesiredVariant{
		{ID: "v1", NameAr: "أحمر", NameEn: "Red", Options: opts(
			models.DesiredOption{ID: "o1", LabelEn: "S", Price: 11},
			models.DesiredOption{ID: "o2", LabelAr: "كبير", LabelEn: "L", Price: 6, OfferPrice: 3},
		)},
		{NameAr: "x", NameEn: "Broken", Options: opts(models.DesiredOption{Price: 1}, models.DesiredOption{Price: 2})},
		{NameAr: "y", NameEn: "Fine"},
	}

	report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), desired)

	// v2 deleted, o2 updated, "Fine" created.
	assert.Equal(t, [][]string{{"v2"}}, probe.variantDelete)
	assert.Contains(t, probe.optionUpdate, "o2")
	require.Len(t, probe.variants, 1)
	assert.Equal(t, "Fine", probe.variants[0].NameEn)
	assert.Empty(t, probe.options)

	s := report.Summary()
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, 2, s.Skipped)
	assert.Len(t, report.Failed(), 4)
}

func TestApply_DeleteFailureRecordedPerID(t *testing.T) {
	probe := newProbe()
	probe.failOn["DeleteVariants:v1"] = errors.New("locked")

	report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), []models.DesiredVariant{})

	failed := report.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "v1", failed[0].ID)
	assert.Equal(t, "v2", failed[1].ID)
	assert.Equal(t, reconcile.ActionDelete, failed[0].Action)
}

func TestApply_InvalidVariantSkipsItsOptions(t *testing.T) {
	probe := newProbe()
	desired := identicalDesired()
	desired[0].NameEn = " "
	desired[0].Options = opts()

	report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), desired)

	assert.Empty(t, probe.calls)
	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0].Err, models.ErrValidation)
}

func TestApply_DuplicateAndUnknownIDs(t *testing.T) {
	probe := newProbe()
	desired := identicalDesired()
	desired = append(desired, models.DesiredVariant{ID: "v1", NameAr: "x", NameEn: "Dup"})
	desired = append(desired, models.DesiredVariant{ID: "ghost", NameAr: "x", NameEn: "Ghost"})

	report := newReconciler(probe, 1).Apply(context.Background(), seededTree(), desired)

	require.Len(t, probe.variants, 1)
	assert.Equal(t, "Ghost", probe.variants[0].NameEn)
	assert.NotEqual(t, "ghost", probe.variants[0].ID)
	assert.NotContains(t, probe.variantUpdate, "v1")

	failed := report.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, reconcile.ActionSkip, failed[0].Action)
}

func TestApply_IdempotentWhenCreatedIDsFedBack(t *testing.T) {
	probe := newProbe()
	desired := []models.DesiredVariant{
		{NameAr: "أ", NameEn: "A", Options: opts(models.DesiredOption{LabelEn: "S", Price: "3"})},
	}
	newReconciler(probe, 1).Apply(context.Background(), emptyTree(), desired)

	v := probe.variants[0]
	o := probe.options[0]
	current := &models.CurrentTree{
		Item:               models.Item{ID: "item-1"},
		Variants:           []models.Variant{v},
		OptionsByVariantID: map[string][]models.Option{v.ID: {o}},
	}
	desired[0].ID = v.ID
	(*desired[0].Options)[0].ID = o.ID

	second := newProbe()
	report := newReconciler(second, 1).Apply(context.Background(), current, desired)

	assert.Empty(t, second.calls)
	assert.Empty(t, report.Outcomes)
}

func TestApply_WorkersKeepOutcomeOrder(t *testing.T) {
	desired := make([]models.DesiredVariant, 0, 8)
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("V%d", i)
		desired = append(desired, models.DesiredVariant{NameAr: name, NameEn: name, Options: opts(
			models.DesiredOption{LabelEn: name + "-S", Price: i},
		)})
	}

	report := newReconciler(newProbe(), 4).Apply(context.Background(), emptyTree(), desired)

	require.Len(t, report.Outcomes, 16)
	for i := 0; i < 8; i++ {
		variant := report.Outcomes[2*i]
		option := report.Outcomes[2*i+1]
		assert.Equal(t, reconcile.EntityVariant, variant.Entity)
		assert.Equal(t, reconcile.EntityOption, option.Entity)
		assert.Equal(t, variant.ID, option.ParentID)
	}
	assert.Equal(t, 16, report.Summary().Created)
}
