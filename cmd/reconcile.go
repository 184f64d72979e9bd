package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"catalog-admin/core/reconcile"
	"catalog-admin/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	treeFile   string
	dryRun     bool
	yesConfirm bool
)

// reconcileCmd applies a desired variant tree from a file to an item.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [id]",
	Short: "Reconcile an item's variants and options with a JSON file",
	Long: `Reads a JSON array of variants (the same shape as the "variants" field of PUT /items/{id})
and brings the stored tree of the item in line with it.

Variants missing from the file are deleted together with their options.

Examples:
  # Show what would change
  reconcile 3f1c... --file tree.json --dry-run

  # Apply without prompting
  reconcile 3f1c... --file tree.json --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&treeFile, "file", "f", "", "JSON file with the desired variants")
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only print the planned changes")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	_ = reconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	raw, err := os.ReadFile(treeFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", treeFile, err)
	}
	var variants []models.DesiredVariant
	if err := json.Unmarshal(raw, &variants); err != nil {
		return fmt.Errorf("failed to parse %s: %w", treeFile, err)
	}

	svc, l, err := newCatalogService()
	if err != nil {
		return err
	}
	defer l.Sync()

	current, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	currentIDs := make([]string, 0, len(current.Variants))
	for _, v := range current.Variants {
		currentIDs = append(currentIDs, v.ID)
	}
	plan := reconcile.PlanLevel(currentIDs, variants, func(v models.DesiredVariant) string {
		return strings.TrimSpace(v.ID)
	})
	printVariantPlan(l, id, plan)

	if dryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(plan.Deletes) > 0 && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	_, report, err := svc.Update(ctx, id, models.UpdateRequest{Variants: &variants})
	if err != nil {
		return err
	}

	s := report.Summary()
	l.Info("Reconciliation finished",
		zap.Int("created", s.Created),
		zap.Int("updated", s.Updated),
		zap.Int("deleted", s.Deleted),
		zap.Int("failed", s.Failed),
		zap.Int("skipped", s.Skipped),
	)
	for _, o := range report.Failed() {
		l.Warn("Not applied",
			zap.String("entity", string(o.Entity)),
			zap.String("action", string(o.Action)),
			zap.String("id", o.ID),
			zap.String("reason", o.Reason),
		)
	}
	if s.Failed > 0 {
		return fmt.Errorf("%d change(s) failed", s.Failed)
	}
	return nil
}

// printVariantPlan logs the variant-level changes. Option changes are decided while applying.
func printVariantPlan(l *zap.Logger, itemID string, plan reconcile.LevelPlan[models.DesiredVariant]) {
	var creates, updates, skips int
	for _, e := range plan.Entries {
		switch e.Action {
		case reconcile.ActionCreate:
			creates++
		case reconcile.ActionUpdate:
			updates++
		case reconcile.ActionSkip:
			skips++
			l.Warn("Entry will be skipped", zap.Int("index", e.Index), zap.String("reason", e.Reason))
		}
	}

	l.Info("Planned variant changes",
		zap.String("item", itemID),
		zap.Int("create", creates),
		zap.Int("update", updates),
		zap.Int("delete", len(plan.Deletes)),
		zap.Int("skip", skips),
	)
	for _, id := range plan.Deletes {
		l.Info("Variant will be deleted", zap.String("id", id))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
