// Package reconcile provides the level-by-level diffing used to bring a stored
// tree of entities into agreement with a client-submitted one.
//
// The package is storage-agnostic. It plans, it does not write:
//
//   - PlanLevel partitions a desired list against the current ids of one level into
//     creates, updates, skipped duplicates and a single delete set.
//   - PlanRanks turns a full ordering into the minimal set of rank changes.
//   - Report collects per-entity outcomes so callers can continue on error and
//     inspect failures afterwards.
//
// # Usage Example
//
//	plan := reconcile.PlanLevel(currentIDs, desired, func(v Variant) string { return v.ID })
//	if len(plan.Deletes) > 0 {
//	    store.DeleteVariants(ctx, plan.Deletes)
//	}
//	for _, e := range plan.Entries {
//	    switch e.Action {
//	    case reconcile.ActionCreate:
//	        // insert e.Desired
//	    case reconcile.ActionUpdate:
//	        // write the fields of e.Desired that differ from row e.ID
//	    }
//	}
//
// Feature packages own the actual writes. See feature/catalog/reconcile.
package reconcile
