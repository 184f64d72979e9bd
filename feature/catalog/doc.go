// Package catalog implements the item catalog: items with variants and priced options.
//
// # Components
//
//   - Store / GormStore: entity store over the items, variants and options tables.
//     Deleting an item or variant cascades through the foreign keys.
//   - TreeLoader: reads the current tree of one item, options in a single IN query.
//   - Service: list, get, create, update (root fields plus optional reconciliation),
//     scalar update, delete with image cleanup, reorder and image upload.
//   - Handler: Fiber routes under /items.
//
// The nested reconciliation itself lives in feature/catalog/reconcile.
//
// Concurrent edits of the same item are not serialized; the last writer wins per row.
package catalog
