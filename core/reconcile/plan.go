package reconcile

// Entry is the planned handling of one desired element.
type Entry[T any] struct {
	// Index is the position of the element in the desired list.
	Index int

	// Desired is the element itself.
	Desired T

	// ID is the current id to update. Empty for creates and skips.
	ID string

	// Action is ActionCreate, ActionUpdate or ActionSkip.
	Action ActionType

	// Reason is set for skips and for ids that were not found and are created instead.
	Reason string
}

// LevelPlan is the diff of one level of the tree.
type LevelPlan[T any] struct {
	// Entries follow the order of the desired list.
	Entries []Entry[T]

	// Deletes holds the current ids not referenced by any desired element,
	// in the order they appear in current.
	Deletes []string
}

// PlanLevel partitions desired elements against the current ids of one level.
//
// An element without id is a create. An element whose id is current is an update.
// An element whose id is not current is a create that gets a fresh id.
// A repeated id is planned once; later repeats are skipped.
// Current ids never referenced become deletes.
func PlanLevel[T any](currentIDs []string, desired []T, idOf func(T) string) LevelPlan[T] {
	current := make(map[string]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = struct{}{}
	}

	plan := LevelPlan[T]{Entries: make([]Entry[T], 0, len(desired))}
	seen := make(map[string]struct{}, len(desired))

	for i, d := range desired {
		entry := Entry[T]{Index: i, Desired: d}
		id := idOf(d)

		switch {
		case id == "":
			entry.Action = ActionCreate
		case hasKey(seen, id):
			entry.Action = ActionSkip
			entry.Reason = "duplicate id " + id
		case hasKey(current, id):
			seen[id] = struct{}{}
			entry.Action = ActionUpdate
			entry.ID = id
		default:
			seen[id] = struct{}{}
			entry.Action = ActionCreate
			entry.Reason = "unknown id " + id + " created as new"
		}

		plan.Entries = append(plan.Entries, entry)
	}

	for _, id := range currentIDs {
		if !hasKey(seen, id) {
			plan.Deletes = append(plan.Deletes, id)
		}
	}

	return plan
}

func hasKey(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}
