package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey is returned when an ordered key has no current rank.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey is returned when a key appears twice in an ordering.
	ErrDuplicateKey = errors.New("duplicate key")
)

// RankChange is a rank that must be persisted.
type RankChange struct {
	ID   string `json:"id"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

// PlanRanks assigns rank index+1 to every key of order and returns only the keys
// whose current rank differs. Keys of current missing from order keep their rank.
func PlanRanks(current map[string]int, order []string) ([]RankChange, error) {
	seen := make(map[string]struct{}, len(order))
	var changes []RankChange

	for i, id := range order {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, id)
		}
		seen[id] = struct{}{}

		from, ok := current[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, id)
		}

		if to := i + 1; from != to {
			changes = append(changes, RankChange{ID: id, From: from, To: to})
		}
	}

	return changes, nil
}
