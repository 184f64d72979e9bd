package reconcile

// ActionType represents the kind of mutation applied to one entity.
type ActionType string

const (
	// ActionCreate inserts a new row.
	ActionCreate ActionType = "create"
	// ActionUpdate writes the changed fields of an existing row.
	ActionUpdate ActionType = "update"
	// ActionDelete removes an existing row.
	ActionDelete ActionType = "delete"
	// ActionSkip marks an entry that was not attempted.
	ActionSkip ActionType = "skip"
)

// EntityKind names the level of the tree an outcome belongs to.
type EntityKind string

const (
	// EntityVariant is a child of an item.
	EntityVariant EntityKind = "variant"
	// EntityOption is a child of a variant.
	EntityOption EntityKind = "option"
)

// Outcome records what happened to a single child entity.
type Outcome struct {
	// Entity is the tree level of the entity.
	Entity EntityKind `json:"entity"`

	// ID is the entity id. For creates it is the store-assigned id, empty when the insert failed.
	ID string `json:"id,omitempty"`

	// ParentID is the id of the owning item or variant.
	ParentID string `json:"parent_id,omitempty"`

	// Action is the mutation that was attempted.
	Action ActionType `json:"action"`

	// Success reports whether the mutation was applied.
	Success bool `json:"success"`

	// Reason explains skips and failures.
	Reason string `json:"reason,omitempty"`

	// Err is the underlying error of a failed mutation.
	Err error `json:"-"`
}

// Summary provides aggregate counts over a report.
type Summary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Report collects the outcomes of one reconciliation call in processing order.
// It is not safe for concurrent use; concurrent workers fill their own reports
// and the caller merges them.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Outcomes: []Outcome{}}
}

// Succeed records a successful mutation.
func (r *Report) Succeed(entity EntityKind, action ActionType, id, parentID string) {
	r.Outcomes = append(r.Outcomes, Outcome{
		Entity:   entity,
		ID:       id,
		ParentID: parentID,
		Action:   action,
		Success:  true,
	})
}

// Fail records a failed mutation.
func (r *Report) Fail(entity EntityKind, action ActionType, id, parentID string, err error) {
	o := Outcome{
		Entity:   entity,
		ID:       id,
		ParentID: parentID,
		Action:   action,
		Err:      err,
	}
	if err != nil {
		o.Reason = err.Error()
	}
	r.Outcomes = append(r.Outcomes, o)
}

// Skip records an entry that was intentionally not attempted.
func (r *Report) Skip(entity EntityKind, id, parentID, reason string) {
	r.Outcomes = append(r.Outcomes, Outcome{
		Entity:   entity,
		ID:       id,
		ParentID: parentID,
		Action:   ActionSkip,
		Reason:   reason,
	})
}

// Merge appends the outcomes of other, preserving their order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Outcomes = append(r.Outcomes, other.Outcomes...)
}

// Failed returns the outcomes that did not succeed, skips included.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.Success {
			out = append(out, o)
		}
	}
	return out
}

// Summary counts outcomes by action and result.
func (r *Report) Summary() Summary {
	var s Summary
	for _, o := range r.Outcomes {
		switch {
		case o.Action == ActionSkip:
			s.Skipped++
		case !o.Success:
			s.Failed++
		case o.Action == ActionCreate:
			s.Created++
		case o.Action == ActionUpdate:
			s.Updated++
		case o.Action == ActionDelete:
			s.Deleted++
		}
	}
	return s
}
