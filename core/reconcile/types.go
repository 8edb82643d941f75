package reconcile

// Fields maps column names to the values a reconciliation step wants stored.
type Fields map[string]any

// Without returns a copy of f minus the given column.
func (f Fields) Without(column string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if k != column {
			out[k] = v
		}
	}
	return out
}

// With returns a copy of f with column set to value.
func (f Fields) With(column string, value any) Fields {
	out := make(Fields, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[column] = value
	return out
}

// Outcome is what a single reconciliation write did.
type Outcome string

const (
	// OutcomeCreated means a new row was staged.
	OutcomeCreated Outcome = "created"
	// OutcomeUpdated means an existing row was overwritten in place.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means an insert-if-absent found the row already present.
	OutcomeSkipped Outcome = "skipped"
)

// Counts aggregates outcomes for one entity kind.
type Counts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Stats holds per-table outcome counts for one reconciliation pass.
type Stats map[string]*Counts

func (s Stats) record(entity string, o Outcome) {
	c, ok := s[entity]
	if !ok {
		c = &Counts{}
		s[entity] = c
	}
	switch o {
	case OutcomeCreated:
		c.Created++
	case OutcomeUpdated:
		c.Updated++
	case OutcomeSkipped:
		c.Skipped++
	}
}

// Total sums the counts over every entity.
func (s Stats) Total() Counts {
	var t Counts
	for _, c := range s {
		t.Created += c.Created
		t.Updated += c.Updated
		t.Skipped += c.Skipped
	}
	return t
}
