package skill

// Budget caps the number of derived effects one skill use may produce.
// It is shared by pointer across derived contexts of a single use and is
// not safe for concurrent use.
type Budget struct {
	limit     int
	used      int
	truncated int
}

// NewBudget creates a budget of limit effects; limit <= 0 means unlimited
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Take reserves one effect and reports whether it fit.
// A nil budget never refuses.
func (b *Budget) Take() bool {
	if b == nil {
		return true
	}
	if b.limit > 0 && b.used >= b.limit {
		b.truncated++
		return false
	}
	b.used++
	return true
}

// Used returns how many effects were reserved
func (b *Budget) Used() int {
	if b == nil {
		return 0
	}
	return b.used
}

// Truncated returns how many effects were refused
func (b *Budget) Truncated() int {
	if b == nil {
		return 0
	}
	return b.truncated
}
