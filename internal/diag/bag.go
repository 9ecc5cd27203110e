package diag

// Bag accumulates issues in insertion order: file discovery order first,
// rule-table order within a file. Reporters rely on that ordering staying
// stable, so the bag never sorts.
type Bag struct {
	items []Issue
	max   int // 0 = unlimited
}

// NewBag creates a bag capped at max issues (0 for no cap).
func NewBag(max int) *Bag {
	return &Bag{items: make([]Issue, 0, 16), max: max}
}

// Add appends an issue, honoring the cap.
// Returns false when the issue was dropped because the cap was reached.
func (b *Bag) Add(iss Issue) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, iss)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the issues in insertion order.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Issue {
	return b.items
}

// HasSeverity reports whether any issue is at least as severe as min.
func (b *Bag) HasSeverity(min Severity) bool {
	for i := range b.items {
		if b.items[i].Severity >= min {
			return true
		}
	}
	return false
}

// CountSeverity counts issues at exactly the given severity.
func (b *Bag) CountSeverity(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity == sev {
			n++
		}
	}
	return n
}

// Files returns the distinct issue file paths in first-seen order.
func (b *Bag) Files() []string {
	seen := make(map[string]struct{}, len(b.items))
	out := make([]string, 0, len(b.items))
	for i := range b.items {
		f := b.items[i].File
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
