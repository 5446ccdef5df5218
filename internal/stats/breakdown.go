package stats

import "encoding/json"

// Breakdown holds summed quantities for one classification axis. Labels
// outside the recognized set are summed into a single unclassified bucket.
type Breakdown struct {
	labels       []string
	counts       map[string]int
	unclassified int
}

func newBreakdown(labels []string) Breakdown {
	counts := make(map[string]int, len(labels))
	for _, label := range labels {
		counts[label] = 0
	}
	return Breakdown{
		labels: append([]string(nil), labels...),
		counts: counts,
	}
}

func (b *Breakdown) add(label string, quantity int) {
	if _, ok := b.counts[label]; ok {
		b.counts[label] += quantity
		return
	}
	b.unclassified += quantity
}

func (b Breakdown) recognizes(label string) bool {
	_, ok := b.counts[label]
	return ok
}

// Labels returns the recognized labels in display order.
func (b Breakdown) Labels() []string {
	return append([]string(nil), b.labels...)
}

// Count returns the total for a recognized label, or 0.
func (b Breakdown) Count(label string) int {
	return b.counts[label]
}

// Values returns the totals for the given labels, in order.
func (b Breakdown) Values(labels ...string) []int {
	values := make([]int, len(labels))
	for i, label := range labels {
		values[i] = b.counts[label]
	}
	return values
}

// Unclassified returns the quantity whose label was not recognized.
func (b Breakdown) Unclassified() int {
	return b.unclassified
}

// Classified returns the sum over recognized labels.
func (b Breakdown) Classified() int {
	sum := 0
	for _, n := range b.counts {
		sum += n
	}
	return sum
}

// Total returns Classified() + Unclassified().
func (b Breakdown) Total() int {
	return b.Classified() + b.unclassified
}

// MarshalJSON implements json.Marshaler.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Counts       map[string]int `json:"counts"`
		Unclassified int            `json:"unclassified"`
	}{
		Counts:       b.counts,
		Unclassified: b.unclassified,
	})
}
