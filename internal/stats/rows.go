package stats

import "strconv"

// Row is one flattened line of a Totals value.
type Row struct {
	Axis  string `csv:"axis" json:"axis"`
	Label string `csv:"label" json:"label"`
	Count int    `csv:"count" json:"count"`
}

// UnclassifiedLabel is the label used for the unclassified bucket in rows.
const UnclassifiedLabel = "unclassified"

// Rows flattens the totals: one row per recognized label and one for the
// unclassified bucket, per axis, followed by the collection scalars.
func (t Totals) Rows() []Row {
	var rows []Row
	for _, axis := range []Axis{AxisFaction, AxisRarity, AxisType} {
		b, _ := t.Breakdown(axis)
		for _, label := range b.Labels() {
			rows = append(rows, Row{Axis: string(axis), Label: label, Count: b.Count(label)})
		}
		rows = append(rows, Row{Axis: string(axis), Label: UnclassifiedLabel, Count: b.Unclassified()})
	}
	rows = append(rows,
		Row{Axis: "collection", Label: "collection_count", Count: t.CollectionCount},
		Row{Axis: "collection", Label: "known_cards_count", Count: t.KnownCardsCount},
		Row{Axis: "collection", Label: "different_cards_count", Count: t.DifferentCardsCount},
	)
	return rows
}

// Record returns the row as CSV fields.
func (r Row) Record() []string {
	return []string{r.Axis, r.Label, strconv.Itoa(r.Count)}
}
