package cleaner

import (
	"fmt"

	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

// Filter restricts rows to the target subpopulation by living
// arrangement code and drops the discriminating column, which is
// constant after the filter.
type Filter struct {
	livingArrangementCode int
}

// NewFilter creates a filter keeping rows whose living arrangement code
// equals code exactly.
func NewFilter(code int) *Filter {
	return &Filter{livingArrangementCode: code}
}

// Apply returns a new table holding only the matching rows, without the
// living arrangement column.
func (f *Filter) Apply(t *table.Table) (*table.Table, error) {
	idx, ok := t.ColumnIndex("living_arrangement")
	if !ok {
		return nil, fmt.Errorf("%w: %q", table.ErrNoSuchColumn, "living_arrangement")
	}

	kept := t.FilterRows(func(row []table.Cell) bool {
		code, ok := row[idx].AsInt()

		return ok && code == f.livingArrangementCode
	})

	return kept.DropColumn("living_arrangement")
}
