package cleaner

import (
	"fmt"

	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

// Processor wires the cleaning stages in pipeline order.
type Processor struct {
	selector *Selector
	recoder  *Recoder
	filter   *Filter
}

// NewProcessor creates a processor. durationCap nulls duration sentinel
// values; livingArrangementCode selects the target subpopulation.
func NewProcessor(durationCap, livingArrangementCode int) *Processor {
	return &Processor{
		selector: NewSelector(),
		recoder:  NewRecoder(durationCap),
		filter:   NewFilter(livingArrangementCode),
	}
}

// Rename produces the semi-clean table: codebook descriptions applied to
// the raw header and every name normalized. No values change. The raw
// table is modified in place and returned.
func (p *Processor) Rename(raw *table.Table, descriptionToCode map[string]string) *table.Table {
	return NewRenamer(descriptionToCode).Apply(raw)
}

// Clean runs selection, income derivation, recoding and the
// subpopulation filter over a semi-clean table.
func (p *Processor) Clean(semi *table.Table) (*table.Table, *RecodeStats, error) {
	selected, err := p.selector.Apply(semi)
	if err != nil {
		return nil, nil, fmt.Errorf("selection failed: %w", err)
	}

	stats, err := p.recoder.Apply(selected)
	if err != nil {
		return nil, nil, fmt.Errorf("recoding failed: %w", err)
	}

	clean, err := p.filter.Apply(selected)
	if err != nil {
		return nil, nil, fmt.Errorf("filtering failed: %w", err)
	}

	// diff_income was appended during derivation; project onto the
	// final column order.
	order := append([]string(nil), finalColumns...)
	order = append(order, clean.ColumnsMatching(IsDurationColumn)...)

	clean, err = clean.Select(order)
	if err != nil {
		return nil, nil, fmt.Errorf("final ordering failed: %w", err)
	}

	return clean, stats, nil
}
