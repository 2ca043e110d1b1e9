package cleaner

import (
	"fmt"

	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

// Recode labels for special values.
const (
	LabelSameIncome    = "Same Income"
	LabelAmbiguous     = "Ambiguous"
	topPersonalBracket = "$120,000 or more"
	topHouseholdLabel  = "$140,000 or more"
	fineTopBracket     = "$120,000 to $139,999"
)

// incomeLabels maps income group codes to dollar brackets. Code 0 only
// arises in the derived income difference column.
var incomeLabels = map[int]string{
	0: LabelSameIncome,
	1: "Less than $20,000",
	2: "$20,000 to $39,999",
	3: "$40,000 to $59,999",
	4: "$60,000 to $79,999",
	5: "$80,000 to $99,999",
	6: "$100,000 to $119,999",
	7: fineTopBracket,
	8: topHouseholdLabel,
}

var sexLabels = map[int]string{
	1: "Male",
	2: "Female",
}

var youngChildrenLabels = map[int]string{
	0: "None",
	1: "One",
	2: "Two",
	3: "Three or more",
}

var childrenLabels = map[int]string{
	0: "None",
	1: "One",
	2: "Two",
	3: "Three",
	4: "Four or more",
}

var childAgeGroupLabels = map[int]string{
	1: "All children 4 years of age and under",
	2: "All children between 5 and 12 years of age",
	3: "All children 13 years of age and older",
	4: "At least one child 4 and under, at least one between 5 and 12",
	5: "Children in two or more age groups, at least one 13 or older",
}

// IncomeLabel maps an income group code to its dollar bracket. Codes
// outside 0-8 are undefined.
func IncomeLabel(code int) (string, bool) {
	label, ok := incomeLabels[code]

	return label, ok
}

// SexLabel maps a sex code to its label. Codes outside 1-2 are
// undefined, including the missing sentinel codes.
func SexLabel(code int) (string, bool) {
	label, ok := sexLabels[code]

	return label, ok
}

// YoungChildrenLabel maps a count of children aged 0-4 to its label.
func YoungChildrenLabel(code int) (string, bool) {
	label, ok := youngChildrenLabels[code]

	return label, ok
}

// ChildrenLabel maps a count of children in the household to its label.
func ChildrenLabel(code int) (string, bool) {
	label, ok := childrenLabels[code]

	return label, ok
}

// ChildAgeGroupLabel maps an age-group-of-children code to its label.
func ChildAgeGroupLabel(code int) (string, bool) {
	label, ok := childAgeGroupLabels[code]

	return label, ok
}

// Recoder replaces numeric survey codes with text labels and computes
// the derived income difference column.
type Recoder struct {
	durationCap int
}

// NewRecoder creates a recoder. Duration values above cap are treated as
// invalid-value sentinels and nulled.
func NewRecoder(durationCap int) *Recoder {
	return &Recoder{durationCap: durationCap}
}

// RecodeStats counts the null cells each recoded column gained, in
// column order.
type RecodeStats struct {
	Columns []string
	Nulls   map[string]int
}

// columnRecode pairs a column with its code table.
type columnRecode struct {
	column string
	fn     func(int) (string, bool)
}

// Apply derives diff_income from the numeric income codes, then recodes
// every coded column to text labels. Derivation must precede recoding:
// the subtraction needs integer codes, not bracket labels. The table is
// modified in place.
func (r *Recoder) Apply(t *table.Table) (*RecodeStats, error) {
	if err := r.deriveDiffIncome(t); err != nil {
		return nil, err
	}

	stats := &RecodeStats{Nulls: make(map[string]int)}

	// personal_income_group and diff_income collapse the two top
	// brackets; household_income_group keeps the finer top bracket.
	personalIncome := func(code int) (string, bool) {
		label, ok := IncomeLabel(code)
		if ok && label == fineTopBracket {
			label = topPersonalBracket
		}

		return label, ok
	}

	recodes := []columnRecode{
		{"personal_income_group", personalIncome},
		{"household_income_group", IncomeLabel},
		{"diff_income", personalIncome},
		{"number_young_children_in_home", YoungChildrenLabel},
		{"number_children_in_home", ChildrenLabel},
		{"age_group_children", ChildAgeGroupLabel},
	}

	for _, name := range t.ColumnsMatching(isSexColumn) {
		recodes = append(recodes, columnRecode{name, SexLabel})
	}

	for _, rc := range recodes {
		if err := r.recodeColumn(t, stats, rc.column, rc.fn); err != nil {
			return nil, err
		}
	}

	for _, name := range t.ColumnsMatching(IsDurationColumn) {
		if err := r.capDurationColumn(t, stats, name); err != nil {
			return nil, err
		}
	}

	if err := r.markAmbiguousDiffs(t); err != nil {
		return nil, err
	}

	return stats, nil
}

func isSexColumn(name string) bool {
	return len(name) >= 3 && name[:3] == "sex"
}

// deriveDiffIncome appends diff_income = household code - personal code,
// computed on the raw integer codes. Rows where either code is missing
// or non-numeric get a null difference.
func (r *Recoder) deriveDiffIncome(t *table.Table) error {
	personalIdx, ok := t.ColumnIndex("personal_income_group")
	if !ok {
		return fmt.Errorf("%w: %q", table.ErrNoSuchColumn, "personal_income_group")
	}

	householdIdx, ok := t.ColumnIndex("household_income_group")
	if !ok {
		return fmt.Errorf("%w: %q", table.ErrNoSuchColumn, "household_income_group")
	}

	t.AddColumn("diff_income", func(_ []string, row []table.Cell) table.Cell {
		personal, pok := row[personalIdx].AsInt()
		household, hok := row[householdIdx].AsInt()

		if !pok || !hok {
			return table.Null
		}

		return table.Int(household - personal)
	})

	return nil
}

// recodeColumn rewrites one coded column through a label table,
// tallying introduced nulls. Non-numeric and out-of-range codes null.
func (r *Recoder) recodeColumn(t *table.Table, stats *RecodeStats, name string, fn func(int) (string, bool)) error {
	stats.Columns = append(stats.Columns, name)

	err := t.Apply(name, func(c table.Cell) table.Cell {
		code, ok := c.AsInt()
		if !ok {
			if !c.IsNull() {
				stats.Nulls[name]++
			}

			return table.Null
		}

		label, ok := fn(code)
		if !ok {
			stats.Nulls[name]++

			return table.Null
		}

		return table.String(label)
	})
	if err != nil {
		return err
	}

	return nil
}

// capDurationColumn nulls duration values outside [0, cap]. Values above
// the cap are the extract's invalid-value sentinels.
func (r *Recoder) capDurationColumn(t *table.Table, stats *RecodeStats, name string) error {
	stats.Columns = append(stats.Columns, name)

	return t.Apply(name, func(c table.Cell) table.Cell {
		minutes, ok := c.AsInt()
		if !ok || minutes < 0 || minutes > r.durationCap {
			if !c.IsNull() {
				stats.Nulls[name]++
			}

			return table.Null
		}

		return c
	})
}

// markAmbiguousDiffs overrides diff_income wherever either income column
// landed in its open-ended top bracket. The subtraction ran on bracket
// indices, so the difference carries no meaning once a side is
// top-coded.
func (r *Recoder) markAmbiguousDiffs(t *table.Table) error {
	personalIdx, ok := t.ColumnIndex("personal_income_group")
	if !ok {
		return fmt.Errorf("%w: %q", table.ErrNoSuchColumn, "personal_income_group")
	}

	householdIdx, ok := t.ColumnIndex("household_income_group")
	if !ok {
		return fmt.Errorf("%w: %q", table.ErrNoSuchColumn, "household_income_group")
	}

	diffIdx, ok := t.ColumnIndex("diff_income")
	if !ok {
		return fmt.Errorf("%w: %q", table.ErrNoSuchColumn, "diff_income")
	}

	for _, row := range t.Rows {
		if row[personalIdx].Value() == topPersonalBracket || row[householdIdx].Value() == topHouseholdLabel {
			row[diffIdx] = table.String(LabelAmbiguous)
		}
	}

	return nil
}
