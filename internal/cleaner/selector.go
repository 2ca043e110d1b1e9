package cleaner

import (
	"strings"

	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

// Normalized descriptions of the retained variables, in output order.
// The living arrangement column is kept here for the row filter and
// dropped afterwards.
var keepColumns = []string{
	"record_identification",
	"person_weight",
	"living_arrangement_of_respondent",
	"sex_of_respondent",
	"sex_of_spouse_partner_of_respondent",
	"annual_personal_income_group",
	"annual_household_income_group",
	"number_of_children_aged_0_to_4_in_household",
	"number_of_children_in_household",
	"age_group_of_children_in_household",
}

// Short analysis names for the retained variables. Names not listed
// here are kept as-is.
var shortNames = map[string]string{
	"record_identification":                       "id",
	"living_arrangement_of_respondent":            "living_arrangement",
	"sex_of_spouse_partner_of_respondent":         "sex_of_partner",
	"annual_personal_income_group":                "personal_income_group",
	"annual_household_income_group":               "household_income_group",
	"number_of_children_aged_0_to_4_in_household": "number_young_children_in_home",
	"number_of_children_in_household":             "number_children_in_home",
	"age_group_of_children_in_household":          "age_group_children",
}

// finalColumns is the clean table's column order; every duration column
// follows, in header order.
var finalColumns = []string{
	"id",
	"person_weight",
	"sex_of_respondent",
	"sex_of_partner",
	"personal_income_group",
	"household_income_group",
	"number_young_children_in_home",
	"number_children_in_home",
	"age_group_children",
	"diff_income",
}

// Selector projects the semi-clean table onto the analysis columns: the
// fixed retained set plus every time-use duration column, then applies
// the short rename table.
type Selector struct{}

// NewSelector creates a new selector.
func NewSelector() *Selector {
	return &Selector{}
}

// IsDurationColumn reports whether a normalized column name belongs to a
// time-use duration variable.
func IsDurationColumn(name string) bool {
	return strings.Contains(name, "duration")
}

// Apply selects the analysis columns (fixed list first, duration columns
// after, both order-preserving) and renames them to short names.
func (s *Selector) Apply(t *table.Table) (*table.Table, error) {
	names := append([]string(nil), keepColumns...)
	names = append(names, t.ColumnsMatching(IsDurationColumn)...)

	selected, err := t.Select(names)
	if err != nil {
		return nil, err
	}

	selected.RenameColumns(shortNames)

	return selected, nil
}
