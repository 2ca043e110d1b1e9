package cleaner

import (
	"testing"

	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

// rawHeader holds raw variable codes as they appear in the extract.
var rawHeader = []string{
	"recid", "wghtper", "livarr", "sexrsp", "sexprt",
	"incg", "famincg", "chh0004c", "chhchldc", "agechryc", "durl110",
}

// rawMapping is the codebook mapping (description -> code) matching
// rawHeader.
var rawMapping = map[string]string{
	"Record identification":                       "recid",
	"Person weight":                               "wghtper",
	"Living arrangement of respondent":            "livarr",
	"Sex of respondent":                           "sexrsp",
	"Sex of spouse partner of respondent":         "sexprt",
	"Annual personal income group":                "incg",
	"Annual household income group":               "famincg",
	"Number of children aged 0 to 4 in household": "chh0004c",
	"Number of children in household":             "chhchldc",
	"Age group of children in household":          "agechryc",
	"Duration - Sleeping":                         "durl110",
}

func buildRawTable(t *testing.T, rows [][]table.Cell) *table.Table {
	t.Helper()

	tbl := table.New(rawHeader)

	for _, row := range rows {
		if err := tbl.AppendRow(row); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}

	return tbl
}

func TestProcessor_Rename_PreservesRowCount(t *testing.T) {
	raw := buildRawTable(t, [][]table.Cell{
		{table.Int(1), table.Int(1), table.Int(3), table.Int(1), table.Int(2), table.Int(1), table.Int(1), table.Int(0), table.Int(0), table.Int(1), table.Int(60)},
		{table.Int(2), table.Int(1), table.Int(1), table.Int(2), table.Int(1), table.Int(2), table.Int(2), table.Int(1), table.Int(1), table.Int(2), table.Int(90)},
	})

	semi := NewProcessor(3600, 3).Rename(raw, rawMapping)

	if semi.NumRows() != 2 {
		t.Fatalf("Semi-clean rows = %d, want 2", semi.NumRows())
	}

	if semi.Header[0] != "record_identification" {
		t.Errorf("Header[0] = %q, want record_identification", semi.Header[0])
	}

	if semi.Header[10] != "duration_sleeping" {
		t.Errorf("Header[10] = %q, want duration_sleeping", semi.Header[10])
	}
}

// Round-trip scenario: a matching respondent with top-coded incomes and
// a sentinel duration.
func TestProcessor_Clean_RoundTrip(t *testing.T) {
	raw := buildRawTable(t, [][]table.Cell{
		{table.Int(1), table.Int(1), table.Int(3), table.Int(1), table.Int(2), table.Int(8), table.Int(8), table.Int(1), table.Int(1), table.Int(1), table.Int(4000)},
	})

	processor := NewProcessor(3600, 3)
	semi := processor.Rename(raw, rawMapping)

	clean, _, err := processor.Clean(semi)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if clean.NumRows() != 1 {
		t.Fatalf("Clean rows = %d, want 1", clean.NumRows())
	}

	wantValues := map[string]string{
		"personal_income_group":  "$140,000 or more",
		"household_income_group": "$140,000 or more",
		"diff_income":            "Ambiguous",
		"sex_of_respondent":      "Male",
		"sex_of_partner":         "Female",
	}

	for column, want := range wantValues {
		c, err := clean.Cell(0, column)
		if err != nil {
			t.Fatalf("Cell lookup failed: %v", err)
		}

		if c.Value() != want {
			t.Errorf("%s = %q, want %q", column, c.Value(), want)
		}
	}

	duration, err := clean.Cell(0, "duration_sleeping")
	if err != nil {
		t.Fatalf("Cell lookup failed: %v", err)
	}

	if !duration.IsNull() {
		t.Errorf("duration_sleeping = %q, want null for sentinel 4000", duration.Value())
	}

	if _, ok := clean.ColumnIndex("living_arrangement"); ok {
		t.Error("living_arrangement should not appear in the clean table")
	}
}

func TestProcessor_Clean_FiltersOtherLivingArrangements(t *testing.T) {
	raw := buildRawTable(t, [][]table.Cell{
		{table.Int(1), table.Int(1), table.Int(1), table.Int(1), table.Int(2), table.Int(8), table.Int(8), table.Int(1), table.Int(1), table.Int(1), table.Int(100)},
		{table.Int(2), table.Int(1), table.Int(3), table.Int(2), table.Int(1), table.Int(2), table.Int(4), table.Int(0), table.Int(2), table.Int(2), table.Int(200)},
	})

	processor := NewProcessor(3600, 3)

	clean, _, err := processor.Clean(processor.Rename(raw, rawMapping))
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if clean.NumRows() != 1 {
		t.Fatalf("Clean rows = %d, want 1", clean.NumRows())
	}

	id, err := clean.Cell(0, "id")
	if err != nil {
		t.Fatalf("Cell lookup failed: %v", err)
	}

	if id.Value() != "2" {
		t.Errorf("Surviving row id = %q, want 2", id.Value())
	}
}
