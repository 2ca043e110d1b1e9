package cleaner

import (
	"testing"

	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

func TestRenamer_Apply(t *testing.T) {
	mapping := map[string]string{
		"Sex of respondent":   "sexrsp",
		"Duration - Sleeping": "durl110",
	}

	tbl := table.New([]string{"recid", "sexrsp", "durl110"})

	NewRenamer(mapping).Apply(tbl)

	want := []string{"recid", "sex_of_respondent", "duration_sleeping"}
	for i, name := range want {
		if tbl.Header[i] != name {
			t.Errorf("Header[%d] = %q, want %q", i, tbl.Header[i], name)
		}
	}
}

func TestRenamer_Apply_UnmappedCodeKept(t *testing.T) {
	tbl := table.New([]string{"MYSTERY99"})

	NewRenamer(map[string]string{}).Apply(tbl)

	// No codebook entry: the raw code survives, normalized.
	if tbl.Header[0] != "mystery99" {
		t.Errorf("Header[0] = %q, want mystery99", tbl.Header[0])
	}
}

func TestRenamer_Apply_CollisionLastWins(t *testing.T) {
	// Two descriptions that normalize to the same name. The resulting
	// duplicate headers resolve last-write-wins on lookup.
	mapping := map[string]string{
		"Person weight":    "wght1",
		"Person - weight!": "wght2",
	}

	tbl := table.New([]string{"wght1", "wght2"})

	NewRenamer(mapping).Apply(tbl)

	if tbl.Header[0] != "person_weight" || tbl.Header[1] != "person_weight" {
		t.Fatalf("Header = %v", tbl.Header)
	}

	idx, ok := tbl.ColumnIndex("person_weight")
	if !ok || idx != 1 {
		t.Errorf("ColumnIndex = %d, %v, want last occurrence 1", idx, ok)
	}
}
