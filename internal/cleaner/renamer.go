// Package cleaner transforms the raw survey extract into the analysis
// table: header renaming, column selection, value recoding and row
// filtering.
package cleaner

import (
	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

// Renamer replaces raw variable codes in the table header with codebook
// descriptions and normalizes every header name.
type Renamer struct {
	codeToDescription map[string]string
}

// NewRenamer creates a renamer from the codebook mapping, which runs
// description to code; the renamer inverts it once. Duplicate codes
// resolve last-write-wins.
func NewRenamer(descriptionToCode map[string]string) *Renamer {
	inverted := make(map[string]string, len(descriptionToCode))

	for description, code := range descriptionToCode {
		inverted[code] = description
	}

	return &Renamer{codeToDescription: inverted}
}

// Apply renames mapped columns to their descriptions, leaves unmapped
// codes in place, then normalizes every header name. The table is
// modified in place and returned for chaining.
func (r *Renamer) Apply(t *table.Table) *table.Table {
	t.RenameColumns(r.codeToDescription)
	t.MapHeader(NormalizeName)

	return t
}
