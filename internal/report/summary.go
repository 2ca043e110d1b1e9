// Package report builds the run summary: row counts, nulls introduced
// by recoding and per-column duration profiles.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/montanaflynn/stats"

	"github.com/EthanSansom/gssgenderedchildcare/internal/cleaner"
	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

// ColumnNulls counts the null cells a recoded column gained.
type ColumnNulls struct {
	Column string
	Nulls  int
}

// DurationProfile summarizes the surviving values of one duration
// column, in minutes.
type DurationProfile struct {
	Column string
	Kept   int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summary describes one pipeline run.
type Summary struct {
	RunID           string
	RowsRaw         int
	RowsClean       int
	NullsIntroduced []ColumnNulls
	Durations       []DurationProfile
}

// NewSummary builds a summary from the recode tallies and the final
// clean table.
func NewSummary(runID string, rowsRaw int, recodeStats *cleaner.RecodeStats, clean *table.Table) (*Summary, error) {
	s := &Summary{
		RunID:     runID,
		RowsRaw:   rowsRaw,
		RowsClean: clean.NumRows(),
	}

	for _, column := range recodeStats.Columns {
		s.NullsIntroduced = append(s.NullsIntroduced, ColumnNulls{
			Column: column,
			Nulls:  recodeStats.Nulls[column],
		})
	}

	profiles, err := durationProfiles(clean)
	if err != nil {
		return nil, err
	}

	s.Durations = profiles

	return s, nil
}

// durationProfiles computes min/max/mean/median over the non-null
// values of every duration column. Columns with no surviving values
// report only the zero kept count.
func durationProfiles(t *table.Table) ([]DurationProfile, error) {
	var profiles []DurationProfile

	for _, name := range t.ColumnsMatching(cleaner.IsDurationColumn) {
		idx, _ := t.ColumnIndex(name)

		var values []float64

		for _, row := range t.Rows {
			if minutes, ok := row[idx].AsInt(); ok {
				values = append(values, float64(minutes))
			}
		}

		profile := DurationProfile{Column: name, Kept: len(values)}

		if len(values) > 0 {
			var err error

			if profile.Min, err = stats.Min(values); err != nil {
				return nil, fmt.Errorf("profiling %s: %w", name, err)
			}

			if profile.Max, err = stats.Max(values); err != nil {
				return nil, fmt.Errorf("profiling %s: %w", name, err)
			}

			if profile.Mean, err = stats.Mean(values); err != nil {
				return nil, fmt.Errorf("profiling %s: %w", name, err)
			}

			if profile.Median, err = stats.Median(values); err != nil {
				return nil, fmt.Errorf("profiling %s: %w", name, err)
			}
		}

		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Render formats the summary as aligned text tables.
func (s *Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s: %d rows in, %d rows kept\n\n", s.RunID, s.RowsRaw, s.RowsClean)

	if len(s.NullsIntroduced) > 0 {
		rows := [][]string{{"column", "nulls introduced"}}
		for _, cn := range s.NullsIntroduced {
			rows = append(rows, []string{cn.Column, fmt.Sprintf("%d", cn.Nulls)})
		}

		b.WriteString(renderAligned(rows))
		b.WriteString("\n")
	}

	if len(s.Durations) > 0 {
		rows := [][]string{{"duration column", "kept", "min", "max", "mean", "median"}}
		for _, p := range s.Durations {
			rows = append(rows, []string{
				p.Column,
				fmt.Sprintf("%d", p.Kept),
				fmt.Sprintf("%.0f", p.Min),
				fmt.Sprintf("%.0f", p.Max),
				fmt.Sprintf("%.1f", p.Mean),
				fmt.Sprintf("%.1f", p.Median),
			})
		}

		b.WriteString(renderAligned(rows))
	}

	return b.String()
}

// renderAligned renders rows as a text table with columns padded to the
// widest cell, measured in display width.
func renderAligned(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(rows[0]))

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}

			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
		}

		b.WriteString("\n")
	}

	return b.String()
}
