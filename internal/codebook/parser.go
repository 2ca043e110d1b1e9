// Package codebook extracts variable labels from the survey codebook
// document that accompanies the raw extract.
package codebook

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Parser errors.
var (
	ErrLineRangeOutOfBounds = errors.New("label line range exceeds document length")
	ErrInvalidLineRange     = errors.New("label line range start must not exceed end")
)

// Label pairs a raw variable code with its human-readable description.
type Label struct {
	Code        string
	Description string
}

// Parser extracts label definitions from codebook text. The label block
// location is positional: the caller supplies the 1-based line range for
// the codebook version in use.
type Parser struct {
	quotedPattern *regexp.Regexp
}

// NewParser creates a new codebook parser.
func NewParser() *Parser {
	return &Parser{
		// Description is the text inside the first pair of double quotes.
		quotedPattern: regexp.MustCompile(`"([^"]*)"`),
	}
}

// ParseLines extracts one label per line from lines[start-1:end]. The
// variable code is the second whitespace-delimited token and the
// description is the first double-quoted span. Codes ending in dupSuffix
// mark duplicate duration variables and are dropped. A line that does
// not match the expected shape still produces an entry, possibly empty
// or garbage; the codebook layout is trusted, not validated.
func (p *Parser) ParseLines(lines []string, start, end int, dupSuffix string) ([]Label, error) {
	if start > end {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidLineRange, start, end)
	}

	if start < 1 || end > len(lines) {
		return nil, fmt.Errorf("%w: lines %d-%d of %d", ErrLineRangeOutOfBounds, start, end, len(lines))
	}

	var labels []Label

	for _, line := range lines[start-1 : end] {
		label := p.parseLine(line)

		if dupSuffix != "" && strings.HasSuffix(label.Code, dupSuffix) {
			continue
		}

		labels = append(labels, label)
	}

	return labels, nil
}

// parseLine extracts the (code, description) pair from one label line.
func (p *Parser) parseLine(line string) Label {
	var label Label

	fields := strings.Fields(line)
	if len(fields) >= 2 {
		label.Code = fields[1]
	}

	if m := p.quotedPattern.FindStringSubmatch(line); m != nil {
		label.Description = m[1]
	}

	return label
}

// Mapping inverts the labels into a description-to-code map, the
// direction the rename stage consumes. Duplicate descriptions resolve
// last-write-wins.
func Mapping(labels []Label) map[string]string {
	mapping := make(map[string]string, len(labels))

	for _, label := range labels {
		mapping[label.Description] = label.Code
	}

	return mapping
}
