package codebook

import (
	"fmt"
	"os"
	"strings"
)

// ReadDocument loads the codebook document and splits it into lines.
// Carriage returns are stripped so line ranges behave the same for LF
// and CRLF documents.
func ReadDocument(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read codebook: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	return strings.Split(text, "\n"), nil
}
