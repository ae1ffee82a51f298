// Package csvutil renders loaded collection rows as a flat delimited file
// for the admin export path.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Marshal writes a header row followed by the data rows. Values containing
// the delimiter (or quotes/newlines) are quoted by the writer.
func Marshal(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i, len(row), len(headers))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return buf.Bytes(), nil
}
