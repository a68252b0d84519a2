package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// rowReader gives typed access to one CSV row by column name. Malformed
// numeric cells read as zero; the loader tolerates dirty values but not
// missing columns.
type rowReader struct {
	index map[string]int
	cells []string
}

func (r rowReader) str(col string) string {
	i := r.index[col]
	if i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

func (r rowReader) floatval(col string) float64 {
	f, err := strconv.ParseFloat(r.str(col), 64)
	if err != nil {
		return 0
	}
	return f
}

func (r rowReader) intval(col string) int {
	// Some exports store counts as "3.0"
	return int(r.floatval(col))
}

// loadTable parses one CSV file and invokes visit for every data row.
// All columns in required must appear in the header.
func loadTable(path string, required []string, visit func(rowReader)) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	// Read header
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV headers from %s: %w", filepath.Base(path), err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("dataset %s is missing required column %q", filepath.Base(path), col)
		}
	}

	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		visit(rowReader{index: index, cells: cells})
	}

	return nil
}
