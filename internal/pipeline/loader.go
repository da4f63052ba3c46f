package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"sales-dashboard/internal/errors"
)

// Load reads the CSV at path into a Frame. A missing file is reported
// distinctly from every other failure so the dashboard can tell the
// operator to fix the configured path rather than the file contents.
func Load(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(fmt.Sprintf(
				"the file %q was not found; place the CSV next to the binary or point CSV_FILE at it", path))
		}
		return nil, errors.LoadWrap(err, fmt.Sprintf("open %q", path))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.LoadWrap(err, fmt.Sprintf("%q is empty", path))
		}
		return nil, errors.LoadWrap(err, fmt.Sprintf("read header of %q; check the CSV file format", path))
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.LoadWrap(err, fmt.Sprintf("read %q; check the CSV file format", path))
		}
		rows = append(rows, record)
	}

	return NewFrame(header, rows), nil
}
