package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Options controls how a CSV file is turned into a Dataset.
type Options struct {
	// Header treats the first record as column names.
	Header bool
	// Delimiter for CSV. If 0, picks one from the file extension.
	Delimiter rune
}

var (
	// ErrEmptyDataset is returned when the input has no data rows.
	ErrEmptyDataset = errors.New("dataset has no data rows")
	// ErrNoParameters is returned when rows hold only a response column.
	ErrNoParameters = errors.New("dataset needs at least one parameter column before the response")
	// ErrDuplicateName is returned when a header repeats a column name.
	ErrDuplicateName = errors.New("duplicate column name in header")
)

// FieldError reports a field that could not be parsed as a number.
type FieldError struct {
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d, column %d: parse %q as number: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ReadCSV opens path and reads it into a Dataset.
func ReadCSV(path string, opt Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	if opt.Delimiter == 0 {
		opt.Delimiter = sniffDelimiter(path)
	}
	return Read(f, opt)
}

// Read parses CSV records from r. The last field of every record is the
// response; all preceding fields are parameters.
func Read(r io.Reader, opt Options) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = ','
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}

	var names []string
	response := "y"
	if opt.Header {
		header, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyDataset
			}
			return nil, fmt.Errorf("read header: %w", err)
		}
		seen := make(map[string]bool, len(header))
		for _, h := range header {
			if seen[h] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateName, h)
			}
			seen[h] = true
		}
		if len(header) < 2 {
			return nil, ErrNoParameters
		}
		names = append([]string(nil), header[:len(header)-1]...)
		response = header[len(header)-1]
	}

	var (
		data []float64
		y    []float64
		rows int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if names == nil {
			if len(rec) < 2 {
				return nil, ErrNoParameters
			}
			names = make([]string, len(rec)-1)
			for j := range names {
				names[j] = "X" + strconv.Itoa(j)
			}
		}
		if data == nil {
			data = make([]float64, 0, 64*len(names))
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, col := cr.FieldPos(j)
				return nil, &FieldError{Line: line, Column: col, Value: field, Err: err}
			}
			if j == len(rec)-1 {
				y = append(y, v)
			} else {
				data = append(data, v)
			}
		}
		rows++
	}
	if rows == 0 {
		return nil, ErrEmptyDataset
	}

	return &Dataset{
		Names:        names,
		ResponseName: response,
		X:            mat.NewDense(rows, len(names), data),
		Y:            y,
	}, nil
}
