package scenario

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/KaramelBytes/fanova-csv/internal/dataset"
)

var paramLineRe = regexp.MustCompile(`^(.+) \[([^,\]]+), ([^\]]+)\] \[([^\]]+)\]$`)

// Assignment is one name='value' pair of a paramstrings line.
type Assignment struct {
	Name  string
	Value string
}

// ParamString is one parsed line of paramstrings.txt.
type ParamString struct {
	Index  int
	Values []Assignment
}

// Summary describes a scenario directory that passed Check.
type Summary struct {
	Params []dataset.ParameterSpec
	Rows   int
}

// ReadParamFile parses param-file.txt.
func ReadParamFile(r io.Reader) ([]dataset.ParameterSpec, error) {
	var specs []dataset.ParameterSpec
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		m := paramLineRe.FindStringSubmatch(sc.Text())
		if m == nil {
			return nil, fmt.Errorf("param file line %d: malformed %q", n, sc.Text())
		}
		var vals [3]float64
		for i, s := range m[2:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("param file line %d: %w", n, err)
			}
			vals[i] = v
		}
		specs = append(specs, dataset.ParameterSpec{Name: m[1], Lower: vals[0], Upper: vals[1], Default: vals[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read param file: %w", err)
	}
	return specs, nil
}

// ReadParamStrings parses paramstrings.txt.
func ReadParamStrings(r io.Reader) ([]ParamString, error) {
	var out []ParamString
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for n := 1; sc.Scan(); n++ {
		ps, err := parseParamString(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("paramstrings line %d: %w", n, err)
		}
		out = append(out, ps)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read paramstrings: %w", err)
	}
	return out, nil
}

func parseParamString(line string) (ParamString, error) {
	idx, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return ParamString{}, fmt.Errorf("missing index in %q", line)
	}
	i, err := strconv.Atoi(idx)
	if err != nil {
		return ParamString{}, fmt.Errorf("bad index: %w", err)
	}
	ps := ParamString{Index: i}
	for rest != "" {
		name, tail, ok := strings.Cut(rest, "='")
		if !ok {
			return ParamString{}, fmt.Errorf("missing assignment in %q", rest)
		}
		value, tail, ok := strings.Cut(tail, "'")
		if !ok {
			return ParamString{}, fmt.Errorf("unterminated value for %s", name)
		}
		ps.Values = append(ps.Values, Assignment{Name: name, Value: value})
		if tail != "" {
			if !strings.HasPrefix(tail, ", ") {
				return ParamString{}, fmt.Errorf("unexpected %q after %s", tail, name)
			}
			tail = tail[2:]
		}
		rest = tail
	}
	return ps, nil
}

// ReadRunsAndResults parses runs_and_results.csv and returns the response of
// every run in file order.
func ReadRunsAndResults(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read runs header: %w", err)
	}
	if strings.Join(header, ",") != strings.Join(RunsHeader, ",") {
		return nil, fmt.Errorf("unexpected runs header: %v", header)
	}
	var y []float64
	for n := 0; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read runs: %w", err)
		}
		if rec[0] != strconv.Itoa(n) {
			return nil, fmt.Errorf("run %d: unexpected run number %q", n, rec[0])
		}
		v, err := strconv.ParseFloat(rec[runQualityCol], 64)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", n, err)
		}
		y = append(y, v)
	}
	return y, nil
}

// Check reads every file of the scenario directory and cross-checks them:
// run and paramstrings counts agree, each paramstrings row assigns every
// parameter in order, and every value lies within its bounds.
func Check(dir string) (*Summary, error) {
	inst, err := os.ReadFile(filepath.Join(dir, InstancesFile))
	if err != nil {
		return nil, fmt.Errorf("read instances: %w", err)
	}
	if string(inst) != "." {
		return nil, fmt.Errorf("instances file: unexpected content %q", inst)
	}
	var want bytes.Buffer
	_ = WriteScenario(&want)
	got, err := os.ReadFile(filepath.Join(dir, ScenarioFile))
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		return nil, errors.New("scenario file differs from the expected manifest")
	}

	var (
		specs []dataset.ParameterSpec
		rows  []ParamString
		y     []float64
	)
	if err := readWith(dir, ParamFile, func(r io.Reader) (err error) { specs, err = ReadParamFile(r); return }); err != nil {
		return nil, err
	}
	if err := readWith(dir, ParamStringsFile, func(r io.Reader) (err error) { rows, err = ReadParamStrings(r); return }); err != nil {
		return nil, err
	}
	if err := readWith(dir, RunsAndResultsFile, func(r io.Reader) (err error) { y, err = ReadRunsAndResults(r); return }); err != nil {
		return nil, err
	}

	if len(rows) != len(y) {
		return nil, fmt.Errorf("%d paramstrings rows but %d runs", len(rows), len(y))
	}
	for i, row := range rows {
		if row.Index != i {
			return nil, fmt.Errorf("paramstrings row %d has index %d", i, row.Index)
		}
		if len(row.Values) != len(specs) {
			return nil, fmt.Errorf("paramstrings row %d assigns %d of %d parameters", i, len(row.Values), len(specs))
		}
		for j, a := range row.Values {
			s := specs[j]
			if a.Name != s.Name {
				return nil, fmt.Errorf("paramstrings row %d: parameter %d is %q, want %q", i, j, a.Name, s.Name)
			}
			v, err := strconv.ParseFloat(a.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("paramstrings row %d: %s: %w", i, a.Name, err)
			}
			if v < s.Lower || v > s.Upper {
				return nil, fmt.Errorf("paramstrings row %d: %s=%s outside [%s, %s]", i, a.Name, a.Value, FormatFloat(s.Lower), FormatFloat(s.Upper))
			}
		}
	}
	return &Summary{Params: specs, Rows: len(rows)}, nil
}

func readWith(dir, name string, read func(io.Reader) error) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
