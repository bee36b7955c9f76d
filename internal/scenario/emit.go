package scenario

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/KaramelBytes/fanova-csv/internal/dataset"
	"github.com/KaramelBytes/fanova-csv/internal/utils"
)

// File names inside a scenario directory.
const (
	InstancesFile      = "instances.txt"
	ScenarioFile       = "scenario.txt"
	RunsAndResultsFile = "runs_and_results.csv"
	ParamFile          = "param-file.txt"
	ParamStringsFile   = "paramstrings.txt"
)

var manifest = []struct{ key, value string }{
	{"algo", "."},
	{"execdir", "."},
	{"deterministic", "0"},
	{"run_obj", "qual"},
	{"overall_obj", "mean"},
	{"cutoff_time", "1e100"},
	{"cutoff_length", "0"},
	{"tunerTimeout", "0"},
	{"paramfile", "."},
	{"instance_file", "."},
	{"test_instance_file", "."},
}

// RunsHeader is the fixed header row of runs_and_results.csv.
var RunsHeader = []string{
	"Run Number",
	"Run History Configuration ID",
	"Instance ID",
	"Response Value (y)",
	"Censored?",
	"Cutoff Time Used",
	"Seed",
	"Runtime",
	"Run Length",
	"Run Result Code",
	"Run Quality",
	"SMAC Iteration",
	"SMAC Cumulative Runtime",
	"Run Result",
}

// runQualityCol is the column of RunsHeader that carries the response.
const runQualityCol = 10

// WriteInstances writes the instances list: a single ".".
func WriteInstances(w io.Writer) error {
	_, err := io.WriteString(w, ".")
	return err
}

// WriteScenario writes the constant scenario manifest.
func WriteScenario(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, kv := range manifest {
		fmt.Fprintf(bw, "%s = %s\n", kv.key, kv.value)
	}
	return bw.Flush()
}

// WriteRunsAndResults writes one successful run per response value.
// Records end in CRLF like Python's csv module, which produced these files originally.
func WriteRunsAndResults(w io.Writer, y []float64) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(RunsHeader); err != nil {
		return err
	}
	row := make([]string, len(RunsHeader))
	for i, v := range y {
		idx := strconv.Itoa(i)
		copy(row, []string{idx, idx, "1", "0", "0", "0", "1", "0", "0", "0", FormatFloat(v), "0", "0", "SAT"})
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteParamFile writes one "<name> [<min>, <max>] [<default>]" line per parameter.
func WriteParamFile(w io.Writer, specs []dataset.ParameterSpec) error {
	bw := bufio.NewWriter(w)
	for _, s := range specs {
		fmt.Fprintf(bw, "%s [%s, %s] [%s]\n", s.Name, FormatFloat(s.Lower), FormatFloat(s.Upper), FormatFloat(s.Default))
	}
	return bw.Flush()
}

// WriteParamStrings writes the parameter assignment of every row as
// "<i>: <name>='<value>', ...".
func WriteParamStrings(w io.Writer, ds *dataset.Dataset) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < ds.Rows(); i++ {
		bw.WriteString(strconv.Itoa(i))
		bw.WriteString(": ")
		for j, v := range ds.Row(i) {
			if j > 0 {
				bw.WriteString(", ")
			}
			bw.WriteString(ds.Names[j])
			bw.WriteString("='")
			bw.WriteString(FormatFloat(v))
			bw.WriteString("'")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteAll populates dir with the five scenario files for ds.
func WriteAll(dir string, ds *dataset.Dataset) error {
	specs := ds.Specs()
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{InstancesFile, WriteInstances},
		{RunsAndResultsFile, func(w io.Writer) error { return WriteRunsAndResults(w, ds.Y) }},
		{ParamFile, func(w io.Writer) error { return WriteParamFile(w, specs) }},
		{ParamStringsFile, func(w io.Writer) error { return WriteParamStrings(w, ds) }},
		{ScenarioFile, WriteScenario},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
