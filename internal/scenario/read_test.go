package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParamStringsRoundTrip(t *testing.T) {
	in := "a,b,c,y\n1,0.5,-3,9\n2.25,1e-06,4,8\n"
	ds := mustRead(t, in, true)
	dir, _ := writeAllFiles(t, ds)

	f, err := os.Open(filepath.Join(dir, ParamStringsFile))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := ReadParamStrings(f)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []ParamString{
		{Index: 0, Values: []Assignment{{"a", "1.0"}, {"b", "0.5"}, {"c", "-3.0"}}},
		{Index: 1, Values: []Assignment{{"a", "2.25"}, {"b", "1e-06"}, {"c", "4.0"}}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("paramstrings mismatch (-want +got):\n%s", diff)
	}
	for i, row := range rows {
		for j, a := range row.Values {
			if a.Value != FormatFloat(ds.Row(i)[j]) {
				t.Errorf("row %d col %d: %s != %v", i, j, a.Value, ds.Row(i)[j])
			}
		}
	}
}

func TestReadParamFile(t *testing.T) {
	specs, err := ReadParamFile(strings.NewReader("learning rate [0.001, 0.1] [0.001]\nX1 [2.0, 2.0] [2.0]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(specs) != 2 || specs[0].Name != "learning rate" || specs[0].Upper != 0.1 {
		t.Fatalf("unexpected specs: %+v", specs)
	}
	if specs[1].Lower != 2 || specs[1].Default != 2 {
		t.Fatalf("degenerate spec: %+v", specs[1])
	}
	if _, err := ReadParamFile(strings.NewReader("X0 1.0 5.0\n")); err == nil {
		t.Fatalf("expected malformed line error")
	}
}

func TestParseParamStringErrors(t *testing.T) {
	for _, line := range []string{"X0='1.0'", "x: X0='1.0'", "0: X0=1.0", "0: X0='1.0' X1='2.0'", "0: X0='1.0"} {
		if _, err := parseParamString(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestReadRunsAndResults(t *testing.T) {
	ds := mustRead(t, exampleCSV, false)
	dir, _ := writeAllFiles(t, ds)
	f, err := os.Open(filepath.Join(dir, RunsAndResultsFile))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	y, err := ReadRunsAndResults(f)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(ds.Y, y); diff != "" {
		t.Fatalf("responses mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck(t *testing.T) {
	ds := mustRead(t, exampleCSV, false)
	dir, _ := writeAllFiles(t, ds)
	sum, err := Check(dir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if sum.Rows != 3 || len(sum.Params) != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if diff := cmp.Diff(ds.Specs(), sum.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckDetectsTampering(t *testing.T) {
	cases := map[string]string{
		ParamStringsFile: "0: X0='1.0', X1='2.0'\n1: X0='9.0', X1='4.0'\n2: X0='5.0', X1='6.0'\n",
		ScenarioFile:     "algo = .\n",
		InstancesFile:    "x",
	}
	for name, content := range cases {
		dir, _ := writeAllFiles(t, mustRead(t, exampleCSV, false))
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := Check(dir); err == nil {
			t.Errorf("%s: expected check failure", name)
		}
	}

	dir, _ := writeAllFiles(t, mustRead(t, exampleCSV, false))
	if err := os.Remove(filepath.Join(dir, RunsAndResultsFile)); err != nil {
		t.Fatal(err)
	}
	if _, err := Check(dir); err == nil {
		t.Fatalf("expected failure with missing runs file")
	}
}
