package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadNoHeaderSynthesizesNames(t *testing.T) {
	ds, err := Read(strings.NewReader("1,2,10\n3,4,20\n5,6,30\n"), Options{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Rows() != 3 || ds.Cols() != 2 {
		t.Fatalf("dims: got %dx%d, want 3x2", ds.Rows(), ds.Cols())
	}
	if ds.Names[0] != "X0" || ds.Names[1] != "X1" {
		t.Fatalf("names: %v", ds.Names)
	}
	if ds.ResponseName != "y" {
		t.Fatalf("response name: %q", ds.ResponseName)
	}
	wantY := []float64{10, 20, 30}
	for i, v := range wantY {
		if ds.Y[i] != v {
			t.Errorf("y[%d]=%v want %v", i, ds.Y[i], v)
		}
	}
	if got := ds.Row(1); got[0] != 3 || got[1] != 4 {
		t.Fatalf("row 1: %v", got)
	}
}

func TestReadHeaderUsesColumnNames(t *testing.T) {
	in := "lr,depth,loss\n0.1,3,0.5\n0.01,5,0.25\n"
	ds, err := Read(strings.NewReader(in), Options{Header: true})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Rows() != 2 {
		t.Fatalf("rows=%d want 2", ds.Rows())
	}
	if strings.Join(ds.Names, "|") != "lr|depth" {
		t.Fatalf("names: %v", ds.Names)
	}
	if ds.ResponseName != "loss" {
		t.Fatalf("response: %q", ds.ResponseName)
	}
	if ds.Y[1] != 0.25 {
		t.Fatalf("y[1]=%v", ds.Y[1])
	}
}

func TestReadTrimsNumericWhitespace(t *testing.T) {
	ds, err := Read(strings.NewReader("1, 2 ,3\n"), Options{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Row(0)[1] != 2 || ds.Y[0] != 3 {
		t.Fatalf("unexpected values: %v %v", ds.Row(0), ds.Y)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		header bool
		want   error
	}{
		{"empty", "", false, ErrEmptyDataset},
		{"header only", "a,b,y\n", true, ErrEmptyDataset},
		{"response only", "1\n2\n", false, ErrNoParameters},
		{"header response only", "y\n1\n", true, ErrNoParameters},
		{"duplicate header", "a,a,y\n1,2,3\n", true, ErrDuplicateName},
	}
	for _, c := range cases {
		_, err := Read(strings.NewReader(c.in), Options{Header: c.header})
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestReadNonNumericField(t *testing.T) {
	_, err := Read(strings.NewReader("1,2,3\n4,abc,6\n"), Options{})
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fe.Line != 2 || fe.Value != "abc" {
		t.Fatalf("unexpected field error: %+v", fe)
	}
}

func TestReadRaggedRows(t *testing.T) {
	if _, err := Read(strings.NewReader("1,2,3\n4,5\n"), Options{}); err == nil {
		t.Fatalf("expected error for inconsistent column count")
	}
}

func TestReadCSVSniffsTSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "runs.tsv")
	if err := os.WriteFile(p, []byte("a\tb\ty\n1\t2\t3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ds, err := ReadCSV(p, Options{Header: true})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ds.Cols() != 2 || ds.Y[0] != 3 {
		t.Fatalf("unexpected dataset: %+v", ds)
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	if _, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"), Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseDelimiter(t *testing.T) {
	cases := map[string]rune{"": 0, ",": ',', "tab": '\t', "\t": '\t', ";": ';', "Semicolon": ';'}
	for in, want := range cases {
		got, err := ParseDelimiter(in)
		if err != nil || got != want {
			t.Errorf("ParseDelimiter(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseDelimiter("|"); err == nil {
		t.Fatalf("expected error for unsupported delimiter")
	}
}
