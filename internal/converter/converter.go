// Package converter turns a CSV dataset into a scenario directory and hands
// it to an analysis engine.
//
// A Converter owns its scenario directory: New creates and populates it, and
// Close removes it. The engine must be done reading the files before Close.
package converter

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/KaramelBytes/fanova-csv/internal/dataset"
	"github.com/KaramelBytes/fanova-csv/internal/scenario"
)

// Engine consumes a populated scenario directory.
type Engine interface {
	Open(scenarioDir string, opts map[string]string) error
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(scenarioDir string, opts map[string]string) error

// Open calls f.
func (f EngineFunc) Open(scenarioDir string, opts map[string]string) error {
	return f(scenarioDir, opts)
}

// Options controls a conversion.
type Options struct {
	// Header treats the first CSV record as column names.
	Header bool
	// Delimiter for CSV. If 0, picks one from the file extension.
	Delimiter rune
	// BaseDir is the parent of the generated scenario directory; empty means os.TempDir().
	BaseDir string
	// OutDir writes into this directory instead of a generated one. Close leaves it in place.
	OutDir string
	// EngineOptions are passed to the engine untouched.
	EngineOptions map[string]string
	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// Converter holds a converted dataset and the scenario directory it was written to.
type Converter struct {
	dir   *scenario.Dir
	ds    *dataset.Dataset
	specs []dataset.ParameterSpec
}

// New reads csvPath, writes the scenario files and opens eng on them. eng may
// be nil. On any error the scenario directory is released before returning.
func New(csvPath string, opt Options, eng Engine) (_ *Converter, err error) {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	var dir *scenario.Dir
	if opt.OutDir != "" {
		dir, err = scenario.Pin(opt.OutDir)
	} else {
		dir, err = scenario.Acquire(opt.BaseDir)
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, dir.Release())
		}
	}()

	ds, err := dataset.ReadCSV(csvPath, dataset.Options{Header: opt.Header, Delimiter: opt.Delimiter})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", csvPath, err)
	}
	logger.Printf("number of parameters: %d, rows: %d", ds.Cols(), ds.Rows())

	if err := scenario.WriteAll(dir.Path(), ds); err != nil {
		return nil, err
	}
	logger.Printf("wrote scenario files in %s", dir.Path())

	if eng != nil {
		if err := eng.Open(dir.Path(), opt.EngineOptions); err != nil {
			return nil, fmt.Errorf("open engine: %w", err)
		}
	}
	return &Converter{dir: dir, ds: ds, specs: ds.Specs()}, nil
}

// Dir returns the scenario directory path.
func (c *Converter) Dir() string { return c.dir.Path() }

// Dataset returns the parsed dataset.
func (c *Converter) Dataset() *dataset.Dataset { return c.ds }

// Specs returns the derived parameter bounds and defaults.
func (c *Converter) Specs() []dataset.ParameterSpec { return c.specs }

// Keep detaches the scenario directory so Close leaves it on disk, and
// returns its path.
func (c *Converter) Keep() string { return c.dir.Detach() }

// Close removes the scenario directory unless it was pinned or kept.
func (c *Converter) Close() error { return c.dir.Release() }
