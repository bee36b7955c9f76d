package dataset

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dataset is a numeric parameter matrix plus one response value per row.
type Dataset struct {
	// Names holds one resolved name per parameter column, in column order.
	Names []string
	// ResponseName is the header of the last column, or "y" without a header.
	ResponseName string
	// X is the rows×params parameter matrix.
	X *mat.Dense
	// Y holds the response of each row.
	Y []float64
}

// ParameterSpec describes the domain of one parameter as observed in the data.
type ParameterSpec struct {
	Name    string  `json:"name" yaml:"name"`
	Lower   float64 `json:"lower" yaml:"lower"`
	Upper   float64 `json:"upper" yaml:"upper"`
	Default float64 `json:"default" yaml:"default"`
}

// Rows returns the number of data rows.
func (d *Dataset) Rows() int {
	r, _ := d.X.Dims()
	return r
}

// Cols returns the number of parameter columns.
func (d *Dataset) Cols() int { return len(d.Names) }

// Row returns a copy of the parameter values of row i.
func (d *Dataset) Row(i int) []float64 {
	return mat.Row(nil, i, d.X)
}

// Specs derives bounds and defaults for every parameter column.
// Bounds are the observed (min, max) and the default is the minimum.
func (d *Dataset) Specs() []ParameterSpec {
	specs := make([]ParameterSpec, d.Cols())
	col := make([]float64, d.Rows())
	for j, name := range d.Names {
		mat.Col(col, j, d.X)
		lo, hi := floats.Min(col), floats.Max(col)
		specs[j] = ParameterSpec{Name: name, Lower: lo, Upper: hi, Default: lo}
	}
	return specs
}
