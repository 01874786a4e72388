package wavetable

import (
	"errors"
	"fmt"
)

// Common errors returned by the engine.
var (
	// ErrInvalidTable indicates a table that violates its shape
	// contract (nil, zero rows, or data length not matching rows*columns).
	ErrInvalidTable = errors.New("invalid wavetable")

	// ErrInvalidConfig indicates invalid sampler configuration or an
	// unrecognized kernel or boundary tag.
	ErrInvalidConfig = errors.New("invalid sampler configuration")

	// ErrLengthMismatch indicates batch buffers of unequal length.
	ErrLengthMismatch = errors.New("number and phase buffers must be the same length")

	// ErrNonFinite indicates a NaN or infinite coordinate, which is
	// rejected before any index computation.
	ErrNonFinite = errors.New("non-finite coordinate")
)

// Table is an immutable, contiguous, row-major 2D grid of float32
// samples. Rows index the morph axis, columns the phase axis. A table
// always has at least one row; zero columns is a valid degenerate shape
// that yields no lookup value.
//
// Tables are constructed by [New] or [FromRows]; the zero value is
// invalid and is rejected by every operation.
type Table struct {
	data []float32
	rows int
	cols int
}

// New creates a table viewing data as a rows x cols row-major grid.
// The slice is borrowed, not copied; the caller must not mutate it
// while the table is in use. len(data) must equal rows*cols and rows
// must be at least 1.
func New(data []float32, rows, cols int) (*Table, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidTable, rows)
	}
	if cols < 0 {
		return nil, fmt.Errorf("%w: columns must be non-negative, got %d", ErrInvalidTable, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: data length %d does not match %dx%d grid",
			ErrInvalidTable, len(data), rows, cols)
	}

	return &Table{data: data, rows: rows, cols: cols}, nil
}

// FromRows creates a table by copying the given rows into a single
// contiguous buffer. All rows must have the same length and there must
// be at least one row.
func FromRows(rows [][]float32) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: at least one row required", ErrInvalidTable)
	}

	cols := len(rows[0])
	data := make([]float32, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, row 0 has %d",
				ErrInvalidTable, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return &Table{data: data, rows: len(rows), cols: cols}, nil
}

// Rows returns the number of morph-axis rows.
func (t *Table) Rows() int {
	return t.rows
}

// Columns returns the number of phase-axis columns.
func (t *Table) Columns() int {
	return t.cols
}

// Row returns the samples of row r as a view into the table's backing
// buffer. r must be in [0, Rows()).
func (t *Table) Row(r int) []float32 {
	return t.data[r*t.cols : (r+1)*t.cols]
}

// At returns the sample at row r, column c. Both indices must be in
// range.
func (t *Table) At(r, c int) float32 {
	return t.data[r*t.cols+c]
}

// Data returns the table's backing buffer in row-major order.
func (t *Table) Data() []float32 {
	return t.data
}

// MemoryUsage returns the size of the sample data in bytes.
func (t *Table) MemoryUsage() int64 {
	return int64(t.rows) * int64(t.cols) * bytesPerFloat32
}

// validate checks the table's shape contract. It guards against
// zero-value tables and hand-rolled struct corruption; tables built by
// the constructors always pass.
func (t *Table) validate() error {
	if t == nil {
		return fmt.Errorf("%w: table is nil", ErrInvalidTable)
	}
	if t.rows < 1 {
		return fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidTable, t.rows)
	}
	if t.cols < 0 || len(t.data) != t.rows*t.cols {
		return fmt.Errorf("%w: data length %d does not match %dx%d grid",
			ErrInvalidTable, len(t.data), t.rows, t.cols)
	}
	return nil
}
