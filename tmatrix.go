package tmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Kind tags the physical role of a T-matrix.
type Kind int

const (
	// KindScattered maps incident coefficients to scattered-field
	// coefficients (the usual T-matrix).
	KindScattered Kind = iota
	// KindInternal maps incident coefficients to internal-field
	// coefficients.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindScattered:
		return "scattered"
	case KindInternal:
		return "internal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TMatrix is a complex square matrix of dimension 2*Nmax*(Nmax+2)
// together with its physical kind. It is immutable once built: the
// accessors return values, never the backing storage.
type TMatrix struct {
	data *mat.CDense
	kind Kind
	nmax int
}

// New wraps data as a T-matrix truncated at multipole degree nmax.
// The matrix must be square with dimension exactly 2*nmax*(nmax+2).
// Ownership of data passes to the TMatrix; callers must not modify it
// afterwards.
func New(data *mat.CDense, kind Kind, nmax int) (*TMatrix, error) {
	if nmax < 1 {
		return nil, fmt.Errorf("%w: Nmax must be >= 1, got %d", ErrConfiguration, nmax)
	}
	r, c := data.Dims()
	want := 2 * nmax * (nmax + 2)
	if r != want || c != want {
		return nil, fmt.Errorf("%w: T-matrix for Nmax=%d must be %dx%d, got %dx%d",
			ErrConfiguration, nmax, want, want, r, c)
	}
	return &TMatrix{data: data, kind: kind, nmax: nmax}, nil
}

// Dim returns the matrix dimension 2*Nmax*(Nmax+2).
func (t *TMatrix) Dim() int { return 2 * t.nmax * (t.nmax + 2) }

// Nmax returns the multipole truncation degree.
func (t *TMatrix) Nmax() int { return t.nmax }

// Kind returns the physical kind tag.
func (t *TMatrix) Kind() Kind { return t.kind }

// At returns the element at row i, column j.
func (t *TMatrix) At(i, j int) complex128 { return t.data.At(i, j) }

// Matrix returns a copy of the underlying complex matrix.
func (t *TMatrix) Matrix() *mat.CDense {
	out := mat.NewCDense(t.Dim(), t.Dim(), nil)
	out.Copy(t.data)
	return out
}
