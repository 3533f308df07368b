package spline

import "errors"

// bandMatrix is a square matrix with bw nonzero diagonals on each side
// of the main one, stored row-major with 2*bw+1 slots per row.
type bandMatrix struct {
	n, bw int
	data  []float64
}

func newBandMatrix(n, bw int) *bandMatrix {
	return &bandMatrix{n: n, bw: bw, data: make([]float64, n*(2*bw+1))}
}

func (m *bandMatrix) at(i, j int) float64 {
	return m.data[i*(2*m.bw+1)+j-i+m.bw]
}

func (m *bandMatrix) set(i, j int, v float64) {
	m.data[i*(2*m.bw+1)+j-i+m.bw] = v
}

// factorize computes an in-place LU decomposition without pivoting.
// B-spline collocation matrices are totally positive, for which
// pivotless elimination is stable and never hits a zero pivot unless
// the interpolation problem itself is singular.
func (m *bandMatrix) factorize() error {
	for k := 0; k < m.n; k++ {
		piv := m.at(k, k)
		if piv == 0 {
			return errors.New("singular collocation matrix")
		}
		last := min(k+m.bw, m.n-1)
		for i := k + 1; i <= last; i++ {
			mult := m.at(i, k) / piv
			m.set(i, k, mult)
			for j := k + 1; j <= last; j++ {
				m.set(i, j, m.at(i, j)-mult*m.at(k, j))
			}
		}
	}
	return nil
}

// solve overwrites b with the solution of the factorized system.
func (m *bandMatrix) solve(b []float64) {
	for k := 0; k < m.n; k++ {
		last := min(k+m.bw, m.n-1)
		for i := k + 1; i <= last; i++ {
			b[i] -= m.at(i, k) * b[k]
		}
	}
	for k := m.n - 1; k >= 0; k-- {
		last := min(k+m.bw, m.n-1)
		for j := k + 1; j <= last; j++ {
			b[k] -= m.at(k, j) * b[j]
		}
		b[k] /= m.at(k, k)
	}
}
