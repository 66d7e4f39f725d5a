package math

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant
// is zero within tolerance. A shape configured with such a transform is a
// scene construction error.
var ErrSingularMatrix = errors.New("matrix is not invertible")

// Matrix is a 4x4 matrix representing an affine transform in homogeneous
// coordinates.
type Matrix [4][4]float64

// Matrix3 is a 3x3 submatrix used for cofactor expansion
type Matrix3 [3][3]float64

// Matrix2 is a 2x2 submatrix used for cofactor expansion
type Matrix2 [2][2]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other. The rightmost factor is
// applied first to any tuple transformed by the result.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple applies the transform to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Submatrix returns the 3x3 matrix left after deleting the given row and column
func (m Matrix) Submatrix(row, col int) Matrix3 {
	var result Matrix3
	for r, rr := 0, 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c, cc := 0, 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[rr][cc] = m[r][c]
			cc++
		}
		rr++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	var det float64
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Inverse returns the general cofactor inverse of the matrix, valid for any
// invertible 4x4 matrix. It is computed on demand, never cached. Returns
// ErrSingularMatrix when the determinant is zero within tolerance.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, ErrSingularMatrix
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed placement inverts in one pass
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals compares two matrices element-wise within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEquals(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// Submatrix returns the 2x2 matrix left after deleting the given row and column
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var result Matrix2
	for r, rr := 0, 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c, cc := 0, 0; c < 3; c++ {
			if c == col {
				continue
			}
			result[rr][cc] = m[r][c]
			cc++
		}
		rr++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along the first row
func (m Matrix3) Determinant() float64 {
	var det float64
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Determinant returns ad - bc
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
