package arr

// NewMatrix returns a rows x cols array with every cell set to initial.
// Each row is its own slice, so writing to one row never shows up in another.
func NewMatrix[T any](rows, cols int, initial T) [][]T {
	m := make([][]T, rows)
	for i := range m {
		row := make([]T, cols)
		for j := range row {
			row[j] = initial
		}
		m[i] = row
	}
	return m
}
