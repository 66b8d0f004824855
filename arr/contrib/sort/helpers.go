package sort

import "github.com/ajroetker/go-arrayalgo/arr"

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T arr.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
