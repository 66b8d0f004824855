// Package search finds values in slices sorted in ascending order.
//
// A miss is reported through the boolean result, never through a reserved
// index:
//
//	i, ok := search.Search(sorted, 7)
//	if !ok {
//	    // 7 is not present
//	}
//
// The input must be sorted ascending; results on unsorted input are
// unspecified.
package search
