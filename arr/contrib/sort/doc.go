// Package sort provides in-place sorting and order-statistic selection for
// slices of ordered elements.
//
// # Algorithms
//
// The randomized family shares one partition routine:
//   - Partition splits an inclusive index range around a uniformly chosen pivot
//   - QuickSort recursively partitions both sides
//   - Select narrows towards a single rank without sorting everything
//
// The independent sorts are:
//   - MergeSort: top-down merge sort with sentinel-terminated merging, O(n log n)
//     worst case and O(n) scratch space
//   - InsertionSort: shifting insertion sort, quadratic but cheap for small inputs
//
// # Randomness
//
// Functions with a Rand suffix take an arr.Source so tests and reproducible
// runs can fix the pivot sequence:
//
//	src := arr.NewSource(42)
//	sort.QuickSortRand(data, src)
//	v, err := sort.SelectRand(data, 3, src)
//
// The other entry points use arr.DefaultSource, which honors ARR_SEED.
//
// # Recursion depth
//
// QuickSort recurses only into the smaller partition and iterates over the
// larger one, and Select never recurses, so stack use stays O(log n) even when
// pivots are consistently unlucky. Running time is still quadratic in that
// case, most visibly for arrays of many equal elements.
package sort
