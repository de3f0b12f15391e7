// Package baseline groups visibility rows by antenna pair.
//
// A baseline is an unordered pair of antennas. Rows recorded as (A,B) and
// rows recorded as the mirror (B,A) belong to the same baseline, so every
// row is first reduced to a canonical [Key] with the smaller antenna first.
//
// [Partition] splits the row index range [0, N) into disjoint [Group] values
// in a single pass:
//
//	groups, err := baseline.Partition(antenna1, antenna2)
//	for _, g := range groups {
//		fmt.Println(g.Key, g.Rows)
//	}
//
// Groups appear in order of the first row of each baseline, and the rows of
// a group keep their original relative order. Nothing is re-sorted.
package baseline
