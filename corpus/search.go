// search.go — fixed-stride binary search over a bucket of equal-width records.
package corpus

// Search locates target within bucket, where bucket is a delimiter-free
// concatenation of ascending records that are exactly width bytes each.
//
// On a hit it returns (byte offset of the record, true). On a miss it
// returns (byte offset at which target would have to be inserted to keep
// the bucket sorted, false); when target sorts after every record, that
// offset is len(bucket).
//
// Records are compared as raw byte strings, the same ordering the buckets
// were sorted with, so the result is well defined for any target — even
// one whose length differs from width (such a target can never be found,
// but its insertion offset still bounds range scans correctly).
//
// Pure function of its inputs: no allocation, no side effects.
// Complexity: O(width · log(len(bucket)/width)).
func Search(bucket, target string, width int) (offset int, found bool) {
	if width <= 0 {
		return 0, false
	}

	// Invariant: the answer lies in record index range [lo, hi].
	lo, hi := 0, len(bucket)/width
	for lo != hi {
		mid := lo + (hi-lo)/2
		record := bucket[mid*width : (mid+1)*width]
		switch {
		case target == record:
			return mid * width, true
		case target > record:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return lo * width, false
}
