package scalar

// Sequence returns the inclusive integer sequence [start, stop]. The sequence
// is empty when stop < start; unnesting an empty sequence drops the row,
// which is how a zero replication count removes a row from a sample.
func Sequence(start, stop int64) []int64 {
	if stop < start {
		return nil
	}
	out := make([]int64, 0, stop-start+1)
	for v := start; v <= stop; v++ {
		out = append(out, v)
	}
	return out
}
