package survivor

// CumulativeSum returns the running total of counts: out[i] is the sum
// of counts[0..i].
func CumulativeSum(counts []int) []int64 {
	if len(counts) == 0 {
		return nil
	}
	out := make([]int64, len(counts))
	var sum int64
	for i, c := range counts {
		sum += int64(c)
		out[i] = sum
	}
	return out
}

// RunningAverage returns the running mean of counts: out[i] is the mean
// of counts[0..i].
func RunningAverage(counts []int) []float64 {
	if len(counts) == 0 {
		return nil
	}
	out := make([]float64, len(counts))
	var sum float64
	for i, c := range counts {
		sum += float64(c)
		out[i] = sum / float64(i+1)
	}
	return out
}
