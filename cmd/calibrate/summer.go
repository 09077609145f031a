package main

// lineAccumulator tracks the first and last digit of the current line.
// Once first is set it is not overwritten until reset.
type lineAccumulator struct {
	first    int
	last     int
	digitSet bool
}

func (a *lineAccumulator) add(d int) {
	if !a.digitSet {
		a.first = d
		a.digitSet = true
	}
	a.last = d
}

func (a *lineAccumulator) value() int {
	if !a.digitSet {
		return 0
	}
	return a.first*10 + a.last
}

func (a *lineAccumulator) reset() {
	*a = lineAccumulator{}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SumDigitPairs scans data once, left to right, and sums the two-digit
// number of every '\n'-terminated line. A line with a single digit uses it
// twice. Text after the final '\n' is reported but never counted.
func SumDigitPairs(data []byte) Result {
	var result Result
	var acc lineAccumulator
	lineStart := 0

	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case isDigit(c):
			acc.add(int(c - '0'))
		case c == '\n':
			v := LineValue{
				Index:     len(result.Values),
				Line:      len(result.Values) + 1,
				Text:      string(data[lineStart:i]),
				First:     acc.first,
				Last:      acc.last,
				Value:     acc.value(),
				HasDigits: acc.digitSet,
			}
			result.Values = append(result.Values, v)
			result.Sum += v.Value
			acc.reset()
			lineStart = i + 1
		}
	}

	if lineStart < len(data) {
		result.Trailing = string(data[lineStart:])
		result.TrailingDropped = true
	}

	return result
}
