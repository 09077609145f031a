package main

// LineValue is the two-digit number computed for one terminated line
type LineValue struct {
	Index     int    // position in the results sequence (0-based)
	Line      int    // 1-based line number in the input
	Text      string // line content without the terminator
	First     int    // first digit seen, valid only if HasDigits
	Last      int    // last digit seen, valid only if HasDigits
	Value     int    // First*10 + Last, or 0 for a line without digits
	HasDigits bool
}

// Result holds everything the summer produced for one input buffer
type Result struct {
	Values          []LineValue
	Sum             int
	Trailing        string // unterminated text after the last '\n'
	TrailingDropped bool   // true if Trailing is non-empty
}

// Missing returns the terminated lines that contained no digit
func (r Result) Missing() []LineValue {
	var out []LineValue
	for _, v := range r.Values {
		if !v.HasDigits {
			out = append(out, v)
		}
	}
	return out
}

// JSON output structures

type JSONValue struct {
	Index     int  `json:"index"`
	Line      int  `json:"line"`
	Value     int  `json:"value"`
	HasDigits bool `json:"has_digits"`
}

type JSONOutput struct {
	Lines           int         `json:"lines"`
	Answer          int         `json:"answer"`
	Values          []JSONValue `json:"values"`
	DroppedTrailing bool        `json:"dropped_trailing"`
}
