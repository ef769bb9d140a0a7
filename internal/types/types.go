package types

// Issue represents a syntax problem found in a single source file.
// A zero Line or Column means the parser did not report a position,
// and an empty Text means no offending source line was available.
type Issue struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Text     string `json:"text,omitempty"`
}
