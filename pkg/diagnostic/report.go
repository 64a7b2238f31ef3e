package diagnostic

// Report is the structured form of a single validation error, shared between
// native callers and the CLI's JSON output.
type Report struct {
	Kind            string `json:"kind"`
	File            string `json:"file"`
	Line            int    `json:"line"`
	Column          int    `json:"column"`
	Message         string `json:"message"`
	Help            string `json:"help,omitempty"`
	UnderlineLength int    `json:"underlineLength,omitempty"`
}

// Render formats the report against the source code it was produced from.
// It is equivalent to calling FormatValidationError with the report's fields.
func (r Report) Render(code string) string {
	return FormatValidationError(code, r.File, r.Kind, r.Line, r.Column, r.Message, r.Help, r.UnderlineLength)
}
