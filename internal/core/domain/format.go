package domain

// Format identifies the encoding of an input or output document.
type Format string

const (
	// FormatAuto sniffs the input: a document whose first non-space
	// byte is '[' is treated as an array, anything else as lines.
	FormatAuto Format = "auto"

	// FormatArray is a single JSON array of record objects.
	FormatArray Format = "array"

	// FormatLines is one JSON object per line (JSON Lines), the
	// encoding consumed by the legacy profile loader.
	FormatLines Format = "jsonl"
)

// Valid reports whether the format is one of the known encodings.
func (f Format) Valid() bool {
	switch f {
	case FormatAuto, FormatArray, FormatLines:
		return true
	}
	return false
}
