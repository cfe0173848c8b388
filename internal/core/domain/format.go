package domain

import "go.trai.ch/zerr"

// Format selects how a closure is rendered.
type Format string

const (
	// FormatList prints one resolved, filtered path per line.
	FormatList Format = "list"
	// FormatTree prints the discovery hierarchy, or only a count in quiet mode.
	FormatTree Format = "tree"
	// FormatJSON prints a structured document with every resolved entry.
	FormatJSON Format = "json"
)

// Formats returns every supported format in presentation order.
func Formats() []Format {
	return []Format{FormatList, FormatTree, FormatJSON}
}

// ParseFormat converts a user supplied value into a Format.
// Only the exact lowercase names are accepted.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatList, FormatTree, FormatJSON:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownFormat, "invalid --format value"), "format", s)
	}
}

func (f Format) String() string {
	return string(f)
}
