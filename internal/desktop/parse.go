package desktop

import (
	"strconv"
	"strings"
)

// Parsers fail closed: every input either yields a fully populated value or
// a ParseError. Exit codes are not their concern; callers run them only
// after a zero exit.

// parseCursorPosition decodes `getmouselocation --shell` output: newline
// separated KEY=VALUE lines of which X= and Y= are required. A missing or
// non-numeric coordinate is a ParseError, never a defaulted field.
func parseCursorPosition(out string) (Coordinate, error) {
	var x, y *int
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "X="); ok {
			v, err := strconv.Atoi(rest)
			if err != nil {
				return Coordinate{}, newParseError(out)
			}
			x = &v
		} else if rest, ok := strings.CutPrefix(line, "Y="); ok {
			v, err := strconv.Atoi(rest)
			if err != nil {
				return Coordinate{}, newParseError(out)
			}
			y = &v
		}
	}
	if x == nil || y == nil {
		return Coordinate{}, newParseError(out)
	}
	return Coordinate{X: *x, Y: *y}, nil
}

// parseScreenSize decodes `getdisplaygeometry` output: exactly two
// whitespace-separated base-10 integers.
func parseScreenSize(out string) (ScreenSize, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) != 2 {
		return ScreenSize{}, newParseError(out)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return ScreenSize{}, newParseError(out)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return ScreenSize{}, newParseError(out)
	}
	return ScreenSize{Width: w, Height: h}, nil
}
