package input

import (
	"fmt"
	"strconv"
	"strings"

	"keynav/hal"
)

// ParseScript parses a comma-separated press schedule. Each entry is
// NAME@START-END or NAME@START+DURATION in milliseconds, for example
// "DOWN@100-180,CENTER@900+60".
func ParseScript(s string) ([]hal.Press, error) {
	var out []hal.Press
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		pr, err := parsePress(entry)
		if err != nil {
			return nil, fmt.Errorf("input: script entry %q: %w", entry, err)
		}
		out = append(out, pr)
	}
	return out, nil
}

func parsePress(entry string) (hal.Press, error) {
	name, span, ok := strings.Cut(entry, "@")
	name = strings.ToUpper(strings.TrimSpace(name))
	if !ok || name == "" {
		return hal.Press{}, fmt.Errorf("want NAME@START-END")
	}

	sep := strings.IndexAny(span, "-+")
	if sep <= 0 {
		return hal.Press{}, fmt.Errorf("missing range in %q", span)
	}
	start, err := parseMillis(span[:sep])
	if err != nil {
		return hal.Press{}, err
	}
	n, err := parseMillis(span[sep+1:])
	if err != nil {
		return hal.Press{}, err
	}

	end := n
	if span[sep] == '+' {
		end = start + n
	} else if end < start {
		return hal.Press{}, fmt.Errorf("end %d before start %d", end, start)
	}
	if end == start {
		return hal.Press{}, fmt.Errorf("empty press")
	}
	return hal.Press{Button: name, Start: start, End: end}, nil
}

func parseMillis(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad time %q: %w", s, err)
	}
	return uint32(v), nil
}
