package service

import (
	"regexp"
	"strings"
)

// Ordered: "from A to B" is most explicit, then "between A and B", then a
// bare "A to B".
var (
	fromToPattern  = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+to\s+(.+?)(?:\?|\.|$)`)
	betweenPattern = regexp.MustCompile(`(?i)\bbetween\s+(.+?)\s+and\s+(.+?)(?:\?|\.|$)`)
	bareToPattern  = regexp.MustCompile(`(?i)^(.+?)\s+to\s+(.+?)(?:\?|\.|$)`)
)

// routePrefixes are leading route vocabulary stripped before the bare
// "A to B" match, so "directions Amsterdam to Paris" still parses.
var routePrefixes = []string{
	"directions", "route", "drive", "driving", "how do i get", "how to get",
	"navigate", "show me the way",
}

// ExtractEndpoints pulls an (origin, destination) pair out of a freeform
// route query. ok is false when no pair can be parsed.
func ExtractEndpoints(query string) (origin, destination string, ok bool) {
	trimmed := strings.TrimSpace(query)

	if m := fromToPattern.FindStringSubmatch(trimmed); m != nil {
		return clean(m[1]), clean(m[2]), true
	}
	if m := betweenPattern.FindStringSubmatch(trimmed); m != nil {
		return clean(m[1]), clean(m[2]), true
	}

	bare := trimmed
	lower := strings.ToLower(bare)
	for _, prefix := range routePrefixes {
		if strings.HasPrefix(lower, prefix) {
			bare = strings.TrimSpace(bare[len(prefix):])
			break
		}
	}
	if m := bareToPattern.FindStringSubmatch(bare); m != nil {
		o, d := clean(m[1]), clean(m[2])
		if o != "" && d != "" {
			return o, d, true
		}
	}
	return "", "", false
}

func clean(s string) string {
	return strings.Trim(strings.TrimSpace(s), "?.,!")
}
