package router

import "strings"

// chiPath rewrites ":id" segments into chi's "{id}" form.
func chiPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if len(s) > 1 && s[0] == ':' {
			segments[i] = "{" + s[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// ginPath rewrites "{id}" segments into gin's ":id" form. A bare "*" becomes
// the catch-all "*path".
func ginPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		switch {
		case len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}':
			name := s[1 : len(s)-1]
			// chi allows "{id:[0-9]+}"; gin has no regexp segments.
			if j := strings.IndexByte(name, ':'); j >= 0 {
				name = name[:j]
			}
			segments[i] = ":" + name
		case s == "*":
			segments[i] = "*path"
		}
	}
	return strings.Join(segments, "/")
}

// Canonical returns path with every parameter and catch-all segment replaced
// by a placeholder, so "/users/:id" and "/users/{uid}" compare equal. Both
// engines reject two such paths for the same method.
func Canonical(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		switch {
		case len(s) > 1 && s[0] == ':':
			segments[i] = "{}"
		case len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}':
			segments[i] = "{}"
		case len(s) > 0 && s[0] == '*':
			segments[i] = "*"
		}
	}
	return strings.Join(segments, "/")
}
