package bus

import (
	"fmt"
	"sort"
	"strings"
)

// pattern is a parsed "k:v,k:v" action pattern.
type pattern map[string]string

func parsePattern(s string) (pattern, error) {
	p := pattern{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, ":")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
		}
		if prev, dup := p[key]; dup && prev != value {
			return nil, fmt.Errorf("%w: %q has conflicting %q", ErrInvalidPattern, s, key)
		}
		p[key] = value
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	return p, nil
}

// within reports whether every pair of p is present in msg.
func (p pattern) within(msg pattern) bool {
	for k, v := range p {
		if msg[k] != v {
			return false
		}
	}
	return true
}

// String returns the canonical form with keys sorted.
func (p pattern) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + ":" + p[k]
	}
	return strings.Join(pairs, ",")
}
