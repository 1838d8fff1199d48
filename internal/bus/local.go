package bus

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-action-web/internal/logger"
	"github.com/MKhiriev/go-action-web/models"
)

type entry struct {
	pattern pattern
	action  ActionFunc
}

// Local is an in-process bus. Actions are added during startup; after that
// the bus is read-only and safe for concurrent use.
type Local struct {
	entries []entry
	logger  *logger.Logger
}

func NewLocal(logger *logger.Logger) *Local {
	return &Local{logger: logger}
}

// Add registers action under pattern. Adding the same pattern twice
// replaces the earlier action.
func (l *Local) Add(p string, action ActionFunc) error {
	parsed, err := parsePattern(p)
	if err != nil {
		return err
	}

	for i, e := range l.entries {
		if e.pattern.String() == parsed.String() {
			l.entries[i].action = action
			return nil
		}
	}

	l.entries = append(l.entries, entry{pattern: parsed, action: action})
	l.logger.Debug().Str("pattern", parsed.String()).Msg("action added")
	return nil
}

// Act runs the most specific action whose pattern is contained in p. Ties
// go to the action added first.
func (l *Local) Act(ctx context.Context, p string, action models.ActionContext) (any, error) {
	msg, err := parsePattern(p)
	if err != nil {
		return nil, err
	}

	var best *entry
	for i := range l.entries {
		e := &l.entries[i]
		if !e.pattern.within(msg) {
			continue
		}
		if best == nil || len(e.pattern) > len(best.pattern) {
			best = e
		}
	}
	if best == nil {
		return nil, notFound(msg.String())
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("action %s not started: %w", best.pattern, err)
	}

	return best.action(ctx, action)
}
