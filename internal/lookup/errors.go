package lookup

import (
	"errors"
	"fmt"
	"strings"
)

// Every failure of an invocation maps onto one of these markers; callers
// classify with errors.Is. All of them are terminal for the invocation.
var (
	ErrInputAborted = errors.New("input aborted")
	ErrAuth         = errors.New("authentication failed")
	ErrNoResults    = errors.New("no results")
	ErrAPI          = errors.New("api request failed")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrAPI
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "lookup failure"
	}
	return strings.Join(parts, ": ")
}
