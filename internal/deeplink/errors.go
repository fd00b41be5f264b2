package deeplink

import (
	"fmt"
	"strings"
)

// MissingFieldsError reports a validation failure and carries the names
// of the required fields the intent was missing.
type MissingFieldsError struct {
	Target ProviderTarget
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing required parameters for %s: %s", e.Target, strings.Join(e.Fields, ", "))
}

// UnsupportedTargetError reports a dispatch failure for a target outside
// the closed provider set.
type UnsupportedTargetError struct {
	Target string
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("Unsupported provider: %s", e.Target)
}
