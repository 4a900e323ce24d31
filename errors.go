package kubetags

import (
	"errors"
	"fmt"
)

// ErrInvalidVersion is matched by every *InvalidVersionError via errors.Is.
var ErrInvalidVersion = errors.New("invalid version")

// InvalidVersionError reports a tag whose numeric core cannot be parsed.
type InvalidVersionError struct {
	Tag    string // tag as given
	Reason string
}

func (e *InvalidVersionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid base version in tag %q", e.Tag)
	}

	return fmt.Sprintf("invalid base version in tag %q: %s", e.Tag, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidVersion) hold.
func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}
