package needle

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap with fmt.Errorf("%w: ...") so callers use
// errors.Is(err, ErrInvalidArgument) / errors.Is(err, ErrOutOfRange)
// instead of matching on message text.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
)

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func outOfRangef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...))
}
