package frame

import (
	"errors"
	"fmt"
)

var (
	ErrFraming = errors.New("framing error")

	ErrNoLength    = fmt.Errorf("%w: missing length", ErrFraming)
	ErrLeadingZero = fmt.Errorf("%w: leading zero in length", ErrFraming)
	ErrNoColon     = fmt.Errorf("%w: missing ':' after length", ErrFraming)
	ErrTruncated   = fmt.Errorf("%w: truncated frame", ErrFraming)
	ErrUnknownTag  = fmt.Errorf("%w: unknown tag", ErrFraming)

	ErrInt   = errors.New("bad int payload")
	ErrFloat = errors.New("bad float payload")
)
