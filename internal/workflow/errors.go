package workflow

import "errors"

// Admission failure taxonomy. Every Admit call ends in success or exactly one
// of these; there is never a partial commit alongside an error.
var (
	ErrNoBedsAvailable     = errors.New("no sections with free beds")
	ErrNoDoctorsAvailable  = errors.New("no doctors available")
	ErrNoNursesAvailable   = errors.New("no nurses available")
	ErrInvalidAssignment   = errors.New("invalid assignment")
	ErrResolverUnavailable = errors.New("resolver unavailable")
)
