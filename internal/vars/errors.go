package vars

import "errors"

// Domain errors for state-variable operations.
var (
	// ErrNaN indicates an attempt to assign NaN to a variable. The
	// assignment is rejected before any state changes.
	ErrNaN = errors.New("vars: NaN value rejected")

	// ErrBadName indicates a name that is empty, reserved, or not in the
	// uppercased underscored form.
	ErrBadName = errors.New("vars: invalid variable name")

	// ErrDuplicateName indicates a name collision with an active variable.
	ErrDuplicateName = errors.New("vars: duplicate variable name")

	// ErrIndex indicates an index outside the variable list.
	ErrIndex = errors.New("vars: index out of range")

	// ErrNoTime indicates a time operation on a list with no TIME variable.
	ErrNoTime = errors.New("vars: no time variable")

	// ErrLength indicates a value slice longer than the variable list.
	ErrLength = errors.New("vars: too many values")
)
