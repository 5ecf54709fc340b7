package form

import "errors"

var (
	// ErrNoProfile is returned when a fill is attempted without saved user
	// information
	ErrNoProfile = errors.New("no user profile available")

	// ErrNoMatchingOption is returned when a select has no option matching
	// the profile value
	ErrNoMatchingOption = errors.New("no matching option")
)
