package level

import "errors"

var (
	// ErrLevelNotFound indicates the level file does not exist
	ErrLevelNotFound = errors.New("level: not found")
	// ErrLevelParse indicates the file content is not a well-formed level record
	ErrLevelParse = errors.New("level: malformed record")
	// ErrInvalidConfiguration indicates a record with wrongly typed or out-of-range fields
	ErrInvalidConfiguration = errors.New("level: invalid configuration")
	// ErrPersist indicates a failed save
	ErrPersist = errors.New("level: persist failed")
)

// IsExhausted reports whether err means the level sequence has no further entry.
// Every load failure is treated that way.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrLevelNotFound) ||
		errors.Is(err, ErrLevelParse) ||
		errors.Is(err, ErrInvalidConfiguration)
}
