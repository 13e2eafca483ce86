package changetag

import "github.com/pkg/errors"

// Failure categories. Every stage wraps one of these so callers can match
// with errors.Is.
var (
	ErrMetadataNotFound    = errors.New("release metadata not found")
	ErrChangelogMissing    = errors.New("changelog missing")
	ErrInvalidCommitFormat = errors.New("invalid commit format")
	ErrUnknownBumpType     = errors.New("unknown bump type")
	ErrVCSCommandFailed    = errors.New("vcs command failed")
	ErrCredentialMissing   = errors.New("credential missing")
	ErrTagExists           = errors.New("tag already exists")
	ErrInvalidVersion      = errors.New("invalid version")
)
