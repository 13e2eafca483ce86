package changetag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

// BumpType is the category of a version increment. The zero value is not a
// valid bump; values are ordered so that a larger BumpType takes precedence.
type BumpType int

const (
	BumpPatch BumpType = iota + 1
	BumpMinor
	BumpMajor
)

func (b BumpType) String() string {
	switch b {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	}
	return fmt.Sprintf("BumpType(%d)", int(b))
}

// ParseBumpType maps "major", "minor" or "patch" to a BumpType.
func ParseBumpType(s string) (BumpType, error) {
	switch s {
	case "major":
		return BumpMajor, nil
	case "minor":
		return BumpMinor, nil
	case "patch":
		return BumpPatch, nil
	}
	return 0, errors.Wrapf(ErrUnknownBumpType, "%q", s)
}

// Max returns the higher precedence of b and o.
func (b BumpType) Max(o BumpType) BumpType {
	if o > b {
		return o
	}
	return b
}

// Version is a major.minor.patch triple. The zero value is 0.0.0.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "M.N.P" with an optional leading "v". Prerelease and
// build suffixes are rejected.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	canonical := raw
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) || semver.Prerelease(canonical) != "" || semver.Build(canonical) != "" {
		return Version{}, errors.Wrapf(ErrInvalidVersion, "%q", raw)
	}

	parts := strings.Split(strings.TrimPrefix(canonical, "v"), ".")
	if len(parts) != 3 {
		// semver accepts shorthands like v1.2
		return Version{}, errors.Wrapf(ErrInvalidVersion, "%q: want major.minor.patch", raw)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, errors.Wrapf(ErrInvalidVersion, "%q: %v", raw, err)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// semver returns the canonical "v" form used by golang.org/x/mod/semver.
func (v Version) semver() string {
	return "v" + v.String()
}

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool {
	return semver.Compare(v.semver(), o.semver()) < 0
}

// Bump applies a semantic version increment to v.
func (v Version) Bump(b BumpType) (Version, error) {
	switch b {
	case BumpMajor:
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	}
	return Version{}, errors.Wrapf(ErrUnknownBumpType, "%s", b)
}

// BumpString is the string form of Bump: it parses current, applies the
// named bump and formats the result.
func BumpString(current, bump string) (string, error) {
	v, err := ParseVersion(current)
	if err != nil {
		return "", err
	}
	b, err := ParseBumpType(bump)
	if err != nil {
		return "", err
	}
	next, err := v.Bump(b)
	if err != nil {
		return "", err
	}
	return next.String(), nil
}
