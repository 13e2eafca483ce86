package changetag

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ReleaseIdentity namespaces release tags. Both fields are empty when the
// repository does not use a customer/project convention.
type ReleaseIdentity struct {
	Customer string
	Project  string
}

// Prefix returns the tag namespace, "customer/project", or "" for an empty
// identity.
func (id ReleaseIdentity) Prefix() string {
	if id.Customer == "" && id.Project == "" {
		return ""
	}
	return id.Customer + "/" + id.Project
}

// Validate reports ErrMetadataNotFound unless both parts are usable as a
// single git ref component.
func (id ReleaseIdentity) Validate() error {
	if id.Customer == "" && id.Project == "" {
		return nil
	}
	for _, part := range []string{id.Customer, id.Project} {
		if !validRefComponent(part) {
			return errors.Wrapf(ErrMetadataNotFound, "%q cannot be used in a tag name", part)
		}
	}
	return nil
}

// validRefComponent follows git check-ref-format for one path component.
func validRefComponent(s string) bool {
	if s == "" || s == "@" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") ||
		strings.HasSuffix(s, ".lock") || strings.Contains(s, "..") || strings.Contains(s, "@{") {
		return false
	}
	for _, r := range s {
		if r <= ' ' || r == 0x7f || strings.ContainsRune("/~^:?*[\\", r) {
			return false
		}
	}
	return true
}

// IdentityResolver extracts the release identity for the current run.
type IdentityResolver interface {
	Resolve() (ReleaseIdentity, error)
}

// NoIdentity resolves to the empty identity; tags are not namespaced.
type NoIdentity struct{}

func (NoIdentity) Resolve() (ReleaseIdentity, error) {
	return ReleaseIdentity{}, nil
}

var releaseBranchRe = regexp.MustCompile(`^([^/\s]+)/([^/\s]+)/release$`)

// ParseBranchIdentity parses a branch shaped "<customer>/<project>/release".
func ParseBranchIdentity(branch string) (ReleaseIdentity, error) {
	m := releaseBranchRe.FindStringSubmatch(branch)
	if m == nil {
		return ReleaseIdentity{}, errors.Wrapf(ErrMetadataNotFound, "branch %q does not match <customer>/<project>/release", branch)
	}
	return ReleaseIdentity{Customer: m[1], Project: m[2]}, nil
}

// BranchIdentity reads the identity from the checked out branch name.
type BranchIdentity struct {
	VCS VCS
}

func (b BranchIdentity) Resolve() (ReleaseIdentity, error) {
	branch, err := b.VCS.CurrentBranch()
	if err != nil {
		return ReleaseIdentity{}, err
	}
	return ParseBranchIdentity(branch)
}

var (
	customerLineRe = regexp.MustCompile(`(?m)^\*\*Customer Name:\*\*[ \t]*(\S.*?)[ \t\r]*$`)
	projectLineRe  = regexp.MustCompile(`(?m)^\*\*Project Name:\*\*[ \t]*(\S.*?)[ \t\r]*$`)
)

// ParseChangelogIdentity reads the "**Customer Name:**" and
// "**Project Name:**" header lines. Both must be present.
func ParseChangelogIdentity(text string) (ReleaseIdentity, error) {
	c := customerLineRe.FindStringSubmatch(text)
	p := projectLineRe.FindStringSubmatch(text)
	if c == nil || p == nil {
		return ReleaseIdentity{}, errors.Wrap(ErrMetadataNotFound, "changelog has no Customer Name/Project Name header")
	}
	return ReleaseIdentity{Customer: c[1], Project: p[1]}, nil
}

// ChangelogIdentity reads the identity from the changelog metadata block.
type ChangelogIdentity struct {
	Changelog *Changelog
}

func (c ChangelogIdentity) Resolve() (ReleaseIdentity, error) {
	text, err := c.Changelog.Read()
	if err != nil {
		return ReleaseIdentity{}, err
	}
	return ParseChangelogIdentity(text)
}
