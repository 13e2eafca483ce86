package changetag

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultChangelogFile is the changelog name at the repository root.
const DefaultChangelogFile = "CHANGELOG.md"

// TimestampLayout formats the time on a changelog section heading.
const TimestampLayout = "2006-01-02 15:04:05"

// headingRe matches release headings. The "v" is optional on read so
// changelogs written by older tooling still parse.
var headingRe = regexp.MustCompile(`(?m)^##[ \t]+v?(\d+\.\d+\.\d+)(?:[ \t]|$)`)

// ScanPolicy decides which heading wins when a changelog holds several.
type ScanPolicy int

const (
	// ScanLast takes the last heading in the file. Changelogs written by
	// Append grow at the bottom, so the last heading is the newest release.
	ScanLast ScanPolicy = iota
	// ScanFirst takes the first heading, for changelogs kept newest-first.
	ScanFirst
)

// ParseScanPolicy maps "last" or "first" to a ScanPolicy.
func ParseScanPolicy(s string) (ScanPolicy, error) {
	switch s {
	case "", "last":
		return ScanLast, nil
	case "first":
		return ScanFirst, nil
	}
	return 0, errors.Errorf("unknown scan policy %q", s)
}

// Entry is one release section.
type Entry struct {
	Version   Version
	Timestamp time.Time
	Body      string
}

// Heading renders "## v<version> - <timestamp>".
func (e Entry) Heading() string {
	return fmt.Sprintf("## v%s - %s", e.Version, e.Timestamp.Format(TimestampLayout))
}

// Changelog is an append-only markdown release log.
type Changelog struct {
	Path string
}

// Read returns the changelog text, or "" when the file does not exist.
func (c *Changelog) Read() (string, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading changelog %s", c.Path)
	}
	return string(data), nil
}

// Exists reports whether the changelog file is present.
func (c *Changelog) Exists() bool {
	_, err := os.Stat(c.Path)
	return err == nil
}

// Versions lists every release heading in file order.
func (c *Changelog) Versions() ([]Version, error) {
	text, err := c.Read()
	if err != nil {
		return nil, err
	}
	var out []Version
	for _, m := range headingRe.FindAllStringSubmatch(text, -1) {
		v, err := ParseVersion(m[1])
		if err != nil {
			return nil, errors.Wrapf(err, "changelog %s", c.Path)
		}
		out = append(out, v)
	}
	return out, nil
}

// Latest returns the release version chosen by policy, or 0.0.0 when the
// changelog is missing or has no headings.
func (c *Changelog) Latest(policy ScanPolicy) (Version, error) {
	versions, err := c.Versions()
	if err != nil || len(versions) == 0 {
		return Version{}, err
	}
	if policy == ScanFirst {
		return versions[0], nil
	}
	return versions[len(versions)-1], nil
}

// HasSection reports whether a heading for v is already present.
func (c *Changelog) HasSection(v Version) (bool, error) {
	versions, err := c.Versions()
	if err != nil {
		return false, err
	}
	for _, got := range versions {
		if got == v {
			return true, nil
		}
	}
	return false, nil
}

// CreateStub writes a fresh changelog header. Customer and project lines
// are included when id is not empty so ChangelogIdentity can read them back.
func (c *Changelog) CreateStub(id ReleaseIdentity) error {
	var b strings.Builder
	b.WriteString("# Changelog\n\n")
	if id.Prefix() != "" {
		fmt.Fprintf(&b, "**Customer Name:** %s\n", id.Customer)
		fmt.Fprintf(&b, "**Project Name:** %s\n\n", id.Project)
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", c.Path)
	}
	if err := os.WriteFile(c.Path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, "writing changelog stub %s", c.Path)
	}
	return nil
}

// Append adds e at the end of the file, creating it if needed. Existing
// content is never rewritten. The body is embedded verbatim.
func (c *Changelog) Append(e Entry) error {
	existing, err := c.Read()
	if err != nil {
		return err
	}

	var b strings.Builder
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(e.Heading())
	b.WriteString("\n")
	if body := strings.TrimRight(e.Body, "\n"); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	f, err := os.OpenFile(c.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening changelog %s", c.Path)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return errors.Wrapf(err, "appending to changelog %s", c.Path)
	}
	return errors.Wrapf(f.Close(), "closing changelog %s", c.Path)
}

// FormatSubjects renders commit subjects as a markdown bullet list.
func FormatSubjects(subjects []string) string {
	var lines []string
	for _, s := range subjects {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, "- "+s)
		}
	}
	return strings.Join(lines, "\n")
}
