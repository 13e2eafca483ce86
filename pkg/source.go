package changetag

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DefaultVersionFile is the standalone version file name.
const DefaultVersionFile = "VERSION"

// VersionSource supplies the latest released version and records a new one.
type VersionSource interface {
	Current() (Version, error)
	Record(Version) error
	// Files lists the paths Record writes, for staging and rollback.
	Files() []string
}

// ChangelogSource reads the version from changelog headings.
type ChangelogSource struct {
	Changelog *Changelog
	Policy    ScanPolicy
	// Require makes a missing changelog fail with ErrChangelogMissing.
	Require bool
	// CreateMissing writes a header stub when the changelog is absent.
	CreateMissing bool
	// Identity is written into a created stub.
	Identity ReleaseIdentity
}

func (s *ChangelogSource) Current() (Version, error) {
	if !s.Changelog.Exists() {
		if s.Require {
			return Version{}, errors.Wrapf(ErrChangelogMissing, "%s", s.Changelog.Path)
		}
		if s.CreateMissing {
			if err := s.Changelog.CreateStub(s.Identity); err != nil {
				return Version{}, err
			}
		}
		return Version{}, nil
	}
	return s.Changelog.Latest(s.Policy)
}

// Record is a no-op: the appended changelog section is the record.
func (s *ChangelogSource) Record(Version) error { return nil }

func (s *ChangelogSource) Files() []string { return nil }

// FileSource keeps the version in a standalone file holding "M.N.P".
type FileSource struct {
	Path string
}

func (s *FileSource) Current() (Version, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Version{}, nil
		}
		return Version{}, errors.Wrapf(err, "reading version file %s", s.Path)
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return Version{}, nil
	}
	v, err := ParseVersion(raw)
	if err != nil {
		return Version{}, errors.Wrapf(err, "version file %s", s.Path)
	}
	return v, nil
}

func (s *FileSource) Record(v Version) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", s.Path)
	}
	return errors.Wrapf(os.WriteFile(s.Path, []byte(v.String()+"\n"), 0644), "writing version file %s", s.Path)
}

func (s *FileSource) Files() []string { return []string{s.Path} }
