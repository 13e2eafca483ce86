package changetag

import (
	"strings"

	"github.com/pkg/errors"
)

// Classifier maps a window of commit messages, newest first, to a bump.
type Classifier interface {
	Classify(messages []string) (BumpType, error)
}

// KeywordClassifier follows conventional commit keywords. A breaking change
// anywhere in the window wins; otherwise any feat gives minor; otherwise
// patch.
type KeywordClassifier struct{}

func (KeywordClassifier) Classify(messages []string) (BumpType, error) {
	bump := BumpPatch
	for _, msg := range messages {
		if strings.Contains(msg, "BREAKING CHANGE") || strings.HasPrefix(msg, "feat!") {
			return BumpMajor, nil
		}
		if strings.HasPrefix(msg, "feat") {
			bump = BumpMinor
		}
	}
	return bump, nil
}

// Strict commit tags, matched case-sensitively at the start of a message.
var strictTags = []struct {
	prefix string
	bump   BumpType
}{
	{"Major", BumpMajor},
	{"Minor", BumpMinor},
	{"Bugfix", BumpPatch},
}

// StrictClassifier requires every message to start with Major, Minor or
// Bugfix followed by a colon, whitespace or the end of the line. Anything
// else is an ErrInvalidCommitFormat.
type StrictClassifier struct{}

func (StrictClassifier) Classify(messages []string) (BumpType, error) {
	if len(messages) == 0 {
		return 0, errors.Wrap(ErrInvalidCommitFormat, "no commits to classify")
	}
	var bump BumpType
	for _, msg := range messages {
		b, ok := strictBump(msg)
		if !ok {
			return 0, errors.Wrapf(ErrInvalidCommitFormat, "commit %q must start with Major, Minor or Bugfix", firstLine(msg))
		}
		bump = bump.Max(b)
	}
	return bump, nil
}

func strictBump(msg string) (BumpType, bool) {
	msg = strings.TrimSpace(msg)
	for _, t := range strictTags {
		rest, ok := strings.CutPrefix(msg, t.prefix)
		if ok && (rest == "" || rest[0] == ':' || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n') {
			return t.bump, true
		}
	}
	return 0, false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
