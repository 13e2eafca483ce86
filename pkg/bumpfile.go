package changetag

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// versionField is a pattern for the primary version declaration of a
// manifest. Group 1 is the text before the version, group 2 the version,
// group 3 the text after it.
type versionField struct {
	name    string
	pattern *regexp.Regexp
}

var versionFields = []versionField{
	{"JSON version field", regexp.MustCompile(`(?m)((?:^|[{,])\s*"version"\s*:\s*"v?)(\d+\.\d+\.\d+)(")`)},
	{"TOML version field", regexp.MustCompile(`(?m)^(\s*version\s*=\s*"v?)(\d+\.\d+\.\d+)(")`)},
	{"VERSION assignment", regexp.MustCompile(`(?mi)^(\s*VERSION\s*(?::=|[:=])\s*["']?v?)(\d+\.\d+\.\d+)(["']?)`)},
}

// BumpVersionInFile rewrites the first primary version declaration in
// path to newVersion. It reports false when the file has none.
func BumpVersionInFile(path, newVersion string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}
	content := string(data)

	for _, f := range versionFields {
		loc := f.pattern.FindStringSubmatchIndex(content)
		if loc == nil {
			continue
		}
		// loc[4]:loc[5] is the version group.
		if content[loc[4]:loc[5]] == newVersion {
			return true, nil
		}
		var b strings.Builder
		b.WriteString(content[:loc[4]])
		b.WriteString(newVersion)
		b.WriteString(content[loc[5]:])
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return false, errors.Wrapf(err, "writing %s", path)
		}
		return true, nil
	}
	return false, nil
}
