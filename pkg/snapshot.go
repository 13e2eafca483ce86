package changetag

import (
	"os"

	"github.com/pkg/errors"
)

// fileSnapshot holds the bytes of a file before the run touched it.
type fileSnapshot struct {
	path    string
	data    []byte
	existed bool
}

func takeSnapshot(path string) (fileSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileSnapshot{path: path}, nil
		}
		return fileSnapshot{}, errors.Wrapf(err, "reading %s", path)
	}
	return fileSnapshot{path: path, data: data, existed: true}, nil
}

// restore puts the file back the way it was, removing it if it was created.
func (s fileSnapshot) restore() error {
	if !s.existed {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "removing %s", s.path)
		}
		return nil
	}
	return errors.Wrapf(os.WriteFile(s.path, s.data, 0644), "restoring %s", s.path)
}
