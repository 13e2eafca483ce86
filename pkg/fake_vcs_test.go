package changetag

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// fakeVCS is an in-memory VCS. Fail names a method that should return
// ErrVCSCommandFailed.
type fakeVCS struct {
	branch   string
	subjects []string // newest first
	body     string
	head     CommitIdentity
	tags     map[string]string
	atHead   map[string]bool // tags pointing at HEAD
	staged   []string
	remotes  map[string]string
	pushed   []string // "<remote> <tag> <url>"
	amends   []CommitIdentity
	calls    []string
	fail     string
}

func newFakeVCS(subjects ...string) *fakeVCS {
	return &fakeVCS{
		branch:   "main",
		subjects: subjects,
		head: CommitIdentity{
			Author:    Identity{Name: "Ada", Email: "ada@example.com"},
			Committer: Identity{Name: "Bob", Email: "bob@example.com"},
		},
		tags:    map[string]string{},
		atHead:  map[string]bool{},
		remotes: map[string]string{"origin": "https://github.com/acme/widgets.git"},
	}
}

func (f *fakeVCS) call(name string) error {
	f.calls = append(f.calls, name)
	if f.fail == name {
		return errors.Wrapf(ErrVCSCommandFailed, "fake %s", name)
	}
	return nil
}

func (f *fakeVCS) CurrentBranch() (string, error) {
	return f.branch, f.call("CurrentBranch")
}

func (f *fakeVCS) Subjects(n int) ([]string, error) {
	if err := f.call("Subjects"); err != nil {
		return nil, err
	}
	if n > len(f.subjects) {
		n = len(f.subjects)
	}
	return slices.Clone(f.subjects[:n]), nil
}

func (f *fakeVCS) Body(ref string) (string, error) {
	return f.body, f.call("Body")
}

func (f *fakeVCS) HeadIdentity() (CommitIdentity, error) {
	return f.head, f.call("HeadIdentity")
}

func (f *fakeVCS) Add(paths ...string) error {
	if err := f.call("Add"); err != nil {
		return err
	}
	f.staged = append(f.staged, paths...)
	return nil
}

func (f *fakeVCS) Unstage(paths ...string) error {
	if err := f.call("Unstage"); err != nil {
		return err
	}
	f.staged = slices.DeleteFunc(f.staged, func(p string) bool { return slices.Contains(paths, p) })
	return nil
}

func (f *fakeVCS) AmendNoEdit(id CommitIdentity) error {
	if err := f.call("AmendNoEdit"); err != nil {
		return err
	}
	f.amends = append(f.amends, id)
	f.staged = nil
	return nil
}

func (f *fakeVCS) TagExists(name string) (bool, error) {
	_, ok := f.tags[name]
	return ok, f.call("TagExists")
}

func (f *fakeVCS) TagAtHead(name string) (bool, error) {
	return f.atHead[name], f.call("TagAtHead")
}

// commit moves HEAD to a new commit with subject, leaving existing tags
// behind.
func (f *fakeVCS) commit(subject string) {
	f.subjects = append([]string{subject}, f.subjects...)
	f.atHead = map[string]bool{}
}

func (f *fakeVCS) CreateTag(name, message string) error {
	if err := f.call("CreateTag"); err != nil {
		return err
	}
	if _, ok := f.tags[name]; ok {
		return fmt.Errorf("tag %s exists", name)
	}
	f.tags[name] = message
	f.atHead[name] = true
	return nil
}

func (f *fakeVCS) GetRemoteURL(remote string) (string, error) {
	if err := f.call("GetRemoteURL"); err != nil {
		return "", err
	}
	url, ok := f.remotes[remote]
	if !ok {
		return "", errors.Wrapf(ErrVCSCommandFailed, "no such remote %s", remote)
	}
	return url, nil
}

func (f *fakeVCS) SetRemoteURL(remote, url string) error {
	if err := f.call("SetRemoteURL"); err != nil {
		return err
	}
	f.remotes[remote] = url
	return nil
}

func (f *fakeVCS) PushTag(remote, tag string) error {
	if err := f.call("PushTag"); err != nil {
		return err
	}
	f.pushed = append(f.pushed, remote+" "+tag+" "+f.remotes[remote])
	return nil
}
