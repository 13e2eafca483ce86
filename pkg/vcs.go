package changetag

// Identity is a git name and email pair.
type Identity struct {
	Name  string
	Email string
}

// CommitIdentity is the author and committer of a commit.
type CommitIdentity struct {
	Author    Identity
	Committer Identity
}

// VCS is everything the release pipeline asks of version control.
type VCS interface {
	// CurrentBranch returns the checked out branch name.
	CurrentBranch() (string, error)
	// Subjects returns the subject lines of the last n commits, newest first.
	Subjects(n int) ([]string, error)
	// Body returns the full message of ref.
	Body(ref string) (string, error)
	// HeadIdentity returns the author and committer of HEAD.
	HeadIdentity() (CommitIdentity, error)
	// Add stages paths.
	Add(paths ...string) error
	// Unstage resets the index entries of paths to HEAD.
	Unstage(paths ...string) error
	// AmendNoEdit amends HEAD keeping its message, committing as id.
	AmendNoEdit(id CommitIdentity) error
	TagExists(name string) (bool, error)
	// TagAtHead reports whether tag name exists and points at HEAD.
	TagAtHead(name string) (bool, error)
	// CreateTag creates an annotated tag at HEAD.
	CreateTag(name, message string) error
	GetRemoteURL(remote string) (string, error)
	SetRemoteURL(remote, url string) error
	// PushTag pushes refs/tags/<tag> to remote.
	PushTag(remote, tag string) error
}
