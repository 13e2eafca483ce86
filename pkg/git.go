package changetag

import (
	"bytes"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Git implements VCS by running the git binary against RepoPath.
type Git struct {
	RepoPath string
	Logger   *zap.SugaredLogger
	// Env is appended to the environment of every git invocation.
	Env []string
}

// CheckGit verifies that git is available on the system.
func CheckGit() error {
	if err := exec.Command("git", "--version").Run(); err != nil {
		return errors.Wrap(ErrVCSCommandFailed, "git is not available on the system")
	}
	return nil
}

func (g *Git) logger() *zap.SugaredLogger {
	if g.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return g.Logger
}

// run executes git with args and returns trimmed stdout. A non-zero exit is
// reported as ErrVCSCommandFailed with the captured stderr.
func (g *Git) run(extraEnv []string, args ...string) (string, error) {
	full := append([]string{"-C", g.RepoPath}, args...)
	cmd := exec.Command("git", full...)
	if len(g.Env) > 0 || len(extraEnv) > 0 {
		cmd.Env = append(append(os.Environ(), g.Env...), extraEnv...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	g.logger().Debugw("running git", "args", redact(args))
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(ErrVCSCommandFailed, "git %s: %v, detail: %s",
			strings.Join(redact(args), " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// redact hides credentials embedded in remote URLs.
func redact(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if at := strings.Index(a, "@"); at > 0 && strings.HasPrefix(a, "https://") {
			a = "https://***" + a[at:]
		}
		out[i] = a
	}
	return out
}

func (g *Git) CurrentBranch() (string, error) {
	return g.run(nil, "rev-parse", "--abbrev-ref", "HEAD")
}

func (g *Git) Subjects(n int) ([]string, error) {
	out, err := g.run(nil, "log", "-n", strconv.Itoa(n), "--pretty=format:%s")
	if err != nil {
		return nil, err
	}
	var subjects []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects, nil
}

func (g *Git) Body(ref string) (string, error) {
	return g.run(nil, "log", "-1", "--pretty=format:%B", ref)
}

func (g *Git) HeadIdentity() (CommitIdentity, error) {
	out, err := g.run(nil, "log", "-1", "--pretty=format:%an%x1f%ae%x1f%cn%x1f%ce", "HEAD")
	if err != nil {
		return CommitIdentity{}, err
	}
	parts := strings.Split(out, "\x1f")
	if len(parts) != 4 {
		return CommitIdentity{}, errors.Wrapf(ErrVCSCommandFailed, "unexpected identity output %q", out)
	}
	return CommitIdentity{
		Author:    Identity{Name: parts[0], Email: parts[1]},
		Committer: Identity{Name: parts[2], Email: parts[3]},
	}, nil
}

func (g *Git) Add(paths ...string) error {
	_, err := g.run(nil, append([]string{"add", "--"}, paths...)...)
	return err
}

func (g *Git) Unstage(paths ...string) error {
	_, err := g.run(nil, append([]string{"reset", "-q", "HEAD", "--"}, paths...)...)
	return err
}

// AmendNoEdit keeps the author recorded on HEAD and sets the committer
// through the environment so the automation identity is not recorded.
func (g *Git) AmendNoEdit(id CommitIdentity) error {
	env := []string{
		"GIT_AUTHOR_NAME=" + id.Author.Name,
		"GIT_AUTHOR_EMAIL=" + id.Author.Email,
		"GIT_COMMITTER_NAME=" + id.Committer.Name,
		"GIT_COMMITTER_EMAIL=" + id.Committer.Email,
	}
	_, err := g.run(env, "commit", "--amend", "--no-edit", "--no-verify")
	return err
}

func (g *Git) TagExists(name string) (bool, error) {
	out, err := g.run(nil, "tag", "--list", name)
	if err != nil {
		return false, err
	}
	return out == name, nil
}

func (g *Git) TagAtHead(name string) (bool, error) {
	out, err := g.run(nil, "tag", "--points-at", "HEAD", "--list", name)
	if err != nil {
		return false, err
	}
	return out == name, nil
}

func (g *Git) CreateTag(name, message string) error {
	_, err := g.run(nil, "tag", "-a", name, "-m", message)
	return err
}

func (g *Git) GetRemoteURL(remote string) (string, error) {
	return g.run(nil, "remote", "get-url", remote)
}

func (g *Git) SetRemoteURL(remote, url string) error {
	_, err := g.run(nil, "remote", "set-url", remote, url)
	return err
}

func (g *Git) PushTag(remote, tag string) error {
	_, err := g.run(nil, "push", remote, "refs/tags/"+tag)
	return err
}
