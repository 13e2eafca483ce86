package changetag

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DescriptionMode selects what goes under a changelog heading.
type DescriptionMode int

const (
	// DescribeSubjects lists the subjects of the commit window.
	DescribeSubjects DescriptionMode = iota
	// DescribeBody embeds the full message of HEAD.
	DescribeBody
)

// ReleaseMeta holds metadata about the release operation.
type ReleaseMeta struct {
	OldVersion   string          // Version read before bumping.
	NewVersion   string          // Version after bumping.
	BumpType     string          // major, minor or patch.
	Tag          string          // Tag name created (or that would be created).
	Identity     ReleaseIdentity // Identity used to namespace the tag.
	Entry        string          // Changelog section appended, empty if it already existed.
	Amended      bool            // HEAD was amended with the changelog.
	Pushed       bool            // Tag was pushed to the remote.
	UpdatedFiles []string        // Paths written (or that would be written).
}

// Pipeline is one configured release run. Build it with NewPipeline or fill
// the strategies directly.
type Pipeline struct {
	VCS        VCS
	Identity   IdentityResolver
	Source     VersionSource
	Classifier Classifier
	Changelog  *Changelog

	Window      int
	Description DescriptionMode
	BareTag     bool // tag as <prefix>/<version> without "v"
	TagMessage  string
	BumpFiles   []string

	Amend    bool
	Push     bool
	Remote   string
	Token    string
	RepoSlug string

	Now    func() time.Time
	Logger *zap.SugaredLogger
}

// TagName composes "<prefix>/v<version>", or "v<version>" with no prefix.
func TagName(prefix string, v Version, bare bool) string {
	name := "v" + v.String()
	if bare {
		name = v.String()
	}
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// RemoteURL embeds token in a GitHub HTTPS remote for slug ("owner/repo").
func RemoteURL(token, slug string) string {
	return fmt.Sprintf("https://%s@github.com/%s.git", token, slug)
}

func (p *Pipeline) logger() *zap.SugaredLogger {
	if p.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return p.Logger
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// plan is the computed part of a release, before any side effect.
type plan struct {
	id       ReleaseIdentity
	current  Version
	bump     BumpType
	next     Version
	tag      string
	subjects []string
	entry    Entry
	hasEntry bool
	// released is set when HEAD already carries the tag of the current
	// version, left by an earlier run that stopped before pushing.
	released bool
}

func (p *Pipeline) plan(source VersionSource) (plan, error) {
	var pl plan
	log := p.logger()

	id, err := p.Identity.Resolve()
	if err != nil {
		return pl, errors.Wrap(err, "resolving release identity")
	}
	if err := id.Validate(); err != nil {
		return pl, err
	}
	pl.id = id
	if cs, ok := source.(*ChangelogSource); ok {
		cs.Identity = id
	}
	log.Debugw("resolved identity", "customer", id.Customer, "project", id.Project)

	if pl.current, err = source.Current(); err != nil {
		return pl, errors.Wrap(err, "reading current version")
	}
	if pl.current != (Version{}) {
		prev := TagName(id.Prefix(), pl.current, p.BareTag)
		at, err := p.VCS.TagAtHead(prev)
		if err != nil {
			return pl, err
		}
		if at {
			log.Infow("HEAD already carries the release tag", "tag", prev)
			pl.next, pl.tag, pl.released = pl.current, prev, true
			return pl, nil
		}
	}

	window := p.Window
	if window < 1 {
		window = 1
	}
	if pl.subjects, err = p.VCS.Subjects(window); err != nil {
		return pl, errors.Wrap(err, "reading commit history")
	}
	if pl.bump, err = p.Classifier.Classify(pl.subjects); err != nil {
		return pl, errors.Wrap(err, "classifying commits")
	}
	if pl.next, err = pl.current.Bump(pl.bump); err != nil {
		return pl, err
	}
	if !pl.current.Less(pl.next) {
		return pl, errors.Wrapf(ErrInvalidVersion, "%s does not sort after %s", pl.next, pl.current)
	}
	pl.tag = TagName(id.Prefix(), pl.next, p.BareTag)
	log.Infow("computed release", "current", pl.current.String(), "bump", pl.bump.String(),
		"next", pl.next.String(), "tag", pl.tag)

	exists, err := p.VCS.TagExists(pl.tag)
	if err != nil {
		return pl, err
	}
	if exists {
		return pl, errors.Wrapf(ErrTagExists, "%s", pl.tag)
	}

	body := FormatSubjects(pl.subjects)
	if p.Description == DescribeBody {
		if body, err = p.VCS.Body("HEAD"); err != nil {
			return pl, errors.Wrap(err, "reading commit body")
		}
	}
	pl.entry = Entry{Version: pl.next, Timestamp: p.now(), Body: body}
	if pl.hasEntry, err = p.Changelog.HasSection(pl.next); err != nil {
		return pl, err
	}
	return pl, nil
}

func (p *Pipeline) meta(pl plan) ReleaseMeta {
	if pl.released {
		return ReleaseMeta{OldVersion: pl.current.String(), NewVersion: pl.next.String(), Tag: pl.tag, Identity: pl.id}
	}
	return ReleaseMeta{
		OldVersion: pl.current.String(),
		NewVersion: pl.next.String(),
		BumpType:   pl.bump.String(),
		Tag:        pl.tag,
		Identity:   pl.id,
	}
}

func (p *Pipeline) touchedFiles(source VersionSource) []string {
	files := []string{p.Changelog.Path}
	files = append(files, source.Files()...)
	return append(files, p.BumpFiles...)
}

// DryRun computes the release without writing files or touching the
// repository beyond read-only queries.
func (p *Pipeline) DryRun() (ReleaseMeta, error) {
	source := p.Source
	if cs, ok := source.(*ChangelogSource); ok {
		cp := *cs
		cp.CreateMissing = false
		source = &cp
	}
	pl, err := p.plan(source)
	if err != nil {
		return ReleaseMeta{}, err
	}
	meta := p.meta(pl)
	if pl.released {
		return meta, p.resumable(pl)
	}
	if !pl.hasEntry {
		meta.Entry = pl.entry.Heading()
	}
	meta.UpdatedFiles = p.touchedFiles(source)
	return meta, nil
}

// Run performs the release. Files written by the run are restored if a
// later step fails before HEAD is amended or the tag is created. Once the
// tag exists nothing is rolled back.
func (p *Pipeline) Run() (ReleaseMeta, error) {
	log := p.logger()

	if p.Push && p.Token == "" {
		return ReleaseMeta{}, errors.Wrap(ErrCredentialMissing, "push requested without an access token")
	}

	touched := p.touchedFiles(p.Source)
	var snaps []fileSnapshot
	for _, f := range touched {
		s, err := takeSnapshot(f)
		if err != nil {
			return ReleaseMeta{}, err
		}
		snaps = append(snaps, s)
	}
	var staged []string
	rollback := func(cause error) error {
		log.Warnw("rolling back release files", "error", cause)
		if len(staged) > 0 {
			if err := p.VCS.Unstage(staged...); err != nil {
				log.Errorw("unstaging failed", "error", err)
			}
		}
		for _, s := range snaps {
			if err := s.restore(); err != nil {
				log.Errorw("restore failed", "path", s.path, "error", err)
			}
		}
		return cause
	}

	pl, err := p.plan(p.Source)
	if err != nil {
		return ReleaseMeta{}, rollback(err)
	}
	meta := p.meta(pl)

	if pl.released {
		if err := p.resumable(pl); err != nil {
			return meta, err
		}
		log.Infow("resuming push of existing release tag", "tag", pl.tag)
		err := p.push(&meta, pl.tag)
		return meta, err
	}

	if pl.hasEntry {
		log.Infow("changelog already has a section for this version", "version", pl.next.String())
	} else {
		if err := p.Changelog.Append(pl.entry); err != nil {
			return meta, rollback(err)
		}
		meta.Entry = pl.entry.Heading()
		log.Infow("appended changelog section", "path", p.Changelog.Path, "heading", meta.Entry)
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, p.Changelog.Path)

	if err := p.Source.Record(pl.next); err != nil {
		return meta, rollback(err)
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, p.Source.Files()...)

	for _, bf := range p.BumpFiles {
		ok, err := BumpVersionInFile(bf, pl.next.String())
		if err != nil {
			return meta, rollback(err)
		}
		if !ok {
			log.Warnw("no version declaration found", "path", bf)
			continue
		}
		meta.UpdatedFiles = append(meta.UpdatedFiles, bf)
	}

	if p.Amend {
		id, err := p.VCS.HeadIdentity()
		if err != nil {
			return meta, rollback(err)
		}
		if err := p.VCS.Add(meta.UpdatedFiles...); err != nil {
			return meta, rollback(err)
		}
		staged = meta.UpdatedFiles
		if err := p.VCS.AmendNoEdit(id); err != nil {
			return meta, rollback(errors.Wrap(err, "amending HEAD"))
		}
		meta.Amended = true
		log.Infow("amended HEAD", "author", id.Author.Name, "committer", id.Committer.Name)
	}

	msg := p.TagMessage
	if msg == "" {
		msg = "Release " + pl.tag
	}
	if err := p.VCS.CreateTag(pl.tag, msg); err != nil {
		if meta.Amended {
			return meta, errors.Wrapf(err, "HEAD already amended with %s; create tag %s by hand", p.Changelog.Path, pl.tag)
		}
		return meta, rollback(err)
	}
	log.Infow("created tag", "tag", pl.tag)

	if p.Push {
		if err := p.push(&meta, pl.tag); err != nil {
			return meta, err
		}
	}

	return meta, nil
}

// resumable reports whether a run that found HEAD already released can
// continue. Only the push stage is left to redo.
func (p *Pipeline) resumable(pl plan) error {
	if !p.Push {
		return errors.Wrapf(ErrTagExists, "HEAD already released as %s", pl.tag)
	}
	return nil
}

// push sends tag to the remote. A credential URL set for the push is
// replaced by the previous URL afterwards.
func (p *Pipeline) push(meta *ReleaseMeta, tag string) error {
	log := p.logger()
	remote := p.Remote
	if remote == "" {
		remote = "origin"
	}
	if p.RepoSlug != "" {
		prev, err := p.VCS.GetRemoteURL(remote)
		if err != nil {
			return errors.Wrapf(err, "tag %s created locally but not pushed", tag)
		}
		if err := p.VCS.SetRemoteURL(remote, RemoteURL(p.Token, p.RepoSlug)); err != nil {
			return errors.Wrapf(err, "tag %s created locally but not pushed", tag)
		}
		defer func() {
			if err := p.VCS.SetRemoteURL(remote, prev); err != nil {
				log.Errorw("restoring remote url failed", "remote", remote, "error", err)
			}
		}()
	}
	if err := p.VCS.PushTag(remote, tag); err != nil {
		return errors.Wrapf(err, "tag %s created locally but not pushed", tag)
	}
	meta.Pushed = true
	log.Infow("pushed tag", "tag", tag, "remote", remote)
	return nil
}

// Options selects pipeline strategies by name. Relative file paths are
// resolved against RepoPath.
type Options struct {
	RepoPath      string
	ChangelogPath string
	VersionFile   string

	Source      string // changelog or file
	Classifier  string // keyword or strict
	Identity    string // none, branch or changelog
	Scan        string // last or first
	Description string // subjects or body

	Window           int
	BareTag          bool
	TagMessage       string
	CreateMissing    bool
	RequireChangelog bool
	BumpFiles        []string

	Amend    bool
	Push     bool
	Remote   string
	Token    string
	RepoSlug string

	Now    func() time.Time
	Logger *zap.SugaredLogger
	// VCS overrides the git collaborator.
	VCS VCS
}

func (o Options) path(p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.RepoPath, p)
}

// NewPipeline resolves Options into a Pipeline.
func NewPipeline(opts Options) (*Pipeline, error) {
	if opts.RepoPath == "" {
		opts.RepoPath = "."
	}
	abs, err := filepath.Abs(opts.RepoPath)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving repo path %q", opts.RepoPath)
	}
	opts.RepoPath = abs
	p := &Pipeline{
		VCS:        opts.VCS,
		Changelog:  &Changelog{Path: opts.path(opts.ChangelogPath, DefaultChangelogFile)},
		Window:     opts.Window,
		BareTag:    opts.BareTag,
		TagMessage: opts.TagMessage,
		Amend:      opts.Amend,
		Push:       opts.Push,
		Remote:     opts.Remote,
		Token:      opts.Token,
		RepoSlug:   opts.RepoSlug,
		Now:        opts.Now,
		Logger:     opts.Logger,
	}
	if p.VCS == nil {
		p.VCS = &Git{RepoPath: opts.RepoPath, Logger: opts.Logger}
	}
	for _, bf := range opts.BumpFiles {
		p.BumpFiles = append(p.BumpFiles, opts.path(bf, ""))
	}

	switch opts.Identity {
	case "", "none":
		p.Identity = NoIdentity{}
	case "branch":
		p.Identity = BranchIdentity{VCS: p.VCS}
	case "changelog":
		p.Identity = ChangelogIdentity{Changelog: p.Changelog}
	default:
		return nil, errors.Errorf("unknown identity strategy %q", opts.Identity)
	}

	scan, err := ParseScanPolicy(opts.Scan)
	if err != nil {
		return nil, err
	}
	switch opts.Source {
	case "", "changelog":
		p.Source = &ChangelogSource{
			Changelog:     p.Changelog,
			Policy:        scan,
			Require:       opts.RequireChangelog,
			CreateMissing: opts.CreateMissing,
		}
	case "file":
		p.Source = &FileSource{Path: opts.path(opts.VersionFile, DefaultVersionFile)}
	default:
		return nil, errors.Errorf("unknown version source %q", opts.Source)
	}

	switch opts.Classifier {
	case "", "keyword":
		p.Classifier = KeywordClassifier{}
		if p.Window == 0 {
			p.Window = 10
		}
	case "strict":
		p.Classifier = StrictClassifier{}
		if p.Window == 0 {
			p.Window = 1
		}
	default:
		return nil, errors.Errorf("unknown classifier %q", opts.Classifier)
	}

	switch opts.Description {
	case "", "subjects":
		p.Description = DescribeSubjects
	case "body":
		p.Description = DescribeBody
	default:
		return nil, errors.Errorf("unknown description mode %q", opts.Description)
	}

	return p, nil
}

// Run builds a pipeline from opts and performs the release.
func Run(opts Options) (ReleaseMeta, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return ReleaseMeta{}, err
	}
	return p.Run()
}

// DryRun builds a pipeline from opts and reports what Run would do.
func DryRun(opts Options) (ReleaseMeta, error) {
	p, err := NewPipeline(opts)
	if err != nil {
		return ReleaseMeta{}, err
	}
	return p.DryRun()
}
