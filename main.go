// Package main implements a CLI tool that computes the next semantic
// version from commit history, appends a changelog section and tags the
// release with git.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bcomnes/changetag/internal/config"
	"github.com/bcomnes/changetag/internal/logger"
	changetag "github.com/bcomnes/changetag/pkg"
)

type arrayFlags []string

func (a *arrayFlags) String() string {
	return fmt.Sprint(*a)
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

func usage() {
	msg := `Usage:
  changetag [options]

Reads the latest released version from CHANGELOG.md (or a VERSION file), classifies recent commits
into a major, minor or patch bump, appends a changelog section and creates an annotated git tag.

Examples:
  changetag
  changetag -identity branch -amend
  changetag -classifier strict -source file -push

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func main() {
	repoPath := flag.String("repo-path", ".", "Path to the git repository")
	configPath := flag.String("config", "", "Path to a YAML config file (default: <repo-path>/"+config.DefaultFile+" if present)")
	changelog := flag.String("changelog", "", "Changelog path relative to the repository")
	versionFile := flag.String("version-file", "", "Version file path relative to the repository")
	source := flag.String("source", "", "Version source: changelog or file")
	classifier := flag.String("classifier", "", "Commit classifier: keyword or strict")
	identity := flag.String("identity", "", "Tag namespace source: none, branch or changelog")
	scan := flag.String("scan", "", "Which changelog heading wins: last or first")
	description := flag.String("description", "", "Changelog body: subjects or body")
	window := flag.Int("window", 0, "Number of recent commits to classify (default: 10 keyword, 1 strict)")
	bareTag := flag.Bool("bare-tag", false, `Tag as <prefix>/<version> without the "v"`)
	var bumpFiles arrayFlags
	flag.Var(&bumpFiles, "bump-file", "Additional file whose version declaration is bumped. May be repeated.")
	amend := flag.Bool("amend", false, "Amend HEAD with the changelog, keeping its author and committer")
	push := flag.Bool("push", false, "Push the tag using the token from the environment")
	dryRun := flag.Bool("dry", false, "Compute the release without modifying any files or the git repository")
	logLevel := flag.Int("log-level", 0, "Log level: 2 error, 3 warn, 4 info, 5 debug")
	logDir := flag.String("log-dir", "", "Also write JSON logs under this directory")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.Bool("help", false, "Show help message and exit")

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("changetag CLI version", Version)
		os.Exit(0)
	}

	for _, arg := range flag.Args() {
		if strings.HasPrefix(arg, "-") {
			fmt.Fprintln(os.Stderr, "Error: Flags must be specified before any arguments. Please reorder your arguments.")
			usage()
			os.Exit(1)
		}
	}
	if len(flag.Args()) != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		usage()
		os.Exit(1)
	}

	cfgFile, required := *configPath, true
	if cfgFile == "" {
		cfgFile, required = filepath.Join(*repoPath, config.DefaultFile), false
	}
	cfg, err := config.Load(cfgFile, required)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "changelog":
			cfg.Changelog = *changelog
		case "version-file":
			cfg.VersionFile = *versionFile
		case "source":
			cfg.VersionSource = *source
		case "classifier":
			cfg.Classifier = *classifier
		case "identity":
			cfg.Identity = *identity
		case "scan":
			cfg.Scan = *scan
		case "description":
			cfg.Description = *description
		case "window":
			cfg.Window = *window
		case "bare-tag":
			cfg.BareTag = *bareTag
		case "bump-file":
			cfg.BumpFiles = bumpFiles
		case "amend":
			cfg.Amend = *amend
		case "push":
			cfg.Push = *push
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-dir":
			cfg.LogDir = *logDir
		}
	})

	log := logger.Stderr(cfg.LogLevel, cfg.LogDir)
	defer log.Sync()

	opts := changetag.Options{
		RepoPath:         *repoPath,
		ChangelogPath:    cfg.Changelog,
		VersionFile:      cfg.VersionFile,
		Source:           cfg.VersionSource,
		Classifier:       cfg.Classifier,
		Identity:         cfg.Identity,
		Scan:             cfg.Scan,
		Description:      cfg.Description,
		Window:           cfg.Window,
		BareTag:          cfg.BareTag,
		TagMessage:       cfg.TagMessage,
		CreateMissing:    cfg.CreateMissing,
		RequireChangelog: cfg.Require,
		BumpFiles:        cfg.BumpFiles,
		Amend:            cfg.Amend,
		Push:             cfg.Push,
		Remote:           cfg.Remote,
		Logger:           log,
	}
	if cfg.Push {
		opts.Token = os.Getenv(cfg.TokenEnv)
		opts.RepoSlug = os.Getenv(cfg.RepoEnv)
	}

	var meta changetag.ReleaseMeta
	if *dryRun {
		meta, err = changetag.DryRun(opts)
	} else {
		if err = changetag.CheckGit(); err == nil {
			meta, err = changetag.Run(opts)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		log.Sync()
		os.Exit(1)
	}

	if *dryRun {
		fmt.Println("Dry run complete, no files were modified.")
		fmt.Printf("Old Version: %s\n", meta.OldVersion)
		fmt.Printf("New Version: %s\n", meta.NewVersion)
		fmt.Printf("Bump Type:   %s\n", meta.BumpType)
		fmt.Printf("Tag:         %s\n", meta.Tag)
		if len(meta.UpdatedFiles) > 0 {
			fmt.Println("Files that would be updated:")
			for _, f := range meta.UpdatedFiles {
				fmt.Printf("  %s\n", f)
			}
		}
		return
	}
	fmt.Printf("Released version: %s\n", meta.Tag)
}
