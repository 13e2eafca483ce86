// Package main implements the changetag CLI tool.
//
// changetag automates semantic version release tagging. It reads the latest
// released version from a changelog (headings shaped "## v1.2.3 - <time>")
// or from a standalone VERSION file, classifies recent commit subjects into
// a bump, appends a new changelog section and creates an annotated git tag
// at HEAD. Optionally it amends HEAD with the changelog, keeping the
// original author and committer, and pushes the tag.
//
// Command Usage:
//
//	changetag [flags]
//
// Classifiers:
//
//	keyword  "BREAKING CHANGE" or "feat!" gives major, "feat" gives minor,
//	         anything else patch. The window defaults to the last 10 commits.
//	strict   every commit must start with Major, Minor or Bugfix. The window
//	         defaults to the last commit.
//
// Tag names are "v<version>", or "<customer>/<project>/v<version>" when
// -identity is set to branch (branches named <customer>/<project>/release)
// or changelog ("**Customer Name:**" and "**Project Name:**" header lines).
//
// Settings may also be kept in .changetag.yml at the repository root.
// Flags given on the command line win over the file.
//
// Examples:
//
//	# Release from the last 10 commits, tag v<next>
//	changetag
//
//	# Namespace the tag by branch and fold the changelog into HEAD
//	changetag -identity branch -amend
//
//	# Strict commit tags, VERSION file, push with $GITHUB_TOKEN
//	changetag -classifier strict -source file -push
//
//	# See what would happen
//	changetag -dry
//
// For the library API see the "pkg" package.
package main
