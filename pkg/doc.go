// Package changetag provides a library for semantic version release tagging.
//
// A release is one linear pipeline:
//   - an IdentityResolver picks the tag namespace (none, branch name, or
//     changelog metadata),
//   - a VersionSource reads the latest released version (changelog headings
//     or a VERSION file), defaulting to 0.0.0,
//   - a Classifier maps recent commit subjects to a major, minor or patch
//     bump,
//   - the changelog gets a new "## v<version> - <timestamp>" section,
//   - HEAD is optionally amended, then an annotated tag is created and
//     optionally pushed.
//
// Version control is reached only through the VCS interface; Git is the
// implementation backed by the git binary.
//
// Usage Example:
//
//	import (
//	    "log"
//	    changetag "github.com/bcomnes/changetag/pkg"
//	)
//
//	func main() {
//	    meta, err := changetag.Run(changetag.Options{RepoPath: ".", Identity: "branch"})
//	    if err != nil {
//	        log.Fatalf("release failed: %v", err)
//	    }
//	    log.Println("Released version:", meta.Tag)
//	}
package changetag
