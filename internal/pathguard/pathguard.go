// Package pathguard rejects paths that reference the deprecated
// CommonTypes/v14 schema lineage.
//
// The v14 common-types directory is a known source of silent
// mis-resolution: schemas published under it declare import locations that
// no longer match the regulator's layout. The guard is a pure predicate
// over a normalized string so it can run before any file handle is opened
// or resolver constructed.
package pathguard

import (
	"strings"

	"github.com/fsatools/fsatools/xsderrors"
	"golang.org/x/text/cases"
)

// ForbiddenSegment is the legacy directory sequence that must not appear
// anywhere in a supplied path.
const ForbiddenSegment = "CommonTypes/v14"

// folder performs Unicode case folding so the match is case-insensitive
// beyond ASCII.
var folder = cases.Fold()

// Check reports whether path contains the forbidden legacy segment in
// either slash convention, any case. It performs no I/O. A nil return
// means the path is acceptable; otherwise the error is a
// *xsderrors.ForbiddenPathError.
func Check(path string) error {
	if containsForbiddenSegment(path) {
		return &xsderrors.ForbiddenPathError{
			Path:    path,
			Segment: ForbiddenSegment,
		}
	}
	return nil
}

// containsForbiddenSegment matches the segment pair on directory
// boundaries: "a/CommonTypes/v14/b" matches, "a/NotCommonTypes/v14"
// and "CommonTypes/v140" do not.
func containsForbiddenSegment(path string) bool {
	normalized := folder.String(strings.ReplaceAll(path, `\`, "/"))
	want := strings.Split(folder.String(ForbiddenSegment), "/")

	segments := make([]string, 0, 8)
	for seg := range strings.SplitSeq(normalized, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	for i := 0; i+len(want) <= len(segments); i++ {
		match := true
		for j, w := range want {
			if segments[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
