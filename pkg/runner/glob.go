package runner

import (
	"path"
	"path/filepath"
	"strings"
)

// MatchGlob reports whether relPath matches pattern.
//
// Both are split on "/". Each segment is matched with path.Match, and a "**"
// segment matches zero or more path segments. A pattern without "/" is also
// tried against the base name, so "*.md" and "CHANGELOG.md" match at any depth.
// A pattern that matches a directory matches everything beneath it.
func MatchGlob(relPath, pattern string) bool {
	relPath = strings.Trim(filepath.ToSlash(relPath), "/")
	pattern = strings.Trim(filepath.ToSlash(pattern), "/")
	if pattern == "" {
		return false
	}

	segments := strings.Split(relPath, "/")
	if !strings.Contains(pattern, "/") && pattern != "**" {
		for _, seg := range segments {
			if ok, _ := path.Match(pattern, seg); ok {
				return true
			}
		}
		return false
	}

	patSegs := strings.Split(pattern, "/")
	// Matching any prefix of the path means a parent directory matched.
	for n := len(segments); n > 0; n-- {
		if matchSegments(segments[:n], patSegs) {
			return true
		}
	}
	return false
}

func matchSegments(segs, pats []string) bool {
	for len(pats) > 0 {
		if pats[0] == "**" {
			rest := pats[1:]
			for skip := 0; skip <= len(segs); skip++ {
				if matchSegments(segs[skip:], rest) {
					return true
				}
			}
			return false
		}
		if len(segs) == 0 {
			return false
		}
		if ok, err := path.Match(pats[0], segs[0]); err != nil || !ok {
			return false
		}
		segs, pats = segs[1:], pats[1:]
	}
	return len(segs) == 0
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}
