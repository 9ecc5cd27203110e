// Package walker enumerates the route-module candidates under a scan root.
package walker

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultSkipDirs is the built-in directory denylist. Comparison is exact
// and case-sensitive against the directory basename only.
var DefaultSkipDirs = []string{
	"node_modules",
	".git",
	"dist",
	"build",
	"coverage",
	".next",
}

var scriptExts = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// routesSuffixRe matches the conventional Routes.ts/Routes.tsx module names.
// Redundant with the case-insensitive "route" test but kept as a separate
// predicate so the convention stays visible.
var routesSuffixRe = regexp.MustCompile(`Routes\.tsx?$`)

// Relevant reports whether a file basename looks like a routing module.
func Relevant(name string) bool {
	ext := filepath.Ext(name)
	if !scriptExts[ext] {
		return false
	}
	if strings.Contains(strings.ToLower(name), "route") {
		return true
	}
	return routesSuffixRe.MatchString(name)
}

// Options configures a walk.
type Options struct {
	// ExtraSkipDirs is appended to DefaultSkipDirs.
	ExtraSkipDirs []string
	// Warnf receives non-fatal walk diagnostics (unreadable directories).
	// Nil silences them.
	Warnf func(format string, args ...any)
}

func (o Options) warnf(format string, args ...any) {
	if o.Warnf != nil {
		o.Warnf(format, args...)
	}
}

// Walk returns the relevant file paths under root in deterministic
// depth-first, lexical-per-directory order. Unreadable directories are
// reported through Warnf and pruned; they never abort the walk.
func Walk(root string, opts Options) ([]string, error) {
	skip := make(map[string]bool, len(DefaultSkipDirs)+len(opts.ExtraSkipDirs))
	for _, d := range DefaultSkipDirs {
		skip[d] = true
	}
	for _, d := range opts.ExtraSkipDirs {
		skip[d] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			opts.warnf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if Relevant(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
