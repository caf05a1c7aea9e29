// Package runner discovers Markdown files and lints them concurrently.
package runner

import "github.com/yaklabco/sentencelint/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore patterns.
	// Defaults to the process working directory.
	WorkingDir string

	// Extensions selects files during directory walks (case-insensitive,
	// with leading dot). Defaults to config.DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skips matching files and directories. "**" matches any
	// number of path segments.
	ExcludeGlobs []string

	// FollowSymlinks descends into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds concurrent workers. 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration passed to every file.
	Config *config.Config
}

// OptionsFromConfig fills Extensions, ExcludeGlobs and Jobs from cfg.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths, Config: cfg}
	if cfg != nil {
		opts.Extensions = cfg.Extensions
		opts.ExcludeGlobs = cfg.Ignore
		opts.Jobs = cfg.Jobs
	}
	return opts
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
