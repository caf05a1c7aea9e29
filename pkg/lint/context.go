package lint

import (
	"context"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/mdfile"
)

// RuleContext is what one rule sees of one file.
type RuleContext struct {
	// Ctx is stored because a RuleContext lives for a single Apply call.
	Ctx context.Context

	File       *mdfile.FileSnapshot
	Config     *config.Config
	RuleConfig *config.RuleConfig // nil when the rule is not configured
}

// NewRuleContext creates a RuleContext for the given file and configuration.
func NewRuleContext(
	ctx context.Context,
	file *mdfile.FileSnapshot,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	return &RuleContext{Ctx: ctx, File: file, Config: cfg, RuleConfig: ruleCfg}
}

// Cancelled reports whether the run was cancelled.
func (rc *RuleContext) Cancelled() bool {
	return rc.Ctx != nil && rc.Ctx.Err() != nil
}

// Option returns the rule option key, or fallback when it is unset.
func (rc *RuleContext) Option(key string, fallback any) any {
	if rc.RuleConfig == nil {
		return fallback
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return fallback
}
