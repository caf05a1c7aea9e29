package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/config"
)

func TestNewConfig(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, string(config.SeverityWarning), cfg.SeverityDefault)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.RuleFormatName, cfg.RuleFormat)
	assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	assert.True(t, cfg.Backups.Enabled)
	assert.NotNil(t, cfg.Rules)
}

func TestValidity(t *testing.T) {
	assert.True(t, config.SeverityInfo.IsValid())
	assert.False(t, config.Severity("fatal").IsValid())
	assert.True(t, config.FormatSARIF.IsValid())
	assert.False(t, config.OutputFormat("table").IsValid())
	assert.True(t, config.RuleFormatCombined.IsValid())
	assert.False(t, config.RuleFormat("short").IsValid())
}

func TestRuleFormatIdentifier(t *testing.T) {
	tests := []struct {
		format config.RuleFormat
		name   string
		want   string
	}{
		{format: config.RuleFormatName, name: "sentences-per-line", want: "sentences-per-line"},
		{format: config.RuleFormatID, name: "sentences-per-line", want: "MDS001"},
		{format: config.RuleFormatCombined, name: "sentences-per-line", want: "MDS001/sentences-per-line"},
		{format: config.RuleFormat("bogus"), name: "sentences-per-line", want: "sentences-per-line"},
		{format: config.RuleFormatName, name: "", want: "MDS001"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.Identifier("MDS001", tt.name))
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("minimal template parses", func(t *testing.T) {
		cfg, err := config.FromYAML(config.GenerateTemplate(config.TemplateOptions{}))
		require.NoError(t, err)
		assert.Equal(t, "warning", cfg.SeverityDefault)
		assert.Equal(t, "sidecar", cfg.Backups.Mode)
		assert.Empty(t, cfg.Rules)
	})

	t.Run("full template documents rules", func(t *testing.T) {
		original := config.DefaultRuleInfoProvider
		t.Cleanup(func() { config.DefaultRuleInfoProvider = original })

		config.DefaultRuleInfoProvider = func() []config.RuleInfo {
			return []config.RuleInfo{{
				ID:          "MDS001",
				Name:        "sentences-per-line",
				Description: "Each sentence should be on its own line",
				Enabled:     true,
				Severity:    config.SeverityWarning,
				Tags:        []string{"sentences"},
				CanFix:      true,
			}}
		}

		out := config.GenerateTemplate(config.TemplateOptions{Full: true})
		assert.Contains(t, string(out), "# MDS001: sentences-per-line")
		assert.Contains(t, string(out), "# Auto-fix: yes")

		cfg, err := config.FromYAML(out)
		require.NoError(t, err)
		require.Contains(t, cfg.Rules, "MDS001")
		assert.True(t, *cfg.Rules["MDS001"].Enabled)
	})
}
