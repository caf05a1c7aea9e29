package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/sentencelint/pkg/config"
	"github.com/yaklabco/sentencelint/pkg/lint"
	"github.com/yaklabco/sentencelint/pkg/lint/rules"
)

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	rules.RegisterAliases(registry)

	all := registry.Rules()
	require.Len(t, all, 1)
	assert.Equal(t, "sentences-per-line", all[0].Name())

	for _, key := range []string{"MDS001", "sentences-per-line", "sentences"} {
		id, ok := registry.Resolve(key)
		assert.True(t, ok, key)
		assert.Equal(t, "MDS001", id, key)
	}

	assert.Equal(t, []string{"sentences"}, registry.Aliases("MDS001"))
}

func TestDefaultRegistry(t *testing.T) {
	id, ok := lint.DefaultRegistry.Resolve("sentences")
	assert.True(t, ok)
	assert.Equal(t, "MDS001", id)

	require.NotNil(t, config.DefaultRuleInfoProvider)
	infos := config.DefaultRuleInfoProvider()
	require.Len(t, infos, 1)
	assert.Equal(t, config.RuleInfo{
		ID:          "MDS001",
		Name:        "sentences-per-line",
		Description: "Each sentence should be on its own line",
		Enabled:     true,
		Severity:    config.SeverityWarning,
		Tags:        []string{"sentences"},
		CanFix:      true,
	}, infos[0])
}
