// Package rules provides the built-in lint rules for sentencelint.
//
//   - MDS001: sentences-per-line - Each sentence should be on its own line
//
// Importing the package registers every rule with lint.DefaultRegistry and
// installs config.DefaultRuleInfoProvider for template generation.
package rules
