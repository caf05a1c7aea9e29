package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/sentencelint/internal/ui/pretty"
)

// helpStyles colors the sections of command help.
type helpStyles struct {
	command    lipgloss.Style
	heading    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	argType    lipgloss.Style
	dim        lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		p := lipgloss.NewStyle()
		return helpStyles{command: p, heading: p, subcommand: p, flag: p, argType: p, dim: p}
	}
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return helpStyles{
		command:    fg("14").Bold(true),
		heading:    fg("11").Bold(true),
		subcommand: fg("10"),
		flag:       fg("12"),
		argType:    fg("8"),
		dim:        fg("8"),
	}
}

const usageTemplate = `{{heading "Usage:"}}
{{- if .Runnable}}
  {{command .UseLine}}{{end}}
{{- if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}
{{- if gt (len .Aliases) 0}}

{{heading "Aliases:"}}
  {{dim (join .Aliases ", ")}}{{end}}
{{- if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}{{end}}
{{- if .HasAvailableSubCommands}}

{{heading "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{subcommand (pad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}
{{- if .HasAvailableSubCommands}}

Run "{{command (print .CommandPath " [command] --help")}}" for details on a command.{{end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{trim .}}

{{end}}{{if or .Runnable .HasSubCommands}}{{template "usage" .}}{{end}}`

// applyHelp installs styled help and usage output on cmd. Subcommands inherit it.
func applyHelp(cmd *cobra.Command, colorMode string, w io.Writer) {
	styles := newHelpStyles(pretty.IsColorEnabled(colorMode, w))

	funcs := template.FuncMap{
		"command":    styles.command.Render,
		"heading":    styles.heading.Render,
		"subcommand": styles.subcommand.Render,
		"dim":        styles.dim.Render,
		"flags":      styles.flagUsages,
		"pad":        rpad,
		"trim":       trimTrailingWhitespaces,
		"join":       strings.Join,
	}

	tmpl := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	template.Must(tmpl.New("help").Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := tmpl.ExecuteTemplate(c.OutOrStderr(), "usage", c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := tmpl.ExecuteTemplate(c.OutOrStdout(), "help", c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// flagUsages renders one aligned line per visible flag.
func (s helpStyles) flagUsages(fs *pflag.FlagSet) string {
	type row struct {
		styled string
		width  int
		usage  string
	}

	var rows []row
	width := 0
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		names := "    --" + f.Name
		if f.Shorthand != "" {
			names = "-" + f.Shorthand + ", --" + f.Name
		}
		styled := s.flag.Render(names)
		plain := len(names)

		varname, usage := pflag.UnquoteUsage(f)
		if varname != "" {
			styled += " " + s.argType.Render(varname)
			plain += 1 + len(varname)
		}
		if def := defaultValue(f); def != "" {
			usage += " " + s.dim.Render("(default "+def+")")
		}

		rows = append(rows, row{styled: styled, width: plain, usage: usage})
		width = max(width, plain)
	})

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, "  "+r.styled+strings.Repeat(" ", width-r.width)+"   "+r.usage)
	}
	return strings.Join(lines, "\n")
}

func defaultValue(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "false", "0", "[]":
		return ""
	}
	if f.Value.Type() == "string" {
		return fmt.Sprintf("%q", f.DefValue)
	}
	return f.DefValue
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
