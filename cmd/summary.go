package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/agentverse/create-agentverse-agent/pkg/agentcfg"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")) // blue
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))            // muted
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))            // text
	secretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))            // yellow
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))            // yellow
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8")) // red
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1")) // green
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89b4fa")).
			Padding(1, 2)
)

func stdoutIsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// sty applies a style only when rich output is enabled.
func sty(rich bool, style lipgloss.Style, s string) string {
	if rich {
		return style.Render(s)
	}
	return s
}

// renderSummary formats the configuration for the confirmation screen. The
// seed phrase and API key are always redacted here; the full values only
// ever reach the rendered templates.
func renderSummary(cfg *agentcfg.Config, rich bool) string {
	var b strings.Builder

	line := func(label, value string, style lipgloss.Style) {
		b.WriteString(sty(rich, labelStyle, fmt.Sprintf("%-13s", label+":")))
		b.WriteString(" ")
		b.WriteString(sty(rich, style, value))
		b.WriteString("\n")
	}

	b.WriteString(sty(rich, headerStyle, "Agent"))
	b.WriteString("\n")
	line("Name", cfg.DisplayName(), valueStyle)
	line("Port", itoa(cfg.AgentPort), valueStyle)
	line("Seed phrase", redactSecret(cfg.AgentSeedPhrase), secretStyle)
	line("Description", cfg.AgentDescription, valueStyle)
	b.WriteString("\n")

	b.WriteString(sty(rich, headerStyle, "Hosting"))
	b.WriteString("\n")
	line("Address", cfg.HostingAddress, valueStyle)
	line("Port", itoa(cfg.HostingPort), valueStyle)
	line("Endpoint", cfg.Endpoint(), valueStyle)
	b.WriteString("\n")

	b.WriteString(sty(rich, headerStyle, "Environment"))
	b.WriteString("\n")
	line("Mode", cfg.Env, valueStyle)
	line("API key", redactSecret(cfg.AgentverseAPIKey), secretStyle)

	body := strings.TrimRight(b.String(), "\n")
	if rich {
		return "\n" + panelStyle.Render(body)
	}
	return "\n" + body
}

func printSuccess(cfg *agentcfg.Config, path string, rich bool) {
	fmt.Println()
	fmt.Println(sty(rich, successStyle, "🎉 Agent created successfully"))
	fmt.Println()
	fmt.Println(sty(rich, headerStyle, "Project location"))
	fmt.Println("  " + path)
	fmt.Println()
	fmt.Println(sty(rich, headerStyle, "Next steps"))

	step := 1
	if !cfg.HasAPIKey() {
		fmt.Printf("  %d. Add your AGENTVERSE_API_KEY to .env\n", step)
		step++
	}
	fmt.Printf("  %d. Start your agent: docker-compose up\n", step)

	fmt.Println()
	fmt.Println(sty(rich, hintStyle, "💡 Tip: use 'docker-compose up -d' to run in the background"))
}

// redactSecret keeps the first 8 characters so the user can recognize the
// value without the summary being paste-safe ammunition.
func redactSecret(s string) string {
	if s == "" {
		return "not set"
	}
	if len(s) > 8 {
		s = s[:8]
	}
	return s + strings.Repeat("•", 10)
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
