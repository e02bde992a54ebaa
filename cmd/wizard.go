package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/agentverse/create-agentverse-agent/pkg/agentcfg"
)

// wizardData backs the form fields. Ports are collected as text and parsed
// during validation; everything else maps straight onto the config.
type wizardData struct {
	name        string
	seed        string
	port        string
	description string

	configureHosting bool
	hostingAddr      string
	hostingPort      string

	configureEnv bool
	env          string
	addKey       bool
	apiKey       string
}

// runWizard collects configuration interactively and writes the result into
// cfg. Standard mode asks for the agent identity only; advanced mode also
// offers hosting, environment and API-key sections. Cancelling surfaces as
// huh.ErrUserAborted.
func runWizard(ctx context.Context, cfg *agentcfg.Config, advanced bool) error {
	log.Debug("starting wizard", "advanced", advanced)

	data := &wizardData{
		name:        cfg.DisplayName(),
		seed:        cfg.AgentSeedPhrase,
		port:        strconv.Itoa(cfg.AgentPort),
		description: cfg.AgentDescription,
		hostingAddr: cfg.HostingAddress,
		hostingPort: strconv.Itoa(cfg.HostingPort),
		env:         cfg.Env,
		apiKey:      cfg.AgentverseAPIKey,
	}

	identity := huh.NewGroup(
		huh.NewInput().
			Title("What should we call your agent?").
			Value(&data.name).
			Validate(agentcfg.ValidateAgentName),
		huh.NewInput().
			Title("Agent seed phrase").
			Description("Your seed phrase is like a password, keep it safe").
			EchoMode(huh.EchoModePassword).
			Value(&data.seed).
			Validate(agentcfg.ValidateSeedPhrase),
		huh.NewInput().
			Title("Which port should your agent run on?").
			Value(&data.port).
			Validate(validatePortInput),
		huh.NewInput().
			Title("Describe your agent in a few words").
			Value(&data.description).
			Validate(agentcfg.ValidateDescription),
	)

	hostingGate := huh.NewGroup(
		huh.NewConfirm().
			Title("Configure custom hosting settings?").
			Value(&data.configureHosting),
	).WithHideFunc(func() bool { return !advanced })

	hosting := huh.NewGroup(
		huh.NewInput().
			Title("Where will your agent be hosted?").
			Value(&data.hostingAddr).
			Validate(agentcfg.ValidateHostingAddress),
		huh.NewInput().
			Title("Hosting port").
			Value(&data.hostingPort).
			Validate(validatePortInput),
	).WithHideFunc(func() bool { return !advanced || !data.configureHosting })

	envGate := huh.NewGroup(
		huh.NewConfirm().
			Title("Configure environment & API keys?").
			Value(&data.configureEnv),
	).WithHideFunc(func() bool { return !advanced })

	environment := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which environment are you deploying to?").
			Options(
				huh.NewOption("Development", "development"),
				huh.NewOption("Production", "production"),
			).
			Value(&data.env),
		huh.NewConfirm().
			Title("Add AgentVerse API key now?").
			Description("API keys are optional, you can add them to .env later").
			Value(&data.addKey),
	).WithHideFunc(func() bool { return !advanced || !data.configureEnv })

	apiKey := huh.NewGroup(
		huh.NewInput().
			Title("AgentVerse API key").
			EchoMode(huh.EchoModePassword).
			Value(&data.apiKey).
			Validate(agentcfg.ValidateAPIKey),
	).WithHideFunc(func() bool { return !advanced || !data.configureEnv || !data.addKey })

	form := huh.NewForm(identity, hostingGate, hosting, envGate, environment, apiKey)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	data.apply(cfg)
	log.Debug("wizard complete", "name", cfg.DisplayName(), "env", cfg.Env)

	// Fields are valid on their own at this point; this catches the
	// cross-field port collision.
	return cfg.Validate()
}

func (d *wizardData) apply(cfg *agentcfg.Config) {
	cfg.AgentName = strings.TrimSpace(d.name)
	cfg.AgentSeedPhrase = strings.TrimSpace(d.seed)
	cfg.AgentPort = mustPort(d.port, cfg.AgentPort)
	cfg.AgentDescription = strings.TrimSpace(d.description)

	if d.configureHosting {
		cfg.HostingAddress = strings.TrimSpace(d.hostingAddr)
		cfg.HostingPort = mustPort(d.hostingPort, cfg.HostingPort)
	}

	if d.configureEnv {
		cfg.Env = d.env
		if d.addKey {
			cfg.AgentverseAPIKey = strings.TrimSpace(d.apiKey)
		}
	}
}

func validatePortInput(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("please enter a valid number")
	}
	return agentcfg.ValidatePort(n)
}

// mustPort re-parses a port the form already validated.
func mustPort(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
