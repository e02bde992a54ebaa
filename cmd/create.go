package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/agentverse/create-agentverse-agent/pkg/agentcfg"
	"github.com/agentverse/create-agentverse-agent/pkg/scaffold"
	"github.com/agentverse/create-agentverse-agent/pkg/templates"
)

func runCreate(ctx context.Context, cmd *cli.Command) error {
	cleanup, err := setupLogging(cmd.Bool("debug"))
	if err != nil {
		return err
	}
	defer cleanup()

	log.Debug("cli options",
		"default", cmd.Bool("default"),
		"advanced", cmd.Bool("advanced"),
		"overwrite", cmd.Bool("overwrite"),
		"config", cmd.String("config"))

	// The project root is resolved once, here, and threaded in explicitly;
	// nothing below reads the working directory on its own.
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	rich := stdoutIsTTY()

	cfg, err := buildConfig(cmd.String("config"), root)
	if err != nil {
		return presentError(err, rich)
	}
	log.Info("configuration initialized", "name", cfg.DisplayName(), "env", cfg.Env)

	if cmd.Bool("default") {
		fmt.Println()
		fmt.Println(sty(rich, successStyle, "⚡ Quick start: using default configuration"))
	} else {
		if err := runWizard(ctx, cfg, cmd.Bool("advanced")); err != nil {
			return presentError(err, rich)
		}
	}

	fmt.Println(renderSummary(cfg, rich))

	if !cmd.Bool("default") {
		ok, err := confirmCreate(ctx)
		if err != nil {
			return presentError(err, rich)
		}
		if !ok {
			return presentError(huh.ErrUserAborted, rich)
		}
	}

	log.Info("creating project", "name", cfg.DisplayName(), "path", cfg.ProjectPath(), "overwrite", cmd.Bool("overwrite"))

	engine, err := templates.NewEmbeddedEngine()
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	scaffolder := scaffold.New(engine, scaffold.WithQuiet(true))

	var projectPath string
	create := func(context.Context) error {
		var err error
		projectPath, err = scaffolder.CreateProject(cfg, cmd.Bool("overwrite"))
		return err
	}

	if err := spinner.New().
		Title(fmt.Sprintf("Creating agent %q...", cfg.DisplayName())).
		Context(ctx).
		ActionWithErr(create).
		Run(); err != nil {
		log.Error("scaffolding failed", "err", err)
		return presentError(err, rich)
	}

	log.Info("agent created", "path", projectPath)
	printSuccess(cfg, projectPath, rich)

	return nil
}

func buildConfig(configFile, root string) (*agentcfg.Config, error) {
	if configFile != "" {
		log.Debug("seeding configuration from file", "path", configFile)
		return agentcfg.LoadFile(configFile, agentcfg.WithRoot(root))
	}
	return agentcfg.New(agentcfg.WithRoot(root))
}

func confirmCreate(ctx context.Context) (bool, error) {
	ready := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Ready to create your agent?").
			Value(&ready),
	))

	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}

	return ready, nil
}

// presentError turns each error kind into its terminal rendering and exit
// behavior: aborts exit quietly, recoverable conflicts come with a hint,
// everything else propagates to cli's error handling.
func presentError(err error, rich bool) error {
	var (
		exists   *scaffold.ExistsError
		conflict *agentcfg.PortConflictError
		invalid  *agentcfg.ValidationError
		render   *templates.RenderError
	)

	switch {
	case err == nil:
		return nil

	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		log.Warn("setup cancelled by user")
		fmt.Println()
		fmt.Println(sty(rich, hintStyle, "✖ Setup cancelled"))
		return nil

	case errors.As(err, &exists):
		log.Error("project already exists", "path", exists.Path)
		fmt.Println()
		fmt.Println(sty(rich, errorStyle, "✖ Project already exists"))
		fmt.Println("  " + exists.Path)
		fmt.Println(sty(rich, hintStyle, "  Use --overwrite to replace the existing project"))
		return cli.Exit("", 1)

	case errors.As(err, &conflict):
		log.Error("port conflict", "agent_port", conflict.AgentPort, "hosting_port", conflict.HostingPort)
		fmt.Println()
		fmt.Println(sty(rich, errorStyle, "✖ Configuration conflict"))
		fmt.Println("  " + conflict.Error())
		fmt.Println(sty(rich, hintStyle, "  Change one of the two ports and try again"))
		return cli.Exit("", 1)

	case errors.As(err, &invalid):
		log.Error("invalid configuration", "err", invalid)
		fmt.Println()
		fmt.Println(sty(rich, errorStyle, "✖ Invalid configuration"))
		for _, f := range invalid.Fields {
			fmt.Printf("  %s %s\n", f.Field, f.Constraint)
		}
		return cli.Exit("", 1)

	case errors.As(err, &render):
		log.Error("render failed", "template", render.Template, "err", render.Err)
		fmt.Println()
		fmt.Println(sty(rich, errorStyle, "✖ Failed to render "+render.Template))
		fmt.Println("  " + render.Err.Error())
		return cli.Exit("", 1)

	default:
		return err
	}
}
