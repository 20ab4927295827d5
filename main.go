package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/formcheck/internal/commands"
	"github.com/colonyops/formcheck/internal/core/config"
	"github.com/colonyops/formcheck/internal/core/logging"
	"github.com/colonyops/formcheck/internal/core/styles"
	"github.com/colonyops/formcheck/internal/tui"
	"github.com/colonyops/formcheck/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, buildInfo() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}

	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	app := commands.NewApp(flags, buildInfo())

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile, logging.ContextHook{})
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger
		logCloser = closer

		cfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}
		flags.Config = cfg

		// Validation ensures the theme name is known
		palette, _ := styles.GetPalette(cfg.TUI.Theme)
		styles.SetTheme(palette)

		return ctx, nil
	}

	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Println()
			fmt.Println(msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
