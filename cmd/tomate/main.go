package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tomate-timer/tomate/internal/cmd"
	"github.com/tomate-timer/tomate/internal/config"
	"github.com/tomate-timer/tomate/internal/ui"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text
const Tagline = "One tomato at a time"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("tomate %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Tagline:   Tagline,
		Version:   Version,
	})

	// Defaults < settings.json < TOMATE_* env; flags are applied after parsing
	loader := config.NewLoader(config.GetSettingsPath())
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetConfig(loader, cfg)
	ctx := kong.Parse(&cli,
		kong.Name("tomate"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.Close()
		os.Exit(1)
	}
}
