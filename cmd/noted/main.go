package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/noted/internal/app"
	"github.com/renato0307/noted/internal/commands"
	"github.com/renato0307/noted/internal/config"
	"github.com/renato0307/noted/internal/keyboard"
	"github.com/renato0307/noted/internal/logging"
	"github.com/renato0307/noted/internal/state"
	"github.com/renato0307/noted/internal/ui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file (default: $HOME/.config/noted/config.yaml)")
	keysFlag := flag.Bool("keys", false, "Print the resolved command table as YAML and exit")
	logFileFlag := flag.String("log-file", "", "Write logs to this file (overrides config)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *logFileFlag != "" {
		cfg.Log.File = *logFileFlag
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}

	if err := logging.Init(logging.Config{
		FilePath:   cfg.Log.File,
		Level:      logging.ParseLevel(cfg.Log.Level),
		Format:     logging.ParseFormat(cfg.Log.Format),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	code := run(cfg, *keysFlag, flag.Args())
	_ = logging.Shutdown()
	os.Exit(code)
}

// run holds everything that needs deferred cleanup before exit
func run(cfg config.Config, printKeys bool, paths []string) int {
	logging.Debug("config loaded", "keybindings", len(cfg.Keybindings), "meta_from_alt", cfg.Keyboard.MetaFromAlt)

	cmds, err := commands.ApplyKeybindings(commands.Defaults(), cfg.Keybindings)
	if err != nil {
		logging.Error("invalid keybindings", "error", err)
		fmt.Fprintf(os.Stderr, "Error in keybindings: %v\n", err)
		return 1
	}

	var registry *commands.Registry
	logging.Time("build command table", func() {
		registry, err = commands.NewRegistry(cmds...)
	})
	if err != nil {
		logging.Error("command table rejected", "error", err)
		fmt.Fprintf(os.Stderr, "Error building command table: %v\n", err)
		return 1
	}

	if printKeys {
		out, err := registry.ExportYAML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting commands: %v\n", err)
			return 1
		}
		os.Stdout.Write(out)
		return 0
	}

	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving working directory: %v\n", err)
		return 1
	}
	tabs := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving %s: %v\n", p, err)
			return 1
		}
		tabs = append(tabs, abs)
	}

	store := state.NewStore(state.New(root, tabs))
	subs, err := state.NewHandlers(store).Bind(registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error binding commands: %v\n", err)
		return 1
	}
	defer func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}()

	logging.Info("starting", "root", root, "tabs", len(tabs), "commands", len(registry.All()))

	keys := keyboard.DefaultOptions()
	keys.MetaFromAlt = cfg.Keyboard.MetaFromAlt
	if !keys.MetaFromAlt {
		logging.Warn("meta_from_alt disabled; Meta shortcuts cannot be typed in a terminal")
	}

	model := app.NewModel(registry, store, ui.DefaultTheme(), keys)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	return 0
}
