package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eabolaji/worldnews/internal/browser"
	"github.com/eabolaji/worldnews/internal/config"
	"github.com/eabolaji/worldnews/internal/logging"
	"github.com/eabolaji/worldnews/internal/news"
	"github.com/eabolaji/worldnews/internal/search"
	"github.com/eabolaji/worldnews/internal/theme"
	"github.com/eabolaji/worldnews/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

func main() {
	var (
		dbPath         = flag.String("db", "", "Path to database file (overrides config)")
		configPath     = flag.String("config", "", "Path to configuration file")
		generateConfig = flag.Bool("generate-config", false, "Generate default config file")
		version        = flag.Bool("version", false, "Show version information")
		quiet          = flag.Bool("quiet", false, "Skip startup banner")
	)
	flag.Parse()

	if *version {
		fmt.Printf("%s %s\n", tui.AppName, Version)
		fmt.Println("New York Times top stories browser")
		fmt.Println("github.com/eabolaji/worldnews")
		return
	}

	if *generateConfig {
		home, _ := os.UserHomeDir()
		configDir := filepath.Join(home, ".config", "worldnews")
		configFile := filepath.Join(configDir, "config.toml")

		if err := config.GenerateDefaultConfig(configFile); err != nil {
			log.Fatalf("Failed to generate config: %v", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
		return
	}

	if !*quiet {
		tui.ShowBanner(Version)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	// Expand tilde in database path
	if len(cfg.Database.Path) >= 2 && cfg.Database.Path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		cfg.Database.Path = filepath.Join(home, cfg.Database.Path[2:])
	}

	// The TUI owns stdout, so logs go to a file (or nowhere).
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	store, err := theme.NewStore(cfg.Database.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	client := news.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.HTTPTimeout)
	if cfg.API.Key == "" {
		logger.Info("no API key configured, falling back to RSS feeds")
	}

	engine, err := search.NewEngine()
	if err != nil {
		log.Fatalf("Failed to set up search: %v", err)
	}
	defer engine.Close()

	launcher := browser.NewLauncher(cfg)

	app := tui.NewApp(client, store, launcher, engine, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
