package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mffit/internal"
	"mffit/internal/config"
	"mffit/internal/history"
	"mffit/internal/logging"
	"mffit/internal/storage"
	"mffit/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

func main() {
	env := flag.String("env", "development", "environment [dev | development | prod | production]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	printOnly := flag.Bool("print", false, "print the workout history and exit")
	ephemeral := flag.Bool("ephemeral", false, "keep workouts in memory only")
	flag.Parse()

	// a missing .env is fine, the config file and defaults still apply
	envFileErr := godotenv.Load()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var fallback io.Writer = io.Discard
	if *printOnly {
		fallback = os.Stderr
	}
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		Fallback:      fallback,
	})

	if envFileErr != nil {
		log.Debugf("no .env loaded: %s", envFileErr)
	}
	log.Debugf("using db [%s], key [%s]", cfg.DBPath, cfg.StorageKey)

	if err := run(cfg, *printOnly, *ephemeral); err != nil {
		log.Errorf("run: %s", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, printOnly, ephemeral bool) (err error) {
	store, err := openStore(cfg.DBPath, ephemeral)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		err = multierr.Append(err, store.Close())
	}()

	if printOnly {
		records, err := workout.NewRepository(store, cfg.StorageKey, nil).Load()
		if err != nil {
			return err
		}
		fmt.Print(history.Build(records).Text())
		return nil
	}

	m, err := internal.NewModel(store, cfg.StorageKey)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func openStore(path string, ephemeral bool) (storage.Store, error) {
	if ephemeral {
		log.Infoln("using in-memory store, workouts will not be kept")
		return storage.NewMemoryStore(), nil
	}
	return storage.NewSQLiteStore(path)
}
