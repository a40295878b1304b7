// main.go
package main

import (
	"TUI_video_browser/infrastructure/config"
	"TUI_video_browser/infrastructure/logger"
	"TUI_video_browser/infrastructure/provider"
	"TUI_video_browser/internal/core/store"
	"TUI_video_browser/internal/core/usecases"
	"TUI_video_browser/internal/handler/tui"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	loaded, dotenvErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	appLogger, err := logger.NewFileLogger(cfg.LogDir, "video_browser_tui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")
	if len(loaded) > 0 {
		appLogger.Info("Loaded env files: " + strings.Join(loaded, ", "))
	}
	if dotenvErr != nil {
		appLogger.Error("Failed to load env file", dotenvErr)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", dotenvErr)
	}

	// a missing key is not fatal: every call fails and the screens show it
	apiKeyMissing := false
	if err := cfg.Validate(); err != nil {
		appLogger.Warning(err.Error())
		apiKeyMissing = true
	}

	// Initialize Services
	youtubeProvider := provider.NewYoutubeProvider(provider.OptionsFromConfig(cfg), appLogger)
	catalogUseCase := usecases.NewCatalogUseCase(youtubeProvider, appLogger, usecases.Limits{
		SearchPageSize:   cfg.SearchPageSize,
		RelatedLimit:     cfg.RelatedLimit,
		CommentsPageSize: cfg.CommentsPageSize,
	})
	searchStore := store.NewSearchStore(catalogUseCase, appLogger)

	// Create the initial TUI model
	initialModel := tui.NewAppModel(catalogUseCase, searchStore, appLogger, tui.Options{
		SearchDebounce: cfg.SearchDebounce,
		APIKeyMissing:  apiKeyMissing,
	})

	// Start Bubble Tea program
	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	unsubscribe := tui.SubscribeStore(p, searchStore)
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		appLogger.Error("Error running TUI program", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Application finished.")
}
