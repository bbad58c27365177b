package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kbase/internal/eventbus"
	"kbase/internal/logging"
	"kbase/internal/ui"
)

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, cfgPath, created, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.LogPath(), cfg.SlogLevel())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
	}
	defer closeLog()

	cat, err := loadCatalog(opts, cfg)
	if err != nil {
		return err
	}

	bus := eventbus.New(logger)
	defer bus.Close()
	logEvents(bus, logger)

	bus.Publish(eventbus.ConfigLoadedEvent{Path: cfgPath, Created: created})
	bus.Publish(eventbus.CatalogLoadedEvent{Source: cat.Source(), Articles: cat.Len()})

	model := ui.NewModel(bus, cfg, cat)
	model.SetReadyMarker(os.Getenv(envE2E) == "1")

	var programOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Errors go back to the UI status bar
	unsubscribe := bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	logger.Info("starting UI", "catalog", cat.Source(), "articles", cat.Len())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}

// logEvents records the session's domain events in the log file
func logEvents(bus eventbus.EventBus, logger *slog.Logger) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.Info("config loaded", "path", ev.Path, "created", ev.Created)
		}
	})
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.CatalogLoadedEvent); ok {
			logger.Info("catalog loaded", "source", ev.Source, "articles", ev.Articles)
		}
	})
	bus.Subscribe(eventbus.EventFilterChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.FilterChangedEvent); ok {
			logger.Debug("filter changed",
				"search", ev.SearchQuery,
				"category", ev.SelectedCategory,
				"tags", ev.SelectedTags,
				"matched", ev.Matched)
		}
	})
	bus.Subscribe(eventbus.EventArticleOpened, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ArticleOpenedEvent); ok {
			logger.Info("article opened", "id", ev.ArticleID, "title", ev.Title)
		}
	})
	bus.Subscribe(eventbus.EventAddArticleRequested, func(e eventbus.DomainEvent) {
		logger.Info("add article requested")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			logger.Error(ev.Message, "err", ev.Err)
		}
	})
}
