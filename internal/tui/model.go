// Package tui is the interactive fortune screen
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/keks/internal/config"
	"github.com/thenoetrevino/keks/internal/models"
	"github.com/thenoetrevino/keks/internal/services/fortune"
	"github.com/thenoetrevino/keks/internal/tui/huhforms"
)

// Model represents the application state for the TUI. It only holds copies
// derived from the store; everything is re-read after a write.
type Model struct {
	ctx    context.Context
	svc    fortune.Service
	config *config.Config
	logger *slog.Logger

	keys   keyMap
	help   help.Model
	styles styles
	theme  *huh.Theme

	language    string
	fortune     *fortune.Fortune
	displayName string
	mascotColor string
	status      status

	mode     mode
	addQuote *addQuoteDialog
	rename   *renameDialog
	mascot   *mascotDialog

	width  int
	height int
}

// InitialModel creates the model and loads the first fortune
func InitialModel(ctx context.Context, svc fortune.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	language := cfg.DefaultLanguage
	if !models.IsPrimaryLanguage(language) {
		language = models.LanguageGerman
	}

	m := Model{
		ctx:      ctx,
		svc:      svc,
		config:   cfg,
		logger:   slog.Default(),
		keys:     newKeyMap(cfg.KeyMappings),
		help:     help.New(),
		styles:   newStyles(cfg.ColorScheme),
		theme:    huhforms.CreateKeksTheme(cfg.ColorScheme),
		language: language,
	}

	m.reloadSettings()
	m.nextFortune()
	return m
}

// Init sets the terminal title to the display name
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.displayName)
}

// reloadSettings re-reads the display name and mascot color
func (m *Model) reloadSettings() {
	settings, err := m.svc.Settings(m.ctx)
	if err != nil {
		m.fail("Could not load settings", err)
		return
	}
	m.displayName = settings.DisplayName

	mascot, err := m.svc.Mascot(m.ctx)
	if err != nil {
		m.fail("Could not load mascot", err)
		return
	}
	m.mascotColor = mascot.Color
}

// nextFortune draws a new fortune for the current language
func (m *Model) nextFortune() {
	f, err := m.svc.NextFortune(m.ctx, m.language)
	if err != nil {
		m.fail("Could not load a fortune", err)
		return
	}
	m.fortune = f
}

// toggleLanguage switches between German and English and draws a new fortune
func (m *Model) toggleLanguage() {
	if m.language == models.LanguageGerman {
		m.language = models.LanguageEnglish
	} else {
		m.language = models.LanguageGerman
	}
	m.nextFortune()
}

// fail logs err and shows msg in the status line
func (m *Model) fail(msg string, err error) {
	m.logger.Error(msg, "error", err)
	m.status = errorStatus(msg + ": " + err.Error())
}
