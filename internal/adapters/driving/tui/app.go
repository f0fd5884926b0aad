package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/views/about"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/views/learn"
	"github.com/custodia-labs/sourcebook/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/sourcebook/internal/core/domain"
	"github.com/custodia-labs/sourcebook/internal/core/ports/driven"
	"github.com/custodia-labs/sourcebook/internal/logger"
)

var log = logger.With("tui")

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// watcher reports config writes by other processes. Optional.
	watcher driven.ConfigWatcher

	// styles is shared by every view; applyTheme rebuilds it in place.
	styles *styles.Styles
	keymap *keymap.KeyMap
	theme  domain.Theme

	menuView    *menu.View
	catalogView *catalog.View
	aboutView   *about.View
	learnView   *learn.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The stored theme is applied before the first frame.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	theme := ports.Theme.Current()
	s := styles.NewStyles(styles.ThemeFor(theme))
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		catalogView: catalog.NewView(s, km, ports.Catalog, ports.Link),
		aboutView:   about.NewView(s),
		learnView:   learn.NewView(s, km, ports.MapDemo),
		currentView: messages.ViewMenu,
	}
	a.applyTheme(theme)
	return a, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.catalogView.WithContext(ctx)
	a.learnView.WithContext(ctx)
	return a
}

// WithWatcher restyles the app whenever the config changes on disk.
func (a *App) WithWatcher(w driven.ConfigWatcher) *App {
	a.watcher = w
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("GIS Data Sourcebook"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.catalogView.SetDimensions(msg.Width, msg.Height)
		a.aboutView.SetDimensions(msg.Width, msg.Height)
		a.learnView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+t":
			return a, a.toggleTheme()
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewCatalog:
			return a, a.catalogView.Init()
		case messages.ViewLearn:
			return a, a.learnView.Init()
		case messages.ViewMenu, messages.ViewAbout:
		}
		return a, nil

	case messages.ThemeChanged:
		a.applyTheme(msg.Theme)
		return a, nil

	case messages.ThemeReloaded:
		if t := a.ports.Theme.Current(); t != a.theme {
			log.Debug("theme changed on disk: %s", t)
			a.applyTheme(t)
		}
		return a, nil

	case messages.MapLoaded:
		a.learnView, cmd = a.learnView.Update(msg)
		return a, cmd

	case messages.LinkActioned:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewCatalog {
			a.catalogView, cmd = a.catalogView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewAbout:
		a.aboutView, cmd = a.aboutView.Update(msg)
	case messages.ViewLearn:
		a.learnView, cmd = a.learnView.Update(msg)
	}
	return cmd
}

// toggleTheme persists the other theme and applies it.
func (a *App) toggleTheme() tea.Cmd {
	next, err := a.ports.Theme.Toggle()
	if err != nil {
		// The toggle still applies for this session.
		log.Warn("saving theme: %v", err)
		a.err = err
		a.applyTheme(a.theme.Toggle())
		return nil
	}
	a.applyTheme(next)
	return nil
}

// applyTheme restyles every view.
func (a *App) applyTheme(t domain.Theme) {
	a.theme = t
	a.styles.Apply(styles.ThemeFor(t))
	a.catalogView.SetTheme(t)
	a.aboutView.SetTheme(t)
	a.learnView.SetTheme(t)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCatalog:
		return a.catalogView.View()
	case messages.ViewAbout:
		return a.aboutView.View()
	case messages.ViewLearn:
		return a.learnView.View()
	default:
		return a.menuView.View()
	}
}

// Run starts the TUI application and blocks until it exits.
// Log output is discarded while the alternate screen is active.
func (a *App) Run() error {
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(a.ctx)
	defer cancel()
	a.WithContext(ctx)

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(ctx))
	if a.watcher != nil {
		go func() {
			err := a.watcher.Watch(ctx, func() {
				p.Send(messages.ThemeReloaded{})
			})
			if err != nil && ctx.Err() == nil {
				log.Warn("config watch stopped: %v", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Theme returns the theme in use.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Styles returns the shared styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Catalog returns the catalog view.
func (a *App) Catalog() *catalog.View {
	return a.catalogView
}

// Learn returns the Learn view.
func (a *App) Learn() *learn.View {
	return a.learnView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
