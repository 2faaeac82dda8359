// Package mapdesk provides an embeddable floating-panel desk for
// terminal GIS tooling, usable standalone or inside other Bubble Tea
// applications.
//
// # Basic Usage
//
//	model := mapdesk.New()
//	p := tea.NewProgram(model, mapdesk.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model := mapdesk.New(
//		mapdesk.WithTheme("dracula"),
//		mapdesk.WithBorderStyle("double"),
//		mapdesk.WithAutostart("layers", "legend"),
//	)
//
// # Using with sip (Web Terminal)
//
// mapdesk can be served through the browser using the sip library:
//
//	server := sip.NewServer(sip.DefaultConfig())
//	server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
//		pty := sess.Pty()
//		return mapdesk.NewForPTY(pty.Width, pty.Height), mapdesk.ProgramOptions()
//	})
package mapdesk

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/mapdesk/internal/app"
	"github.com/Gaurav-Gosain/mapdesk/internal/config"
	"github.com/Gaurav-Gosain/mapdesk/internal/input"
	"github.com/Gaurav-Gosain/mapdesk/internal/theme"
	"github.com/Gaurav-Gosain/mapdesk/internal/wm"
)

// Model is the mapdesk tea.Model. It wraps the internal desk and
// provides a clean public API.
type Model = app.Desk

// Options configures a mapdesk instance.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Unicode glyphs.
	ASCIIOnly bool

	// BorderStyle sets the panel border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "block", "ascii"
	BorderStyle string

	// DockPosition sets where the dock bar appears.
	// Valid values: "bottom", "top", "hidden"
	DockPosition string

	// HideWindowButtons hides the minimize/maximize/close buttons.
	HideWindowButtons bool

	// Autostart lists panel ids opened at startup.
	Autostart []string

	// Panels adds extra panel kinds to the catalog.
	Panels []wm.WindowConfig

	// Width and Height set the initial size (set automatically if 0).
	Width  int
	Height int

	// UserConfig is a custom user configuration. If nil, the on-disk
	// config supplies the defaults for fields left unset here.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring mapdesk.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) { o.Theme = name }
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) { o.ASCIIOnly = enabled }
}

// WithBorderStyle sets the panel border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) { o.BorderStyle = style }
}

// WithDockPosition sets the dock bar position.
func WithDockPosition(position string) Option {
	return func(o *Options) { o.DockPosition = position }
}

// WithHideWindowButtons hides panel control buttons.
func WithHideWindowButtons(hide bool) Option {
	return func(o *Options) { o.HideWindowButtons = hide }
}

// WithAutostart sets the panels opened at startup.
func WithAutostart(ids ...string) Option {
	return func(o *Options) { o.Autostart = ids }
}

// WithPanels registers additional panel kinds on top of the built-in
// catalog.
func WithPanels(panels ...wm.WindowConfig) Option {
	return func(o *Options) { o.Panels = append(o.Panels, panels...) }
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) { o.UserConfig = cfg }
}

// New creates a new mapdesk model with the given options.
// This is the main entry point for using mapdesk as a library.
func New(opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

// NewForPTY creates a mapdesk model sized to a PTY session. This is
// useful when embedding mapdesk in web terminals or SSH servers,
// where the session reports its terminal size up front instead of
// through a window-size message.
func NewForPTY(width, height int, opts ...Option) *Model {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = width
	options.Height = height
	return newModel(options)
}

func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:         options.ASCIIOnly,
		BorderStyle:       options.BorderStyle,
		DockPosition:      options.DockPosition,
		HideWindowButtons: options.HideWindowButtons,
		ThemeName:         options.Theme,
	}, userConfig)

	d := app.NewDesk()
	for _, cfg := range options.Panels {
		d.Registry.Register(cfg)
	}

	if options.Width > 0 && options.Height > 0 {
		d.Width = options.Width
		d.Height = options.Height
		d.Manager.SetViewport(options.Width, d.UsableHeight())
	}

	autostart := options.Autostart
	if autostart == nil {
		autostart = userConfig.Panels.Autostart
	}
	d.Autostart(autostart)

	return d
}

// ProgramOptions returns recommended tea.ProgramOption values for
// running mapdesk:
//
//	p := tea.NewProgram(model, mapdesk.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops mouse
// motion while the help overlay is open, where motion cannot affect
// the view. Motion passes through otherwise so drags track the pointer
// and the coordinate readout stays live.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*Model)
	if !ok {
		return msg
	}
	if d.ShowHelp && !d.Manager.SessionActive() {
		return nil
	}
	return msg
}

// Config re-exports configuration helpers so embedders don't need to
// import internal packages.
var Config = struct {
	LoadUserConfig func() (*config.UserConfig, error)
	DefaultConfig  func() *config.UserConfig
	GetConfigPath  func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}

// Themes re-exports theme helpers for embedders.
var Themes = struct {
	Initialize       func(name string) error
	GetThemesDir     func() (string, error)
	LoadCustomThemes func(dir string) ([]string, error)
}{
	Initialize:       theme.Initialize,
	GetThemesDir:     theme.GetThemesDir,
	LoadCustomThemes: theme.LoadCustomThemes,
}
