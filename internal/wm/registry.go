package wm

// ContentProvider supplies the body of a window. The manager never
// inspects the returned content; it only manages the surrounding frame.
type ContentProvider interface {
	Render(width, height int) string
}

// ProviderFunc adapts a plain function to a ContentProvider.
type ProviderFunc func(width, height int) string

// Render calls f.
func (f ProviderFunc) Render(width, height int) string { return f(width, height) }

// WindowConfig describes a registered window kind. Configs are treated
// as immutable after registration.
type WindowConfig struct {
	// ID uniquely identifies the kind within the registry.
	ID string

	// Title is the default window title.
	Title string

	// Provider renders the window body. May be nil for windows whose
	// content is supplied by the embedding application.
	Provider ContentProvider

	// DefaultGeometry is the initial floating rectangle. A zero value
	// falls back to the manager's default origin and size.
	DefaultGeometry Rect

	// Persistent marks kinds whose content survives close/reopen.
	// Informational only; the manager does not act on it.
	Persistent bool

	// AllowMultiple permits several simultaneous instances of the kind.
	AllowMultiple bool

	// Resizable and Movable gate the corresponding interactions.
	Resizable bool
	Movable   bool
}

// Registry is the static catalog of window kinds, populated once at
// startup. Registration is idempotent by id.
type Registry struct {
	configs map[string]WindowConfig
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]WindowConfig)}
}

// Register adds or replaces a catalog entry. Re-registering an id keeps
// its original position in Registered order.
func (r *Registry) Register(cfg WindowConfig) {
	if cfg.ID == "" {
		return
	}
	if _, exists := r.configs[cfg.ID]; !exists {
		r.order = append(r.order, cfg.ID)
	}
	r.configs[cfg.ID] = cfg
}

// Lookup returns the config registered under id.
func (r *Registry) Lookup(id string) (WindowConfig, bool) {
	cfg, ok := r.configs[id]
	return cfg, ok
}

// Registered returns all configs in registration order.
func (r *Registry) Registered() []WindowConfig {
	out := make([]WindowConfig, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.configs[id])
	}
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int { return len(r.order) }
