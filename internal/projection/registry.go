package projection

import (
	"sort"
	"sync"
)

// Bundle is a registry entry: the defaults and constructors needed to
// assemble a working pipeline for one projection family.
type Bundle struct {
	Defaults       Config
	NewStrategy    func(Config) (Strategy, error)
	NewGrids       func(Config) (GridGenerator, error)
	NewTransformer func(Config) (Transformer, error)
}

func (b Bundle) complete() bool {
	return b.NewStrategy != nil && b.NewGrids != nil && b.NewTransformer != nil
}

// Registry is the catalog of available projections. It is an explicit
// value handed to whoever needs lookup; nothing registers itself as an
// import side effect. Registration is single-writer; lookups run
// concurrently without blocking each other.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Bundle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Bundle)}
}

// NewDefaultRegistry returns a registry with the five built-in families
// registered: gnomonic, stereographic, azimuthal-equidistant, mercator,
// and oblique-mercator.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// Built-in bundles are complete; Register cannot fail on a fresh map.
	_ = r.Register("gnomonic", GnomonicBundle(), false)
	_ = r.Register("stereographic", StereographicBundle(), false)
	_ = r.Register("azimuthal-equidistant", AzimuthalEquidistantBundle(), false)
	_ = r.Register("mercator", MercatorBundle(), false)
	_ = r.Register("oblique-mercator", ObliqueMercatorBundle(), false)
	return r
}

// Register adds a bundle under name. It fails with a registration error if
// the bundle is missing a component, or if name is taken and overwrite is
// false.
func (r *Registry) Register(name string, b Bundle, overwrite bool) error {
	if name == "" {
		return registrationErr(name, "empty projection name")
	}
	if !b.complete() {
		return registrationErr(name, "bundle is missing a component constructor")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists && !overwrite {
		return registrationErr(name, "already registered")
	}
	r.entries[name] = b
	return nil
}

// Resolve looks up name and returns its validated configuration (defaults
// plus opts) together with the bundle. An unknown name is a registration
// error.
func (r *Registry) Resolve(name string, opts ...Option) (Config, Bundle, error) {
	r.mu.RLock()
	b, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return Config{}, Bundle{}, registrationErr(name, "unknown projection")
	}

	cfg := b.Defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, Bundle{}, err
	}
	return cfg, b, nil
}

// Build resolves name and returns a ready Processor.
func (r *Registry) Build(name string, opts ...Option) (*Processor, error) {
	cfg, b, err := r.Resolve(name, opts...)
	if err != nil {
		return nil, err
	}
	return NewProcessor(cfg, b)
}

// Projections lists the registered names, sorted.
func (r *Registry) Projections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
