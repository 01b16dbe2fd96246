package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ekisa-team/sdkpath/applesdk"
	"github.com/ekisa-team/sdkpath/internal/command"
	"github.com/ekisa-team/sdkpath/internal/config"
	"github.com/ekisa-team/sdkpath/sdkpath"
)

const defaultConcurrency = 4

// Resolver is the subset of *sdkpath.Resolver the manager uses.
type Resolver interface {
	FromPlatform(platform applesdk.Platform) (sdkpath.SdkPath, error)
	FromName(name string) (sdkpath.SdkPath, error)
	FromPath(path string) (sdkpath.SdkPath, error)
	FromXcrun(ctx context.Context, sdk string) (sdkpath.SdkPath, error)
}

// Manager resolves the SDK entries of a config into a registry.
type Manager struct {
	registry    *Registry
	newResolver func(*config.Config) (Resolver, error)
	concurrency int
	mu          sync.RWMutex
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithResolver makes the manager use r for every config instead of building one.
func WithResolver(r Resolver) ManagerOption {
	return func(m *Manager) {
		m.newResolver = func(*config.Config) (Resolver, error) {
			return r, nil
		}
	}
}

// WithConcurrency bounds how many entries are resolved at once.
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// NewManager creates a Manager with an empty registry.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		registry:    NewRegistry(),
		newResolver: ResolverFromConfig,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// ResolverFromConfig builds a resolver honoring the developer and xcrun settings of cfg.
func ResolverFromConfig(cfg *config.Config) (Resolver, error) {
	timeout, err := cfg.XcrunTimeout()
	if err != nil {
		return nil, err
	}

	var searchOpts []applesdk.Option
	if dirs := cfg.DeveloperDirs(); dirs != nil {
		searchOpts = append(searchOpts, applesdk.WithDeveloperDirs(dirs...))
	}

	return sdkpath.NewResolver(
		sdkpath.WithSearcher(sdkpath.DiscoverySearcher(applesdk.NewSearch(searchOpts...))),
		sdkpath.WithXcrun(command.NewExecutor(cfg.XcrunPath(), timeout)),
	), nil
}

// Registry returns the current registry.
func (m *Manager) Registry() *Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// LoadFromConfig resolves every SDK entry of cfg and swaps in the new registry.
// On failure the previous registry is kept and the first error is returned.
func (m *Manager) LoadFromConfig(ctx context.Context, cfg *config.Config) error {
	resolver, err := m.newResolver(cfg)
	if err != nil {
		return fmt.Errorf("failed to build resolver: %w", err)
	}

	next := NewRegistry()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for name, sdkConfig := range cfg.SDKs {
		name, sdkConfig := name, sdkConfig // per-iteration copies (go < 1.22 loop semantics)
		g.Go(func() error {
			entry, err := resolveEntry(ctx, resolver, name, sdkConfig)
			if err != nil {
				return fmt.Errorf("failed to resolve sdk %s: %w", name, err)
			}

			next.Set(entry)
			slog.Info("SDK resolved", "sdk", name, "source", entry.Source, "path", entry.Path.Path())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m.mu.Lock()
	previous := m.registry
	m.registry = next
	m.mu.Unlock()

	for _, entry := range previous.List() {
		if _, ok := next.Get(entry.Name); !ok {
			slog.Info("SDK removed from registry", "sdk", entry.Name)
		}
	}

	return nil
}

// resolveEntry resolves a single config entry with the strategy its source selects.
func resolveEntry(ctx context.Context, resolver Resolver, name string, sdkConfig config.SDKConfig) (*Entry, error) {
	kind, value, err := sdkConfig.GetSource()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var path sdkpath.SdkPath
	switch kind {
	case config.SourceTypePlatform:
		path, err = resolver.FromPlatform(applesdk.Platform(value))
	case config.SourceTypeName:
		path, err = resolver.FromName(value)
	case config.SourceTypePath:
		path, err = resolver.FromPath(value)
	case config.SourceTypeXcrun:
		path, err = resolver.FromXcrun(ctx, value)
	default:
		return nil, fmt.Errorf("unsupported source type %q", kind)
	}
	if err != nil {
		return nil, err
	}

	return &Entry{
		Name:   name,
		Source: kind,
		Value:  value,
		Path:   path,
	}, nil
}
