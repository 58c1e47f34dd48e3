package config

import "sync"

// Provider holds a single lazily-constructed Settings instance. It is the
// injectable replacement for a hidden module-level singleton: consumers that
// want isolation construct their own Provider, while the package-level
// helpers below share one process-wide instance.
type Provider struct {
	mu      sync.Mutex
	current *Settings
}

// NewProvider returns an empty Provider. The first Get builds the settings.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the held Settings instance, building it from the environment on
// first use. With reload set, a fresh instance is always built. Construction
// failure leaves the previously held instance (if any) in place and is
// returned to the caller. A successful build exports the resolved hub values
// into the process environment.
func (p *Provider) Get(reload bool) (*Settings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && !reload {
		return p.current, nil
	}

	s, err := New()
	if err != nil {
		return nil, err
	}
	if err := s.ExportEnv(); err != nil {
		return nil, err
	}

	p.current = s
	return p.current, nil
}

// Reload discards any held instance and builds a new one.
func (p *Provider) Reload() (*Settings, error) {
	return p.Get(true)
}

// The process-wide provider backing GetSettings.
var defaultProvider = NewProvider()

// GetSettings returns the process-wide settings instance, building it on
// first use. With reload set the instance is rebuilt from the current
// environment.
func GetSettings(reload bool) (*Settings, error) {
	return defaultProvider.Get(reload)
}

// LoadSettingsFromEnv rebuilds the process-wide settings from the current
// environment.
func LoadSettingsFromEnv() (*Settings, error) {
	return defaultProvider.Reload()
}
