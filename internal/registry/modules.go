// Package registry holds the live sets that dynamic command parameters
// choose from: registered modules and connected actors.
package registry

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vane-tools/vanectl/internal/command"
)

// Module is a named subsystem that owns commands.
type Module struct {
	name        string
	description string

	mu       sync.RWMutex
	enabled  bool
	reloads  int
	loadedAt time.Time
}

func (m *Module) Name() string        { return m.name }
func (m *Module) Description() string { return m.description }

// Enabled reports whether the module's commands may run.
func (m *Module) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// SetEnabled switches the module on or off and reports whether the state
// changed.
func (m *Module) SetEnabled(enabled bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	changed := m.enabled != enabled
	m.enabled = enabled
	return changed
}

// Reload marks the module as freshly loaded.
func (m *Module) Reload(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reloads++
	m.loadedAt = now
}

// Reloads returns how many times Reload was called.
func (m *Module) Reloads() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reloads
}

// LoadedAt returns when the module was registered or last reloaded.
func (m *Module) LoadedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadedAt
}

// ModuleName renders a module for choices and usage.
func ModuleName(m *Module) string { return m.name }

// Modules is a concurrency-safe registry of modules. Lookup ignores case.
type Modules struct {
	mu     sync.RWMutex
	order  []*Module
	byName map[string]*Module
	now    func() time.Time
}

// NewModules returns an empty registry.
func NewModules() *Modules {
	return &Modules{byName: make(map[string]*Module), now: time.Now}
}

// Register adds an enabled module. Names are unique regardless of case.
func (r *Modules) Register(name, description string) (*Module, error) {
	key := strings.ToLower(name)
	if key == "" {
		return nil, fmt.Errorf("registry: empty module name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[key]; ok {
		return nil, fmt.Errorf("registry: module %q already registered as %q", name, existing.name)
	}

	m := &Module{name: name, description: description, enabled: true, loadedAt: r.now()}
	r.byName[key] = m
	r.order = append(r.order, m)
	return m, nil
}

// MustRegister is Register for static setup; it panics on error.
func (r *Modules) MustRegister(name, description string) *Module {
	m, err := r.Register(name, description)
	if err != nil {
		panic(err)
	}
	return m
}

// Candidates returns the modules in registration order.
func (r *Modules) Candidates() []*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Module, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup finds a module by name, ignoring case.
func (r *Modules) Lookup(name string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[strings.ToLower(name)]
	return m, ok
}

// Reload reloads m using the registry clock.
func (r *Modules) Reload(m *Module) {
	m.Reload(r.now())
}

var (
	_ command.Source[*Module] = (*Modules)(nil)
	_ command.Module          = (*Module)(nil)
)
