package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry stores validated agent definitions with thread-safe access.
// Reload swaps the whole map atomically so readers never see a partial
// registry.
type Registry struct {
	dir    string
	mu     sync.RWMutex
	agents map[string]*AgentDefinition
}

// LoadRegistry reads every *.yaml / *.yml file under dir, validates
// each definition, and returns the registry. Any invalid file fails
// the whole load.
func LoadRegistry(dir string) (*Registry, error) {
	r := &Registry{dir: dir}
	agents, err := loadDefinitions(dir)
	if err != nil {
		return nil, err
	}
	r.agents = agents

	slog.Info("Loaded agent registry",
		slog.String("dir", dir),
		slog.Int("agents", len(agents)))
	return r, nil
}

// Reload re-reads the definition directory. On any error the existing
// registry is left untouched.
func (r *Registry) Reload() error {
	agents, err := loadDefinitions(r.dir)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.agents = agents
	r.mu.Unlock()
	return nil
}

func loadDefinitions(dir string) (map[string]*AgentDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, dir)
	}

	agents := make(map[string]*AgentDefinition)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var def AgentDefinition
		if err := yaml.Unmarshal(raw, &def); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, dup := agents[def.Name]; dup {
			return nil, &ValidationError{Component: "agent", ID: def.Name,
				Err: fmt.Errorf("%w: duplicate agent name", ErrInvalidValue)}
		}
		agents[def.Name] = &def
	}
	return agents, nil
}

// Get retrieves an agent definition by name (thread-safe)
func (r *Registry) Get(name string) (*AgentDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return def, nil
}

// List returns all definitions sorted by name.
func (r *Registry) List() []*AgentDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*AgentDefinition, 0, len(r.agents))
	for _, def := range r.agents {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FilterByType returns definitions of the given type, sorted by name.
func (r *Registry) FilterByType(t AgentType) []*AgentDefinition {
	var out []*AgentDefinition
	for _, def := range r.List() {
		if def.Type == t {
			out = append(out, def)
		}
	}
	return out
}

// Size reports how many agents are registered. The supervisor uses it
// as the default slot count.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}

// WorkerAgent is a configured handle for one dispatchable agent. The
// caller supplies the LLM transport; the handle carries identity and
// definition only.
type WorkerAgent struct {
	ID         string
	Definition *AgentDefinition
}

// CreateAgent returns a worker handle for the named definition.
func (r *Registry) CreateAgent(name, id string) (*WorkerAgent, error) {
	def, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return &WorkerAgent{ID: id, Definition: def}, nil
}
