package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"dbgatewayapi/models"
	"dbgatewayapi/services/dberror"
)

// Registry maps engine kinds to connectors. It is the only place the gateway
// selects an implementation.
type Registry struct {
	mu         sync.RWMutex
	connectors map[models.EngineKind]Connector
}

// NewRegistry builds a registry holding the given connectors.
func NewRegistry(connectors ...Connector) *Registry {
	r := &Registry{connectors: make(map[models.EngineKind]Connector, len(connectors))}
	for _, c := range connectors {
		r.Register(c)
	}
	return r
}

// Register adds or replaces the connector for its kind.
func (r *Registry) Register(c Connector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectors[c.Kind()] = c
}

// Lookup returns the connector for kind or an UnsupportedEngine error.
func (r *Registry) Lookup(kind models.EngineKind) (Connector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.connectors[kind]
	if !ok {
		return nil, dberror.Newf(dberror.UnsupportedEngine, "database type %q is not supported", kind)
	}
	return c, nil
}

// Resolve parses a caller-supplied engine name and returns its connector.
// Nothing is opened, so an unknown name never reaches the network.
func (r *Registry) Resolve(name string) (Connector, error) {
	kind, ok := models.ParseEngineKind(name)
	if !ok {
		return nil, dberror.Newf(dberror.UnsupportedEngine, "database type %q is not supported (expected one of %s)",
			name, strings.Join(r.kindNames(), ", "))
	}
	return r.Lookup(kind)
}

// Kinds lists the registered kinds.
func (r *Registry) Kinds() []models.EngineKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]models.EngineKind, 0, len(r.connectors))
	for k := range r.connectors {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (r *Registry) kindNames() []string {
	kinds := r.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func (r *Registry) String() string {
	return fmt.Sprintf("engine.Registry%v", r.kindNames())
}
