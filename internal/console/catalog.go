package console

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-richparams/pkg/parameter"
)

// Catalog maps template ids to their variable schemas.
type Catalog struct {
	mu        sync.RWMutex
	templates map[uuid.UUID][]parameter.Schema
}

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{templates: make(map[uuid.UUID][]parameter.Schema)}
}

// Put stores a copy of variables under id, replacing any previous entry.
func (c *Catalog) Put(id uuid.UUID, variables []parameter.Schema) {
	clone := make([]parameter.Schema, len(variables))
	copy(clone, variables)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.templates[id] = clone
}

// Get returns a copy of the variables stored under id.
func (c *Catalog) Get(id uuid.UUID) ([]parameter.Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	variables, ok := c.templates[id]
	if !ok {
		return nil, false
	}
	clone := make([]parameter.Schema, len(variables))
	copy(clone, variables)
	return clone, true
}

// IDs returns the stored template ids in lexical order.
func (c *Catalog) IDs() []uuid.UUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}
