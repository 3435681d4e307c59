package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type Style struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ThumbnailURL   string   `json:"thumbnail_url"`
	Category       string   `json:"category"`
	RecommendedFor string   `json:"recommended_for"`
	Tags           []string `json:"tags"`
}

type CreditPackage struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   int    `json:"price"`
	Credits int    `json:"credits"`
	Tag     string `json:"tag,omitempty"`
}

type CatalogFile struct {
	Styles   []Style         `json:"styles"`
	Packages []CreditPackage `json:"packages"`
}

// Registry holds the art-style and credit-package catalog. The built-in set
// ships compiled in; an optional JSON file replaces it wholesale.
type Registry struct {
	mu       sync.RWMutex
	styles   map[string]*Style
	order    []string
	packages map[string]*CreditPackage
	pkgOrder []string
}

func NewRegistry() *Registry {
	r := &Registry{
		styles:   make(map[string]*Style),
		packages: make(map[string]*CreditPackage),
	}
	for i := range defaultStyles {
		r.registerStyle(&defaultStyles[i])
	}
	for i := range defaultPackages {
		r.registerPackage(&defaultPackages[i])
	}
	return r
}

// LoadFromFile builds a registry from a catalog override file.
func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	r := &Registry{
		styles:   make(map[string]*Style),
		packages: make(map[string]*CreditPackage),
	}
	for i := range file.Styles {
		r.registerStyle(&file.Styles[i])
	}
	for i := range file.Packages {
		r.registerPackage(&file.Packages[i])
	}
	return r, nil
}

func (r *Registry) registerStyle(s *Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.styles[s.ID]; !ok {
		r.order = append(r.order, s.ID)
	}
	r.styles[s.ID] = s
}

func (r *Registry) registerPackage(p *CreditPackage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.packages[p.ID]; !ok {
		r.pkgOrder = append(r.pkgOrder, p.ID)
	}
	r.packages[p.ID] = p
}

func (r *Registry) Style(id string) *Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.styles[id]
}

func (r *Registry) StyleExists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[id]
	return ok
}

func (r *Registry) Styles() []*Style {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*Style, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.styles[id])
	}
	return result
}

func (r *Registry) Package(id string) *CreditPackage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.packages[id]
}

func (r *Registry) Packages() []*CreditPackage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*CreditPackage, 0, len(r.pkgOrder))
	for _, id := range r.pkgOrder {
		result = append(result, r.packages[id])
	}
	return result
}
