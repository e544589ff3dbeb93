package courier

import (
	"sort"
	"sync"

	"github.com/BearBump/DispatchBox/internal/errs"
)

// Decorator wraps an adapter (retry, idempotency, ...).
type Decorator func(Adapter) Adapter

// Vendor is a registered adapter together with its optional capabilities, which are
// detected on the undecorated adapter.
type Vendor struct {
	Adapter   Adapter
	Locations LocationSource
	Tracker   Tracker
}

type Registry struct {
	mu      sync.RWMutex
	vendors map[string]Vendor
}

func NewRegistry() *Registry {
	return &Registry{vendors: make(map[string]Vendor)}
}

// Register adds a vendor under a.Code(). Decorators are applied in order, so the last one
// is the outermost.
func (r *Registry) Register(a Adapter, decorators ...Decorator) {
	v := Vendor{Adapter: a}
	if ls, ok := a.(LocationSource); ok {
		v.Locations = ls
	}
	if tr, ok := a.(Tracker); ok {
		v.Tracker = tr
	}
	for _, d := range decorators {
		v.Adapter = d(v.Adapter)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.vendors[a.Code()] = v
}

func (r *Registry) Get(code string) (Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vendors[code]
	if !ok {
		return Vendor{}, errs.Validationf("courier registry", "unknown courier vendor %q", code)
	}
	return v, nil
}

func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.vendors))
	for code := range r.vendors {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
