// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research computes linguistic signals from a paper. Researchers
// are registered under typed keys in a Registry; a Researcher runs them
// lazily against one paper and memoizes each result until the paper
// changes.
package research

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/pdiddy/content-analysis/internal/language"
	"github.com/pdiddy/content-analysis/pkg/types"
)

// Name identifies a researcher.
type Name string

// Key binds a researcher name to the type of its result.
type Key[T any] struct {
	name Name
}

// NewKey returns a key for a researcher producing T.
func NewKey[T any](name Name) Key[T] {
	return Key[T]{name: name}
}

// Name returns the researcher name.
func (k Key[T]) Name() Name {
	return k.name
}

// Func computes one research result. It may request other research
// through r.
type Func[T any] func(r *Researcher) (T, error)

type researchFunc func(r *Researcher) (any, error)

// ErrCycle is wrapped when researchers depend on each other in a loop.
var ErrCycle = errors.New("research dependency cycle")

// UnknownResearcherError is returned when research is requested under a
// name that was never registered.
type UnknownResearcherError struct {
	Name Name
}

func (e *UnknownResearcherError) Error() string {
	return fmt.Sprintf("unknown researcher %q", e.Name)
}

// Registry maps researcher names to functions. Registration and lookup are
// safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	fns map[Name]researchFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[Name]researchFunc)}
}

// Register adds fn under key. It fails for a nil function, an empty name or
// a name that is already registered.
func Register[T any](reg *Registry, key Key[T], fn Func[T]) error {
	if key.name == "" {
		return fmt.Errorf("registering researcher: empty name")
	}
	if fn == nil {
		return fmt.Errorf("registering researcher %q: nil function", key.name)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.fns[key.name]; ok {
		return fmt.Errorf("registering researcher %q: already registered", key.name)
	}
	reg.fns[key.name] = func(r *Researcher) (any, error) {
		return fn(r)
	}
	return nil
}

// Has reports whether name is registered.
func (reg *Registry) Has(name Name) bool {
	_, ok := reg.lookup(name)
	return ok
}

// Names returns the registered names, sorted.
func (reg *Registry) Names() []Name {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Name, 0, len(reg.fns))
	for n := range reg.fns {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (reg *Registry) lookup(name Name) (researchFunc, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	fn, ok := reg.fns[name]
	return fn, ok
}

// Researcher runs registered research against one paper. Results are
// cached per paper instance. A Researcher is not safe for concurrent use;
// create one per paper.
type Researcher struct {
	registry *Registry
	paper    *types.Paper
	lang     *language.Config
	links    map[string]string

	memo   map[Name]any
	active map[Name]bool
}

// Option configures a Researcher.
type Option func(*Researcher)

// WithLinks sets the shortlink data assessments read through Links.
func WithLinks(links map[string]string) Option {
	return func(r *Researcher) {
		r.links = make(map[string]string, len(links))
		for k, v := range links {
			r.links[k] = v
		}
	}
}

// New returns a Researcher for paper.
func New(reg *Registry, paper *types.Paper, opts ...Option) *Researcher {
	r := &Researcher{registry: reg, links: map[string]string{}}
	for _, o := range opts {
		o(r)
	}
	r.SetPaper(paper)
	return r
}

// SetPaper switches the researcher to paper. Any paper other than the
// current instance drops every cached result, even if its content is equal.
func (r *Researcher) SetPaper(paper *types.Paper) {
	if paper == nil {
		paper = types.NewPaper("", types.PaperAttributes{})
	}
	if r.paper == paper {
		return
	}
	r.paper = paper
	r.lang = language.Lookup(paper.Locale())
	r.memo = make(map[Name]any)
	r.active = make(map[Name]bool)
}

// Paper returns the current paper.
func (r *Researcher) Paper() *types.Paper {
	return r.paper
}

// Language returns the language config for the paper's locale.
func (r *Researcher) Language() *language.Config {
	return r.lang
}

// Links returns the shortlink URLs keyed by link name. Callers must not
// modify the map.
func (r *Researcher) Links() map[string]string {
	return r.links
}

// Has reports whether research under name can be requested.
func (r *Researcher) Has(name Name) bool {
	return r.registry.Has(name)
}

// Get returns the research result for key, computing it on first request.
func Get[T any](r *Researcher, key Key[T]) (T, error) {
	var zero T
	v, err := r.get(key.name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("research %q: result is %T, want %T", key.name, v, zero)
	}
	return t, nil
}

func (r *Researcher) get(name Name) (any, error) {
	if v, ok := r.memo[name]; ok {
		return v, nil
	}
	fn, ok := r.registry.lookup(name)
	if !ok {
		return nil, &UnknownResearcherError{Name: name}
	}
	if r.active[name] {
		return nil, fmt.Errorf("research %q: %w", name, ErrCycle)
	}

	r.active[name] = true
	defer delete(r.active, name)

	v, err := fn(r)
	if err != nil {
		return nil, fmt.Errorf("research %q: %w", name, err)
	}
	r.memo[name] = v
	return v, nil
}
