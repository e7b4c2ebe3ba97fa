// Package demo provides the catalog and runner for failure-mode
// demonstrations. Each demo is an independent leaf: it provokes exactly one
// failure and returns the resulting error for classification.
package demo

import (
	"context"
	"sort"
	"sync"

	"github.com/faultbook/faultbook"
)

// Demo is a single self-contained failure demonstration.
type Demo struct {
	// Name uniquely identifies the demo within a registry.
	Name string
	// Topic groups related demos (e.g. "network", "collections").
	Topic string
	// Synopsis is a one-line description of what the demo provokes.
	Synopsis string
	// Expect is the failure class the demo is built to produce.
	Expect faultbook.Class
	// Run provokes the failure and returns it. Panics are trapped by the
	// runner, so a Run that panics still yields a classifiable error.
	Run func(ctx context.Context) error
}

func (d Demo) validate() error {
	if d.Name == "" {
		return faultbook.New("demo must have a name", faultbook.ClassValidation)
	}
	if d.Run == nil {
		return faultbook.New("demo must have a run function",
			faultbook.ClassValidation, "name", d.Name)
	}
	return nil
}

// Registry is an ordered, name-unique catalog of demos.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Demo
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Demo)}
}

// Register adds a demo to the registry. Registering a duplicate name is a
// conflict.
func (r *Registry) Register(d Demo) error {
	if err := d.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[d.Name]; ok {
		return faultbook.New("demo already registered",
			faultbook.ClassAlreadyExists, "name", d.Name)
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// MustRegister adds a demo and panics on conflict. Meant for package-level
// catalog assembly where a duplicate is a programming error.
func (r *Registry) MustRegister(d Demo) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Get returns the demo with the given name or a not_found fault.
func (r *Registry) Get(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	if !ok {
		return Demo{}, faultbook.NotFoundError.New("demo", "name", name)
	}
	return d, nil
}

// All returns every registered demo in registration order.
func (r *Registry) All() []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	demos := make([]Demo, 0, len(r.order))
	for _, name := range r.order {
		demos = append(demos, r.byName[name])
	}
	return demos
}

// ByTopic returns the demos of one topic in registration order.
func (r *Registry) ByTopic(topic string) []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var demos []Demo
	for _, name := range r.order {
		if d := r.byName[name]; d.Topic == topic {
			demos = append(demos, d)
		}
	}
	return demos
}

// Topics returns the sorted set of topics present in the registry.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var topics []string
	for _, name := range r.order {
		topic := r.byName[name].Topic
		if topic != "" && !seen[topic] {
			seen[topic] = true
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

// Len returns the number of registered demos.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
