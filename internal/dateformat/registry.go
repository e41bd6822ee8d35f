package dateformat

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"formatd/internal/iso8601"
)

// Entry is a registered rule together with its key.
type Entry struct {
	Key  string
	Rule Rule
}

// Registry maps format keys to rules. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// NewDefaultRegistry creates a registry holding the built-in named formats.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for key, rule := range DefaultRules() {
		r.rules[key] = rule
	}
	return r
}

// Register stores rule under key, replacing any rule already registered there.
func (r *Registry) Register(key string, rule Rule) error {
	if key == "" {
		return ErrEmptyKey
	}
	if rule == nil {
		return ErrNilRule
	}

	r.mu.Lock()
	r.rules[key] = rule
	r.mu.Unlock()
	return nil
}

// Lookup returns the rule registered under key, if any.
func (r *Registry) Lookup(key string) (Rule, bool) {
	r.mu.RLock()
	rule, ok := r.rules[key]
	r.mu.RUnlock()
	return rule, ok
}

// Format renders t with the rule registered under key.
func (r *Registry) Format(t time.Time, key string) (string, error) {
	rule, ok := r.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormatKey, key)
	}
	if t.IsZero() {
		return "", fmt.Errorf("%w: zero time", ErrInvalidValue)
	}
	return rule.Render(t), nil
}

// FormatString parses raw as an ISO-8601 timestamp and renders it with the
// rule registered under key.
func (r *Registry) FormatString(raw, key string) (string, error) {
	if _, ok := r.Lookup(key); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormatKey, key)
	}
	t, err := iso8601.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return r.Format(t, key)
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Keys returns all registered keys in lexicographic order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.rules))
	for k := range r.rules {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Entries returns a snapshot of all registered rules ordered by key.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	items := make([]Entry, 0, len(r.rules))
	for k, rule := range r.rules {
		items = append(items, Entry{Key: k, Rule: rule})
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}
