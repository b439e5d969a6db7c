package completion

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/teranos/fluxar-ls/logger"
	"go.uber.org/zap"
)

// Disposable releases a resource acquired from the registry.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable.
type DisposeFunc func()

func (f DisposeFunc) Dispose() { f() }

type registration struct {
	id                uint64
	languageID        string
	provider          Provider
	triggerCharacters []string
}

// Registry keeps the completion providers registered per language.
// It is safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	nextID        uint64
	registrations []*registration
	logger        *zap.SugaredLogger
}

// NewRegistry creates an empty registry
func NewRegistry(log *zap.SugaredLogger) *Registry {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Registry{logger: log}
}

// Register adds a provider for languageID. The provider is consulted on every
// plain completion request and, when typed, on each of triggerCharacters.
// Disposing the returned handle removes the provider; repeat calls are no-ops.
func (r *Registry) Register(languageID string, provider Provider, triggerCharacters ...string) Disposable {
	r.mu.Lock()
	r.nextID++
	reg := &registration{
		id:                r.nextID,
		languageID:        languageID,
		provider:          provider,
		triggerCharacters: lo.Uniq(triggerCharacters),
	}
	r.registrations = append(r.registrations, reg)
	r.mu.Unlock()

	r.logger.Debugw("Completion provider registered",
		logger.FieldLanguage, languageID,
		"id", reg.id,
		"trigger_characters", reg.triggerCharacters,
	)

	var once sync.Once
	return DisposeFunc(func() {
		once.Do(func() { r.remove(reg.id) })
	})
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registrations = lo.Reject(r.registrations, func(reg *registration, _ int) bool {
		return reg.id == id
	})
	r.logger.Debugw("Completion provider disposed", "id", id, "remaining", len(r.registrations))
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrations)
}

// Providers returns, in registration order, the providers to consult for a
// request. With a trigger character only providers registered for it match.
func (r *Registry) Providers(languageID, triggerCharacter string) []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := lo.Filter(r.registrations, func(reg *registration, _ int) bool {
		if reg.languageID != languageID {
			return false
		}
		return triggerCharacter == "" || lo.Contains(reg.triggerCharacters, triggerCharacter)
	})
	return lo.Map(matched, func(reg *registration, _ int) Provider {
		return reg.provider
	})
}

// TriggerCharacters returns every registered trigger character, sorted.
func (r *Registry) TriggerCharacters() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chars := lo.Uniq(lo.FlatMap(r.registrations, func(reg *registration, _ int) []string {
		return reg.triggerCharacters
	}))
	sort.Strings(chars)
	return chars
}

// Complete asks each matching provider and concatenates their suggestions.
// It reports false only when no provider had anything to offer.
func (r *Registry) Complete(ctx context.Context, req Request) ([]Suggestion, bool) {
	var (
		items []Suggestion
		found bool
	)
	for _, p := range r.Providers(req.LanguageID, req.TriggerCharacter) {
		got, ok := p.Provide(ctx, req)
		if !ok {
			continue
		}
		found = true
		items = append(items, got...)
	}
	return items, found
}
