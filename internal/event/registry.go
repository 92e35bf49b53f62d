package event

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/projeli/wiki-service/internal/errs"
)

type entry struct {
	target Target
	newFn  func() Payload
}

// Registry maps discriminators to payload constructors. It is immutable
// after construction and safe for concurrent use.
type Registry struct {
	entries map[Kind]entry
}

// NewRegistry builds a registry from the given variants. Duplicate kinds panic.
func NewRegistry(variants ...Variant) *Registry {
	r := &Registry{entries: make(map[Kind]entry, len(variants))}
	for _, v := range variants {
		k := v.New().Kind()
		if _, dup := r.entries[k]; dup {
			panic(fmt.Sprintf("event: duplicate kind %q", k))
		}
		r.entries[k] = entry{target: v.Target, newFn: v.New}
	}
	return r
}

// Variant describes one registered event kind.
type Variant struct {
	Target Target
	New    func() Payload
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(
		Variant{TargetWiki, func() Payload { return &WikiCreated{} }},
		Variant{TargetWiki, func() Payload { return &WikiUpdatedStatus{} }},
		Variant{TargetWiki, func() Payload { return &WikiUpdatedContent{} }},
		Variant{TargetWiki, func() Payload { return &WikiUpdatedSidebar{} }},
		Variant{TargetWiki, func() Payload { return &WikiUpdatedOwnership{} }},
		Variant{TargetWiki, func() Payload { return &WikiUpdatedProjectDetails{} }},
		Variant{TargetWiki, func() Payload { return &WikiUpdatedMembers{} }},
		Variant{TargetCategory, func() Payload { return &CategoryCreated{} }},
		Variant{TargetCategory, func() Payload { return &CategoryUpdated{} }},
		Variant{TargetCategory, func() Payload { return &CategoryUpdatedPages{} }},
		Variant{TargetCategory, func() Payload { return &CategoryDeleted{} }},
		Variant{TargetPage, func() Payload { return &PageCreated{} }},
		Variant{TargetPage, func() Payload { return &PageUpdatedDetails{} }},
		Variant{TargetPage, func() Payload { return &PageUpdatedContent{} }},
		Variant{TargetPage, func() Payload { return &PageUpdatedCategories{} }},
		Variant{TargetPage, func() Payload { return &PageUpdatedStatus{} }},
		Variant{TargetPage, func() Payload { return &PageDeleted{} }},
		Variant{TargetMember, func() Payload { return &MemberAdded{} }},
		Variant{TargetMember, func() Payload { return &MemberUpdatedPermissions{} }},
		Variant{TargetMember, func() Payload { return &MemberRemoved{} }},
	)
})

// Default returns the registry of every kind this service writes.
func Default() *Registry { return defaultRegistry() }

// Known reports whether kind is registered.
func (r *Registry) Known(kind Kind) bool {
	_, ok := r.entries[kind]
	return ok
}

// Target returns the entity group of kind.
func (r *Registry) Target(kind Kind) (Target, bool) {
	e, ok := r.entries[kind]
	return e.target, ok
}

// Kinds lists registered kinds in lexical order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Decode unmarshals a JSON payload of the given kind. Unregistered kinds
// return errs.ErrUnknownKind so readers can skip them.
func (r *Registry) Decode(kind Kind, data []byte) (Payload, error) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownKind, kind)
	}
	p := e.newFn()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return p, nil
}
