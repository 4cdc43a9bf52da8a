package scripting

import (
	"reflect"
	"slices"
	"sync/atomic"

	"github.com/zeusync/scripthost/internal/core/observability/log"
)

// Script is the part every behavior module shares regardless of kind.
type Script interface {
	Name() string
}

// Releaser is implemented by scripts that hold resources. Release is called
// exactly once, when the owning registry is torn down.
type Releaser interface {
	Release()
}

// Resolver maps a declared script name to the id content rows refer to.
type Resolver interface {
	ResolveID(name string) (uint32, bool)
}

// NameLister is implemented by resolvers that can enumerate every name they
// know. Those names seed the unresolved-name audit.
type NameLister interface {
	Names() []string
}

// environment is the state all registries of one Context share.
type environment struct {
	resolver   Resolver
	unresolved map[string]struct{}
	count      atomic.Uint32
	sealed     atomic.Bool
	log        log.Log
}

type registerOptions struct {
	skipOwnership bool
}

// RegisterOption tunes a single Register call.
type RegisterOption func(*registerOptions)

// WithoutOwnership indexes the script without making this registry its owner.
// The script must be owned, and released, by another registry.
func WithoutOwnership() RegisterOption {
	return func(o *registerOptions) { o.skipOwnership = true }
}

// Registry owns every script of one kind.
//
// Registries are written only while the Context is unsealed, which happens on
// a single goroutine during startup. Once sealed they are read without locks.
type Registry[T Script] struct {
	kind Kind
	mode IdentityMode
	env  *environment

	byID    map[uint32]T
	indexed []T
	ids     []uint32
	owned   []T
	next    uint32
}

func newRegistry[T Script](kind Kind, env *environment) *Registry[T] {
	return &Registry[T]{
		kind: kind,
		mode: kind.Mode(),
		env:  env,
		byID: make(map[uint32]T),
	}
}

func (r *Registry[T]) Kind() Kind         { return r.kind }
func (r *Registry[T]) Mode() IdentityMode { return r.mode }

// Register adds obj to the registry.
//
// An instance already present is dropped with an error log. A name-bound
// script whose name has no id is kept for teardown but never dispatched. A
// name-bound script whose id is already taken aborts the process.
func (r *Registry[T]) Register(obj T, opts ...RegisterOption) error {
	logger := r.env.log
	if isNilScript(obj) {
		logger.Error("nil script registered", log.String("kind", r.kind.String()))
		return ErrNilScript
	}
	if r.env.sealed.Load() {
		logger.Error("script registered after startup",
			log.String("kind", r.kind.String()),
			log.String("script", obj.Name()),
		)
		return ErrRegistrySealed
	}
	if prev, found := r.findInstance(obj); found {
		logger.Error("script has same memory pointer as another script",
			log.String("kind", r.kind.String()),
			log.String("script", obj.Name()),
			log.String("existing", prev.Name()),
		)
		return ErrAliasedScript
	}

	var o registerOptions
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	switch r.mode {
	case NameBound:
		err = r.addNameBound(obj)
	default:
		r.insert(r.next, obj)
		r.next++
	}

	if !o.skipOwnership {
		r.owned = append(r.owned, obj)
	}
	return err
}

func (r *Registry[T]) addNameBound(obj T) error {
	name := obj.Name()
	id, ok := r.env.resolver.ResolveID(name)
	if !ok {
		r.env.log.Error("script does not have a script name assigned in the directory",
			log.String("kind", r.kind.String()),
			log.String("script", name),
		)
		return ErrNameNotBound
	}
	if existing, taken := r.byID[id]; taken {
		r.env.log.Fatal("script already assigned with the same script name, so the script can't work",
			log.String("kind", r.kind.String()),
			log.String("script", name),
			log.String("existing", existing.Name()),
			log.Uint32("id", id),
		)
		return ErrDuplicateName
	}
	r.insert(id, obj)
	delete(r.env.unresolved, name)
	return nil
}

func (r *Registry[T]) insert(id uint32, obj T) {
	r.byID[id] = obj
	r.indexed = append(r.indexed, obj)
	r.ids = append(r.ids, id)
	r.env.count.Add(1)
}

func (r *Registry[T]) findInstance(obj T) (T, bool) {
	for _, s := range r.owned {
		if sameInstance(s, obj) {
			return s, true
		}
	}
	for _, s := range r.indexed {
		if sameInstance(s, obj) {
			return s, true
		}
	}
	var zero T
	return zero, false
}

// Lookup returns the script bound to id. A miss is a normal outcome.
func (r *Registry[T]) Lookup(id uint32) (T, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Each calls fn for every indexed script in registration order.
func (r *Registry[T]) Each(fn func(T)) {
	for _, s := range r.indexed {
		fn(s)
	}
}

// EachWithID is Each with the id the script is indexed under.
func (r *Registry[T]) EachWithID(fn func(id uint32, s T)) {
	for i, s := range r.indexed {
		fn(r.ids[i], s)
	}
}

// IDs returns the indexed ids in registration order.
func (r *Registry[T]) IDs() []uint32 { return slices.Clone(r.ids) }

// Len is the number of indexed scripts.
func (r *Registry[T]) Len() int { return len(r.indexed) }

// Owned is the number of scripts this registry releases at teardown.
func (r *Registry[T]) Owned() int { return len(r.owned) }

// TeardownAll releases every owned script once and empties the registry.
// Calling it again is a no-op.
func (r *Registry[T]) TeardownAll() {
	for _, s := range r.owned {
		if rel, ok := any(s).(Releaser); ok {
			rel.Release()
		}
	}
	r.owned = nil
	r.indexed = nil
	r.ids = nil
	clear(r.byID)
}

func (r *Registry[T]) bindings() []binding {
	out := make([]binding, len(r.indexed))
	for i, s := range r.indexed {
		out[i] = binding{kind: r.kind, id: r.ids[i], name: s.Name()}
	}
	return out
}

type binding struct {
	kind Kind
	id   uint32
	name string
}

func isNilScript(s any) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// sameInstance reports whether a and b point at the same object. Values that
// are not pointers are copies and never alias.
func sameInstance(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}
