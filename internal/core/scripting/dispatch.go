package scripting

// The four dispatch patterns. Every Engine method is one of these with a hook
// closure; none of them treats a missing script as an error.

// Broadcast calls fn on every indexed script of r in registration order.
// Arguments shared by pointer accumulate across scripts.
func Broadcast[T Script](r *Registry[T], fn func(T)) {
	if r.Len() == 0 {
		return
	}
	for _, s := range r.indexed {
		fn(s)
	}
}

// Collect is Broadcast for hooks that contribute values.
func Collect[T Script, R any](r *Registry[T], fn func(T) []R) []R {
	var out []R
	for _, s := range r.indexed {
		out = append(out, fn(s)...)
	}
	return out
}

// Call invokes fn on the script bound to id. It reports whether one was bound.
func Call[T Script](r *Registry[T], id uint32, fn func(T)) bool {
	s, ok := r.Lookup(id)
	if !ok {
		return false
	}
	fn(s)
	return true
}

// CallOr returns fn's result for the script bound to id, or def if none is.
func CallOr[T Script, R any](r *Registry[T], id uint32, def R, fn func(T) R) R {
	s, ok := r.Lookup(id)
	if !ok {
		return def
	}
	return fn(s)
}

// FirstInRegion calls fn on the first script, in registration order, bound
// to mapID and stops there. Later scripts bound to the same map never fire.
func FirstInRegion[T RegionScript](r *Registry[T], mapID uint32, fn func(T)) bool {
	for _, s := range r.indexed {
		if s.MapID() == mapID {
			fn(s)
			return true
		}
	}
	return false
}

// Manufacture resolves each binding to a loader and asks it for a new
// behavior instance. Unbound ids and loaders without the requested part are
// skipped. The returned instances are owned by the caller.
func Manufacture[B SpellBehavior](loaders *Registry[SpellScriptLoader], spellID uint32, bindings []SpellScriptBinding, produce func(SpellScriptLoader) B) []B {
	var out []B
	for _, b := range bindings {
		loader, ok := loaders.Lookup(b.ScriptID)
		if !ok {
			continue
		}
		inst := produce(loader)
		if isNilScript(inst) {
			continue
		}
		inst.Bind(loader.Name(), spellID)
		out = append(out, inst)
	}
	return out
}
