// Package transform provides a policy-driven traversal engine over a type
// registry. Starting from a type ID, it derives a caller-chosen
// representation R (a string, a tree, an example value) while a per-session
// cache shields the traversal from infinite recursion. A session may also
// carry a caller-chosen state S, useful for side effects such as a
// pseudo-random number generator when deriving example values.
package transform

import (
	"fmt"

	"github.com/scalemeta/scalemeta/internal/typemeta"
)

// ComputeFunc produces the representation for a type not yet seen in the
// session. It may call tr.Resolve to recurse into dependent types.
type ComputeFunc[R, S any] func(id typemeta.TypeID, ty *typemeta.Type, tr *Transformer[R, S]) (R, error)

// CycleFunc is invoked when Resolve is called for an ID whose resolution is
// already in progress. Returning handled=true short-circuits with the given
// result; handled=false sidesteps the cycle detection and lets the
// transformer run the compute rule again.
type CycleFunc[R, S any] func(id typemeta.TypeID, ty *typemeta.Type, tr *Transformer[R, S]) (res R, handled bool, err error)

// CacheHitFunc is invoked when Resolve is called for an ID whose
// representation was already computed this session. Returning handled=true
// short-circuits with the given result; handled=false recomputes.
type CacheHitFunc[R, S any] func(id typemeta.TypeID, ty *typemeta.Type, cached R, tr *Transformer[R, S]) (res R, handled bool, err error)

// Transformer is one traversal session over a registry. It owns its cache
// exclusively; sessions must not be shared across goroutines. The registry
// is read-only for the session's lifetime and may be shared between
// concurrent sessions.
type Transformer[R, S any] struct {
	registry *typemeta.Registry
	compute  ComputeFunc[R, S]
	onCycle  CycleFunc[R, S]
	cacheHit CacheHitFunc[R, S]
	state    S
	cache    map[typemeta.TypeID]cacheEntry[R]
}

// cacheEntry is either in progress (done=false, the cycle marker) or
// computed.
type cacheEntry[R any] struct {
	done  bool
	value R
}

// New creates a transformer session. compute is required; a nil onCycle
// defaults to UnrollWrappers and a nil cacheHit defaults to ReturnCached.
func New[R, S any](
	registry *typemeta.Registry,
	compute ComputeFunc[R, S],
	onCycle CycleFunc[R, S],
	cacheHit CacheHitFunc[R, S],
	state S,
) *Transformer[R, S] {
	if compute == nil {
		panic("transform: compute rule is required")
	}
	if onCycle == nil {
		onCycle = UnrollWrappers[R, S]
	}
	if cacheHit == nil {
		cacheHit = ReturnCached[R, S]
	}
	return &Transformer[R, S]{
		registry: registry,
		compute:  compute,
		onCycle:  onCycle,
		cacheHit: cacheHit,
		state:    state,
		cache:    make(map[typemeta.TypeID]cacheEntry[R]),
	}
}

// State returns the custom session state.
func (tr *Transformer[R, S]) State() S {
	return tr.state
}

// Registry returns the registry this session traverses.
func (tr *Transformer[R, S]) Registry() *typemeta.Registry {
	return tr.registry
}

// Resolve derives the representation of the given type ID. At most one real
// computation runs per ID per session; repeat visits are answered from the
// cache or routed through the cycle policy. A failed computation leaves the
// in-progress marker behind, so resolving the same ID again in this session
// takes the cycle path instead of retrying.
func (tr *Transformer[R, S]) Resolve(id typemeta.TypeID) (R, error) {
	var zero R

	ty, ok := tr.registry.Resolve(id)
	if !ok {
		return zero, &typemeta.TypeNotFoundError{ID: id}
	}

	if entry, ok := tr.cache[id]; ok {
		var (
			res     R
			handled bool
			err     error
		)
		if entry.done {
			res, handled, err = tr.cacheHit(id, ty, entry.value, tr)
		} else {
			res, handled, err = tr.onCycle(id, ty, tr)
		}
		if handled {
			return res, err
		}
	}

	tr.cache[id] = cacheEntry[R]{}
	res, err := tr.compute(id, ty, tr)
	if err != nil {
		return zero, err
	}
	tr.cache[id] = cacheEntry[R]{done: true, value: res}
	return res, nil
}

// ReturnCached is the default cache-hit policy: reuse the computed value.
func ReturnCached[R, S any](_ typemeta.TypeID, _ *typemeta.Type, cached R, _ *Transformer[R, S]) (R, bool, error) {
	return cached, true, nil
}

// UnrollWrappers is the default cycle policy. Wrapper shapes (sequence,
// array, tuple, compact) keep unrolling: each occurrence of the wrapper is
// independently representable even while its element is mid-resolution. Any
// other shape fails with a CycleError.
//
// The safety of letting wrappers continue relies on every cycle ultimately
// bottoming out at a primitive, composite, or variant that the compute rule
// can represent without recursing further (from the cache or via its own
// cycle handling). A registry whose cycles consist purely of wrapper shapes
// has no such anchor and will not terminate; guarding against that input is
// the caller's responsibility.
func UnrollWrappers[R, S any](id typemeta.TypeID, ty *typemeta.Type, _ *Transformer[R, S]) (R, bool, error) {
	var zero R
	if ty.Def.IsWrapper() {
		return zero, false, nil
	}
	return zero, true, &CycleError{ID: id, Path: ty.Path.String()}
}

// CycleError reports a cycle that the session's policies could not
// represent.
type CycleError struct {
	ID   typemeta.TypeID
	Path string
}

func (e *CycleError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("type %d (%s) is cyclic and has no finite representation", e.ID, e.Path)
	}
	return fmt.Sprintf("type %d is cyclic and has no finite representation", e.ID)
}
