package checks

import "fmt"

// Registry resolves check types to Check implementations.
// Custom checks take precedence over built-ins sharing the same type name.
// Built-in instances are created once per type and reused.
//
// A Registry is not safe for concurrent mutation; register custom checks
// before validating.
type Registry struct {
	custom    map[string]Func
	instances map[string]Check
}

// NewRegistry creates an empty registry backed by the package built-ins.
func NewRegistry() *Registry {
	return &Registry{
		custom:    make(map[string]Func),
		instances: make(map[string]Check),
	}
}

// RegisterCustom installs fn under checkType, replacing any earlier
// custom check with the same type.
func (r *Registry) RegisterCustom(checkType string, fn Func) error {
	if checkType == "" {
		return fmt.Errorf("%w: empty check type", ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil function for %q", ErrInvalidArgument, checkType)
	}
	r.custom[checkType] = fn
	return nil
}

// HasCustom reports whether a custom check is registered under checkType.
func (r *Registry) HasCustom(checkType string) bool {
	_, ok := r.custom[checkType]
	return ok
}

// Resolve returns the check for checkType. Custom checks are returned as
// registered; built-ins are looked up by Identifier(checkType) and cached.
// An unknown type yields an error wrapping ErrUnknownCheck.
func (r *Registry) Resolve(checkType string) (Check, error) {
	if fn, ok := r.custom[checkType]; ok {
		return fn, nil
	}

	if c, ok := r.instances[checkType]; ok {
		return c, nil
	}

	id := Identifier(checkType)
	factory, ok := Builtin(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, id)
	}

	c := factory()
	r.instances[checkType] = c
	return c, nil
}
