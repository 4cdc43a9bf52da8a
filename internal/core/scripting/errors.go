package scripting

import "errors"

// Registration and lifecycle errors
var (
	ErrNilScript      = errors.New("script is nil")
	ErrAliasedScript  = errors.New("script instance already registered")
	ErrNameNotBound   = errors.New("script name has no id in the directory")
	ErrDuplicateName  = errors.New("script name already assigned to another script")
	ErrRegistrySealed = errors.New("registry is sealed")
	ErrKindMismatch   = errors.New("script does not implement the declared kind")
	ErrUnknownKind    = errors.New("unknown script kind")
	ErrInvalidState   = errors.New("invalid lifecycle transition")
	ErrNoLoader       = errors.New("script loader callback was not registered")
	ErrNotImplemented = errors.New("not implemented")
)
