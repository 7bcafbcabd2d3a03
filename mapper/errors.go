package mapper

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation outcomes. Callers match with errors.Is
// to decide how to report a skipped method.
var (
	// ErrDuplicateRoleParameter signals that more than one parameter
	// carries the same override role.
	ErrDuplicateRoleParameter = errors.New("mapper: only one parameter can carry this role")

	// ErrInvalidRoleParameterType signals a role-tagged parameter whose
	// declared type is outside the recognized identifier types.
	ErrInvalidRoleParameterType = errors.New("mapper: role parameter must be a string or daocache.Identifier")

	// ErrUnrecognizedParameter signals a parameter that carries no
	// recognized override role.
	ErrUnrecognizedParameter = errors.New("mapper: only keyspace or table role parameters are allowed")

	// ErrInvalidSignature signals a structurally malformed signature
	// (missing name, missing return type, unnamed parameter).
	ErrInvalidSignature = errors.New("mapper: invalid method signature")
)

// ValidationError describes why generation was skipped for one method.
// It is recoverable per method: the enclosing class and sibling methods
// keep generating.
type ValidationError struct {
	// Method is the factory method whose generation was skipped.
	Method string

	// Param is the offending parameter, when one exists.
	Param string

	// Role is the override role involved in the violation, if any.
	Role ParamRole

	sentinel error
}

func newValidationError(sentinel error, method, param string, role ParamRole) *ValidationError {
	return &ValidationError{
		Method:   method,
		Param:    param,
		Role:     role,
		sentinel: sentinel,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Param != "" && e.Role != RoleNone:
		return fmt.Sprintf("%v: method %q, parameter %q (%s role)", e.sentinel, e.Method, e.Param, e.Role)
	case e.Param != "":
		return fmt.Sprintf("%v: method %q, parameter %q", e.sentinel, e.Method, e.Param)
	default:
		return fmt.Sprintf("%v: method %q", e.sentinel, e.Method)
	}
}

// Unwrap exposes the sentinel so errors.Is can classify the failure.
func (e *ValidationError) Unwrap() error {
	return e.sentinel
}
