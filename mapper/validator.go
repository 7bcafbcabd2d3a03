package mapper

import "fmt"

// Overrides is the outcome of parameter validation: references to the
// validated keyspace and table override parameters, each optional. The
// referenced values are read at call time by the emitted body.
type Overrides struct {
	Keyspace *Param
	Table    *Param
}

// HasKeyspace reports whether a keyspace override parameter exists.
func (o Overrides) HasKeyspace() bool {
	return o.Keyspace != nil
}

// HasTable reports whether a table override parameter exists.
func (o Overrides) HasTable() bool {
	return o.Table != nil
}

// ValidateParams partitions a factory method's parameter list into at
// most one keyspace override and at most one table override.
//
// Every violation is reported once through diag, then returned as a
// *ValidationError wrapping the matching sentinel. A failure skips the
// method; it never aborts generation of sibling methods.
func ValidateParams(sig MethodSignature, diag Diagnostics) (Overrides, error) {
	if diag == nil {
		diag = NopDiagnostics()
	}

	if err := sig.Validate(); err != nil {
		diag.Report(sig.Name, "malformed factory method signature: %v", err)
		return Overrides{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var ov Overrides
	for i := range sig.Params {
		p := &sig.Params[i]
		switch p.Role {
		case RoleKeyspace:
			if err := validateRoleParam(sig, p, ov.Keyspace, diag); err != nil {
				return Overrides{}, err
			}
			ov.Keyspace = p
		case RoleTable:
			if err := validateRoleParam(sig, p, ov.Table, diag); err != nil {
				return Overrides{}, err
			}
			ov.Table = p
		default:
			diag.Report(sig.Name,
				"parameter %q: only parameters carrying the keyspace or table role are allowed",
				p.Name)
			return Overrides{}, newValidationError(ErrUnrecognizedParameter, sig.Name, p.Name, RoleNone)
		}
	}
	return ov, nil
}

// validateRoleParam enforces the per-role rules: a role may appear once,
// and the parameter type must be a recognized identifier type.
func validateRoleParam(sig MethodSignature, candidate, previous *Param, diag Diagnostics) error {
	if previous != nil {
		diag.Report(sig.Name,
			"parameter %q: only one parameter can carry the %s role (already carried by %q)",
			candidate.Name, candidate.Role, previous.Name)
		return newValidationError(ErrDuplicateRoleParameter, sig.Name, candidate.Name, candidate.Role)
	}
	if candidate.Type != TypeText && candidate.Type != TypeIdentifier {
		diag.Report(sig.Name,
			"parameter %q: a %s role parameter must be of type %s or %s",
			candidate.Name, candidate.Role, TypeText, TypeIdentifier)
		return newValidationError(ErrInvalidRoleParameterType, sig.Name, candidate.Name, candidate.Role)
	}
	return nil
}
