package mapper_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-dao-mapper/internal/diag"
	"github.com/goliatone/go-dao-mapper/mapper"
)

func validSignature(params ...mapper.Param) mapper.MethodSignature {
	return mapper.MethodSignature{
		Name:    "ProductDao",
		Params:  params,
		Returns: mapper.TypeRef{Pkg: "github.com/acme/store/db", Name: "ProductDao"},
	}
}

func TestValidateParams_NoParams(t *testing.T) {
	sink := &diag.CollectingSink{}

	ov, err := mapper.ValidateParams(validSignature(), sink)
	if err != nil {
		t.Fatalf("expected no error but got: %v", err)
	}

	if ov.HasKeyspace() || ov.HasTable() {
		t.Errorf("expected no overrides, got keyspace=%v table=%v", ov.Keyspace, ov.Table)
	}
	if sink.Len() != 0 {
		t.Errorf("expected no diagnostics, got %d", sink.Len())
	}
}

func TestValidateParams_KeyspaceOnly(t *testing.T) {
	ov, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "ks", Type: mapper.TypeText, Role: mapper.RoleKeyspace},
	), nil)
	if err != nil {
		t.Fatalf("expected no error but got: %v", err)
	}

	if !ov.HasKeyspace() || ov.Keyspace.Name != "ks" {
		t.Errorf("expected keyspace override 'ks', got %v", ov.Keyspace)
	}
	if ov.HasTable() {
		t.Errorf("expected no table override, got %v", ov.Table)
	}
}

func TestValidateParams_TableOnly(t *testing.T) {
	ov, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "tbl", Type: mapper.TypeIdentifier, Role: mapper.RoleTable},
	), nil)
	if err != nil {
		t.Fatalf("expected no error but got: %v", err)
	}

	if ov.HasKeyspace() {
		t.Errorf("expected no keyspace override, got %v", ov.Keyspace)
	}
	if !ov.HasTable() || ov.Table.Name != "tbl" {
		t.Errorf("expected table override 'tbl', got %v", ov.Table)
	}
}

func TestValidateParams_BothOverrides(t *testing.T) {
	ov, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "ks", Type: mapper.TypeText, Role: mapper.RoleKeyspace},
		mapper.Param{Name: "tbl", Type: mapper.TypeText, Role: mapper.RoleTable},
	), nil)
	if err != nil {
		t.Fatalf("expected no error but got: %v", err)
	}

	if !ov.HasKeyspace() || !ov.HasTable() {
		t.Fatalf("expected both overrides, got keyspace=%v table=%v", ov.Keyspace, ov.Table)
	}
	if ov.Keyspace.Name != "ks" || ov.Table.Name != "tbl" {
		t.Errorf("wrong partition: keyspace=%q table=%q", ov.Keyspace.Name, ov.Table.Name)
	}
}

func TestValidateParams_DuplicateRole(t *testing.T) {
	sink := &diag.CollectingSink{}

	_, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "ks1", Type: mapper.TypeText, Role: mapper.RoleKeyspace},
		mapper.Param{Name: "ks2", Type: mapper.TypeText, Role: mapper.RoleKeyspace},
	), sink)

	if !errors.Is(err, mapper.ErrDuplicateRoleParameter) {
		t.Fatalf("expected ErrDuplicateRoleParameter but got: %v", err)
	}

	var verr *mapper.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError but got: %T", err)
	}
	if verr.Method != "ProductDao" || verr.Param != "ks2" || verr.Role != mapper.RoleKeyspace {
		t.Errorf("wrong error context: method=%q param=%q role=%v", verr.Method, verr.Param, verr.Role)
	}

	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", sink.Len())
	}
	entry := sink.Entries()[0]
	if entry.Location != "ProductDao" {
		t.Errorf("expected location 'ProductDao', got %q", entry.Location)
	}
	if !strings.Contains(entry.Message, "only one parameter") {
		t.Errorf("diagnostic should name the constraint, got %q", entry.Message)
	}
}

func TestValidateParams_DuplicateTableRole(t *testing.T) {
	_, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "t1", Type: mapper.TypeIdentifier, Role: mapper.RoleTable},
		mapper.Param{Name: "t2", Type: mapper.TypeIdentifier, Role: mapper.RoleTable},
	), nil)

	if !errors.Is(err, mapper.ErrDuplicateRoleParameter) {
		t.Fatalf("expected ErrDuplicateRoleParameter but got: %v", err)
	}
}

func TestValidateParams_InvalidRoleType(t *testing.T) {
	sink := &diag.CollectingSink{}

	_, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "ks", Type: mapper.TypeUnknown, Role: mapper.RoleKeyspace},
	), sink)

	if !errors.Is(err, mapper.ErrInvalidRoleParameterType) {
		t.Fatalf("expected ErrInvalidRoleParameterType but got: %v", err)
	}
	if sink.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", sink.Len())
	}
	if !strings.Contains(sink.Entries()[0].Message, "string or daocache.Identifier") {
		t.Errorf("diagnostic should name the allowed types, got %q", sink.Entries()[0].Message)
	}
}

func TestValidateParams_UnrecognizedParameter(t *testing.T) {
	sink := &diag.CollectingSink{}

	_, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "ks", Type: mapper.TypeText, Role: mapper.RoleKeyspace},
		mapper.Param{Name: "extra", Type: mapper.TypeText, Role: mapper.RoleNone},
	), sink)

	if !errors.Is(err, mapper.ErrUnrecognizedParameter) {
		t.Fatalf("expected ErrUnrecognizedParameter but got: %v", err)
	}

	var verr *mapper.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError but got: %T", err)
	}
	if verr.Param != "extra" {
		t.Errorf("expected offending param 'extra', got %q", verr.Param)
	}
	if sink.Len() != 1 {
		t.Errorf("expected exactly one diagnostic, got %d", sink.Len())
	}
}

func TestValidateParams_MalformedSignature(t *testing.T) {
	cases := []struct {
		name string
		sig  mapper.MethodSignature
	}{
		{
			name: "missing method name",
			sig: mapper.MethodSignature{
				Returns: mapper.TypeRef{Name: "ProductDao"},
			},
		},
		{
			name: "missing return type",
			sig: mapper.MethodSignature{
				Name: "ProductDao",
			},
		},
		{
			name: "unnamed parameter",
			sig: mapper.MethodSignature{
				Name:    "ProductDao",
				Returns: mapper.TypeRef{Name: "ProductDao"},
				Params:  []mapper.Param{{Type: mapper.TypeText, Role: mapper.RoleKeyspace}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &diag.CollectingSink{}
			_, err := mapper.ValidateParams(tc.sig, sink)
			if !errors.Is(err, mapper.ErrInvalidSignature) {
				t.Fatalf("expected ErrInvalidSignature but got: %v", err)
			}
			if sink.Len() != 1 {
				t.Errorf("expected exactly one diagnostic, got %d", sink.Len())
			}
		})
	}
}

func TestValidateParams_NilSinkDoesNotPanic(t *testing.T) {
	_, err := mapper.ValidateParams(validSignature(
		mapper.Param{Name: "x", Type: mapper.TypeText, Role: mapper.RoleNone},
	), nil)
	if !errors.Is(err, mapper.ErrUnrecognizedParameter) {
		t.Fatalf("expected ErrUnrecognizedParameter but got: %v", err)
	}
}
