package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantOk   bool
	}{
		{"Validation", Validation("missing field"), KindValidation, true},
		{"Conflict", Conflict("duplicate"), KindConflict, true},
		{"NotFound", NotFound("gone"), KindNotFound, true},
		{"Artifact", Artifact("render failed", errors.New("disk full")), KindArtifact, true},
		{"Wrapped", fmt.Errorf("context: %w", Conflict("duplicate")), KindConflict, true},
		{"Plain error", errors.New("boom"), 0, false},
		{"Nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.err)
			if ok != tt.wantOk || (ok && kind != tt.wantKind) {
				t.Errorf("KindOf() = (%v, %v), want (%v, %v)", kind, ok, tt.wantKind, tt.wantOk)
			}
		})
	}
}

func TestArtifactUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Artifact("render failed", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected artifact error to wrap its cause")
	}

	if err.Error() != "render failed: disk full" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}
}
