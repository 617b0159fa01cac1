package mapper

import (
	"net/http"
	"testing"

	"dirpx.dev/guard/check"
	"dirpx.dev/guard/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m := Default()

	tests := []struct {
		name     string
		code     code.Code
		id       check.Ident
		wantHTTP int
		wantGRPC codes.Code
	}{
		{"bad request", code.BadRequest, check.ArgumentNull, http.StatusBadRequest, codes.InvalidArgument},
		{"not found", code.NotFound, check.EntityNull, http.StatusNotFound, codes.NotFound},
		{"internal", code.Internal, check.ValueNonpositive, http.StatusInternalServerError, codes.Internal},
		{"no check ident", code.BadRequest, check.Empty, http.StatusBadRequest, codes.InvalidArgument},
		{"unknown code falls back", code.Code("conflict"), check.Empty, http.StatusInternalServerError, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := m.Status(tt.code, tt.id)
			if st.HTTP != tt.wantHTTP || st.GRPC != tt.wantGRPC {
				t.Fatalf("Status(%q, %q) = (%d, %v), want (%d, %v)",
					tt.code, tt.id, st.HTTP, st.GRPC, tt.wantHTTP, tt.wantGRPC)
			}
		})
	}
}

func TestPrefixBeatsOverrideBeatsDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.BadRequest, 400),
		WithHTTPOverride(code.BadRequest, 422),
		WithHTTPPrefix(code.BadRequest, "argument.empty_string", 428),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// prefix rule wins for matching checks
	if got := m.HTTPStatus(code.BadRequest, check.ArgumentEmptyString); got != 428 {
		t.Fatalf("prefix match = %d, want 428", got)
	}
	// override wins for the rest of the code's checks
	if got := m.HTTPStatus(code.BadRequest, check.ArgumentNull); got != 422 {
		t.Fatalf("override = %d, want 422", got)
	}
	// other codes keep their defaults
	if got := m.HTTPStatus(code.NotFound, check.EntityNull); got != 404 {
		t.Fatalf("default = %d, want 404", got)
	}
}

func TestLongestPrefixWins(t *testing.T) {
	m, err := New(
		WithGRPCPrefix(code.BadRequest, "argument", codes.InvalidArgument),
		WithGRPCPrefix(code.BadRequest, "argument.out_of_range", codes.OutOfRange),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.GRPCStatus(code.BadRequest, check.ArgumentOutOfRange); got != codes.OutOfRange {
		t.Fatalf("specific prefix = %v, want OutOfRange", got)
	}
	if got := m.GRPCStatus(code.BadRequest, check.ArgumentNull); got != codes.InvalidArgument {
		t.Fatalf("chain prefix = %v, want InvalidArgument", got)
	}
}

func TestNew_PrefixNormalization(t *testing.T) {
	// prefixes go through check normalization: case, dashes, slashes
	m, err := New(
		WithHTTPPrefix(code.BadRequest, " Argument/Empty-String ", 422),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.BadRequest, check.ArgumentEmptyString); got != 422 {
		t.Fatalf("normalized prefix = %d, want 422", got)
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "a..b", "1bad", "a.b.c.d"} {
		if _, err := New(WithHTTPPrefix(code.BadRequest, prefix, 400)); err == nil {
			t.Fatalf("New with prefix %q: expected error", prefix)
		}
	}
}

func TestWithFallback(t *testing.T) {
	m, err := New(WithFallback(http.StatusBadGateway, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Code("unclassified"), check.Empty)
	if st.HTTP != http.StatusBadGateway || st.GRPC != codes.Unavailable {
		t.Fatalf("fallback = (%d, %v), want (502, Unavailable)", st.HTTP, st.GRPC)
	}
}

func TestImmutability_DetachedFromOptions(t *testing.T) {
	custom := map[code.Code]int{code.NotFound: 410}
	m, err := New(WithHTTPDefault(code.NotFound, custom[code.NotFound]))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	custom[code.NotFound] = 404 // callers mutating their maps must not leak in
	if got := m.HTTPStatus(code.NotFound, check.Empty); got != 410 {
		t.Fatalf("HTTPStatus = %d, want 410", got)
	}
}
