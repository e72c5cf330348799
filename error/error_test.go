package error_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apiError "github.com/next-trace/scg-result/error"
)

func TestNewAndGetters(t *testing.T) {
	t.Parallel()

	e := apiError.New("NotFound", "missing")

	require.Equal(t, "NotFound", e.Code())
	require.Equal(t, "missing", e.Description())
	require.NoError(t, e.Cause())
	require.NoError(t, e.Unwrap())
}

func TestNew_EmptyFieldsAreLegal(t *testing.T) {
	t.Parallel()

	e := apiError.New("", "")

	require.Empty(t, e.Code())
	require.Empty(t, e.Description())
	require.Empty(t, e.Error())
}

func TestNew_WithCause_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("driver: bad connection")
	e := apiError.New("Repo.Load", "load failed", cause)

	require.ErrorIs(t, e, cause)
	require.Same(t, cause, e.Cause())
	require.Same(t, cause, e.Unwrap())

	var out *apiError.Error
	require.ErrorAs(t, e, &out)
	require.Same(t, e, out)
}

func TestNew_OnlyFirstCauseIsKept(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	second := errors.New("second")
	e := apiError.New("c", "d", first, second)

	require.Same(t, first, e.Cause())
	require.NotErrorIs(t, e, second)
}

func TestErrorString_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *apiError.Error
		want string
	}{
		{"code and description", apiError.New("NotFound", "missing"), "NotFound: missing"},
		{"code only", apiError.New("NotFound", ""), "NotFound"},
		{"cause is not printed", apiError.New("E", "d", errors.New("secret")), "E: d"},
		{"nil receiver", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	t.Parallel()

	e := apiError.New("NotFound", "article 42 missing")

	require.ErrorIs(t, e, apiError.New("NotFound", ""))
	require.NotErrorIs(t, e, apiError.New("Conflict", ""))

	wrapped := fmt.Errorf("handler: %w", e)
	require.ErrorIs(t, wrapped, apiError.New("NotFound", "other text"))

	// empty codes never match each other
	require.NotErrorIs(t, apiError.New("", "a"), apiError.New("", "b"))
}

func TestIs_NilReceiverAndTarget(t *testing.T) {
	t.Parallel()

	var e *apiError.Error
	require.False(t, e.Is(apiError.New("x", "")))
	require.False(t, apiError.New("x", "").Is(nil))
}

func TestGetters_NilReceiver(t *testing.T) {
	t.Parallel()

	var e *apiError.Error

	require.Empty(t, e.Code())
	require.Empty(t, e.Description())
	require.NoError(t, e.Cause())
	require.NoError(t, e.Unwrap())
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("failed", "error", apiError.New("NotFound", "missing", errors.New("no rows")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, map[string]any{
		"code":        "NotFound",
		"description": "missing",
		"cause":       "no rows",
	}, got["error"])
}

func TestLogValue_WithoutCause(t *testing.T) {
	t.Parallel()

	v := apiError.New("E1", "a").LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())
	require.Len(t, v.Group(), 2)

	var e *apiError.Error
	require.Equal(t, "<nil>", e.LogValue().String())
}

// FuzzNew checks that fields are stored verbatim (no validation, no panics).
func FuzzNew(f *testing.F) {
	f.Add("NotFound", "missing")
	f.Add("", "")
	f.Fuzz(func(t *testing.T, code, description string) {
		e := apiError.New(code, description)

		if e.Code() != code || e.Description() != description {
			t.Fatalf("fields changed: code=%q description=%q", e.Code(), e.Description())
		}

		if e.Cause() != nil {
			t.Fatalf("unexpected cause %v", e.Cause())
		}
	})
}
