package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefine(t *testing.T) {
	k := Define("UserNotFound", CodeNotFound)

	require.Equal(t, "UserNotFound", k.Name())
	require.Equal(t, CodeNotFound, k.Code())
	require.Equal(t, ClassificationPermanent, k.Classification())
	require.Empty(t, k.DefaultMessage())
	require.Equal(t, "UserNotFound", k.Error())
	require.Equal(t, "UserNotFound(NOT_FOUND)", k.String())
}

func TestDefine_Options(t *testing.T) {
	k := Define("Flaky", CodeNotFound,
		WithKindClassification(ClassificationRetryable),
		WithMessage("flaky lookup"),
	)

	require.Equal(t, ClassificationRetryable, k.Classification())
	require.Equal(t, "flaky lookup", k.DefaultMessage())
}

func TestDefine_DefaultClassification(t *testing.T) {
	tests := []struct {
		name          string
		code          ErrorCode
		wantRetryable bool
	}{
		{"timeout is retryable", CodeTimeout, true},
		{"network is retryable", CodeNetwork, true},
		{"rate limit is retryable", CodeRateLimit, true},
		{"unavailable is retryable", CodeUnavailable, true},
		{"database is retryable", CodeDatabase, true},
		{"not found is permanent", CodeNotFound, false},
		{"invalid input is permanent", CodeInvalidInput, false},
		{"catalog load is permanent", CodeCatalogLoadFailed, false},
		{"internal is permanent", CodeInternal, false},
		{"unregistered code is permanent", ErrorCode("CUSTOM"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Define("K", tt.code)
			require.Equal(t, tt.wantRetryable, k.Classification().IsRetryable())
			require.Equal(t, tt.wantRetryable, IsRetryable(k.New("x")))
		})
	}
}

func TestKind_New(t *testing.T) {
	k := Define("Boom", CodeExecutionFailed)
	err := k.New("it blew up")

	require.NotNil(t, err)
	require.Same(t, k, err.Kind())
	require.Equal(t, CodeExecutionFailed, err.Code())
	require.Equal(t, "it blew up", err.Message())
	require.Equal(t, "[EXECUTION_FAILED] it blew up", err.Error())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestKind_New_MessageFallback(t *testing.T) {
	t.Run("uses default message", func(t *testing.T) {
		k := Define("Boom", CodeInternal, WithMessage("default"))
		require.Equal(t, "default", k.New("").Message())
	})

	t.Run("uses kind name", func(t *testing.T) {
		k := Define("Boom", CodeInternal)
		require.Equal(t, "Boom", k.New("").Message())
	})
}

func TestKind_Newf(t *testing.T) {
	k := Define("Invalid", CodeInvalidInput)
	err := k.Newf("invalid value: %d (expected %d)", 5, 10)

	require.Equal(t, "invalid value: 5 (expected 10)", err.Message())
	require.True(t, k.Match(err))
}

func TestKind_Wrap(t *testing.T) {
	k := Define("Storage", CodeDatabase)
	cause := stderrors.New("connection refused")

	err := k.Wrap(cause, "failed to query")

	require.Same(t, k, err.Kind())
	require.Equal(t, "[DATABASE_ERROR] failed to query: connection refused", err.Error())
	require.Same(t, cause, err.Unwrap())
	require.True(t, stderrors.Is(err, cause))
	require.Equal(t, ClassificationRetryable, err.Classification())
}

func TestKind_Wrap_Nil(t *testing.T) {
	k := Define("Storage", CodeDatabase)

	require.Nil(t, k.Wrap(nil, "msg"))
	require.Nil(t, k.Wrapf(nil, "msg %d", 1))
	require.Nil(t, k.WrapWithContext(nil, "msg", map[string]interface{}{"a": 1}))
}

func TestKind_Wrap_PreservesClassification(t *testing.T) {
	retryable := Define("Timeout", CodeTimeout)
	permanent := Define("Query", CodeInvalidInput)

	err := permanent.Wrap(retryable.New("deadline"), "query failed")

	require.Equal(t, CodeInvalidInput, err.Code())
	require.Equal(t, ClassificationRetryable, err.Classification())
}

func TestKind_WrapWithContext(t *testing.T) {
	k := Define("Build", CodeExecutionFailed)
	ctx := map[string]interface{}{"project": "api"}

	err := k.WrapWithContext(stderrors.New("exit 1"), "build failed", ctx)
	ctx["project"] = "mutated"

	require.Equal(t, "api", err.Context()["project"])
	require.True(t, k.Match(err))
}

func TestKind_Match(t *testing.T) {
	boom := Define("Boom", CodeInternal)
	other := Define("Boom", CodeInternal)

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", boom.New("x"), true},
		{"wrapped by another kind", other.Wrap(boom.New("x"), "outer"), true},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", boom.New("x")), true},
		{"joined", stderrors.Join(stderrors.New("a"), boom.New("x")), true},
		{"same name different kind", other.New("x"), false},
		{"plain error", stderrors.New("Boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, boom.Match(tt.err))
			require.Equal(t, tt.want, Is(tt.err, boom))
		})
	}
}

func TestKind_Match_NilKind(t *testing.T) {
	var k *Kind
	require.False(t, k.Match(stderrors.New("x")))
	require.Equal(t, "<nil>", k.Name())
	require.Equal(t, "<nil>", k.Error())
	require.Equal(t, "<nil>", k.String())
}

func TestParseCode(t *testing.T) {
	code, ok := ParseCode("NOT_FOUND")
	require.True(t, ok)
	require.Equal(t, CodeNotFound, code)

	code, ok = ParseCode("NOPE")
	require.False(t, ok)
	require.Equal(t, CodeUnknown, code)
}

func TestParseClassification(t *testing.T) {
	c, ok := ParseClassification("RETRYABLE")
	require.True(t, ok)
	require.Equal(t, ClassificationRetryable, c)

	c, ok = ParseClassification("sometimes")
	require.False(t, ok)
	require.Equal(t, ClassificationPermanent, c)
}
