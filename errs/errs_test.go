package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := New(Timeout, "endpoint hung")
		require.Equal(t, "[timeout] endpoint hung", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := Wrap(Transport, "post failed", cause)
		require.Contains(t, err.Error(), "[transport] post failed")
		require.Contains(t, err.Error(), "connection refused")
	})
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(UnmarshalIO, "bad stream", cause)
	require.ErrorIs(t, err, cause)
}

func TestError_Is(t *testing.T) {
	a := New(Timeout, "first")
	b := New(Timeout, "second")
	c := New(Transport, "third")

	require.True(t, errors.Is(a, b), "same Kind should match regardless of message")
	require.False(t, errors.Is(a, c), "different Kind should not match")
}

func TestKindOf(t *testing.T) {
	require.Equal(t, OK, KindOf(nil))
	require.Equal(t, EndpointExhausted, KindOf(New(EndpointExhausted, "all endpoints failed")))

	wrapped := Wrap(Cancelled, "aborted", New(Transport, "inner"))
	require.Equal(t, Cancelled, KindOf(wrapped))
}

func TestStrerror(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{OK, "success"},
		{NullPointer, "null pointer argument"},
		{EndpointExhausted, "all endpoints failed"},
		{Cancelled, "operation cancelled by caller"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Strerror(tc.kind))
	}

	require.Equal(t, "unknown error", Strerror(Kind(999)))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "timeout", Timeout.String())
	require.Equal(t, "endpoint-exhausted", EndpointExhausted.String())
	require.Equal(t, "unknown", Kind(999).String())
}
