package mmfile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuard_PassesThroughResult(t *testing.T) {
	require.NoError(t, Guard(func() error { return nil }))

	boom := errors.New("boom")
	require.ErrorIs(t, Guard(func() error { return boom }), boom)
}

func TestGuard_RepanicsOnOrdinaryPanic(t *testing.T) {
	require.PanicsWithValue(t, "not a fault", func() {
		_ = Guard(func() error { panic("not a fault") })
	})
}
