package registry_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Starscribers/any-registries/registry"
)

func TestNotRegisteredError(t *testing.T) {
	t.Parallel()
	err := &registry.NotRegisteredError{Key: "missing"}

	require.Equal(t, "item with key 'missing' is not registered", err.Error())
	require.ErrorIs(t, err, registry.ErrNotRegistered)
	require.True(t, registry.IsNotRegistered(err))
	require.False(t, registry.IsNotRegistered(errors.New("unrelated")))
}

func TestNotRegisteredErrorSurvivesWrapping(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("dispatch: %w", &registry.NotRegisteredError{Key: 42})

	require.True(t, registry.IsNotRegistered(wrapped))

	var notReg *registry.NotRegisteredError
	require.True(t, errors.As(wrapped, &notReg))
	require.Equal(t, 42, notReg.Key)
}
