package order

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacementErrorMessages(t *testing.T) {
	assert.Equal(t, "product 9 not found", NotFoundErr(9).Error())
	assert.Equal(t, "insufficient stock for product 3", InsufficientStockErr(3).Error())
	assert.Equal(t, "order transaction aborted: deadlock", AbortedErr(errors.New("deadlock")).Error())
}

func TestAsPlacementErrorUnwrapsChain(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("place order: %w", AbortedErr(cause))

	pe, ok := AsPlacementError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindTransactionAborted, pe.Kind)
	assert.ErrorIs(t, wrapped, cause)
}

func TestAsPlacementErrorPlainError(t *testing.T) {
	_, ok := AsPlacementError(errors.New("boom"))
	assert.False(t, ok)
}
