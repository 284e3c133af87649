package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errSoldOut = New("sold out")
	errClosed  = New("closed")
)

func TestIsAny(t *testing.T) {
	wrapped := Wrap(errSoldOut, "checkout")

	assert.True(t, IsAny(wrapped, errClosed, errSoldOut))
	assert.False(t, IsAny(wrapped, errClosed))
	assert.False(t, IsAny(wrapped))
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestWrap_KeepsStack(t *testing.T) {
	err := Wrap(errSoldOut, "checkout")

	assert.Equal(t, "checkout: sold out", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsStack")
}
