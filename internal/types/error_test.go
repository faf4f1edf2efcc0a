package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRpcError(t *testing.T) {
	rpcErr := NewRpcError(errors.New("connection refused"))

	assert.True(t, IsRpcError(rpcErr))
	assert.True(t, IsRpcError(fmt.Errorf("fetch stakes: %w", rpcErr)))
	assert.False(t, IsRpcError(NewInternalServiceError(errors.New("boom"))))
	assert.False(t, IsRpcError(errors.New("plain")))
	assert.False(t, IsRpcError(nil))

	assert.Equal(t, http.StatusBadGateway, rpcErr.StatusCode)
	assert.Equal(t, "connection refused", rpcErr.Error())
}

func TestErrorKindOf(t *testing.T) {
	assert.Equal(t, ErrorKindRpc, ErrorKindOf(NewRpcError(errors.New("x"))))
	assert.Equal(t, ErrorKindGeneric, ErrorKindOf(errors.New("x")))
}
