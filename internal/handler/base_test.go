package handler

import (
	"testing"

	"github.com/deppfellow/v1-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewRequest_AllocatesPerCall(t *testing.T) {
	proto := &model.CreateOrderRequest{Product: "leftover"}

	a := newRequest(proto)
	b := newRequest(proto)

	assert.NotSame(t, proto, a)
	assert.NotSame(t, a, b)
	assert.Empty(t, a.Product)
}
