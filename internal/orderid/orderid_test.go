package orderid_test

import (
	"testing"

	"receiptpro/internal/orderid"

	"github.com/stretchr/testify/assert"
)

func TestNew_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := orderid.New()
		assert.Len(t, n, 10)
		assert.Equal(t, byte('W'), n[0])
		for _, c := range n[1:] {
			assert.True(t, c >= '0' && c <= '9', "order number %q contains non-digit", n)
		}
	}
}
