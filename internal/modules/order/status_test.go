package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  OrderStatus
		next     OrderStatus
		quantity int
		want     int
	}{
		{"cancelling releases stock", StatusPendiente, StatusCancelado, 3, 3},
		{"cancelling a delivered order releases stock", StatusEntregado, StatusCancelado, 2, 2},
		{"re-cancelling is a no-op", StatusCancelado, StatusCancelado, 3, 0},
		{"reactivating reserves stock", StatusCancelado, StatusConfirmado, 3, -3},
		{"confirming does not touch stock", StatusPendiente, StatusConfirmado, 3, 0},
		{"delivering does not touch stock", StatusConfirmado, StatusEntregado, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stockDelta(tt.current, tt.next, tt.quantity))
		})
	}
}
