package order

// stockDelta returns the stock adjustment a status change requires: positive
// when cancelling releases the reserved maples, negative when reactivating a
// cancelled order re-reserves them, zero otherwise. CANCELADO works as a
// toggle against stock, so re-cancelling a cancelled order is a no-op.
func stockDelta(current, next OrderStatus, quantity int) int {
	switch {
	case current != StatusCancelado && next == StatusCancelado:
		return quantity
	case current == StatusCancelado && next != StatusCancelado:
		return -quantity
	default:
		return 0
	}
}
