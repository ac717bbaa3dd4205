package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, seq int64) kernel.OrderID {
	t.Helper()
	orderID, err := kernel.OrderIDFromSequence(seq)
	require.NoError(t, err)
	return orderID
}

func makeOrder(t *testing.T, method order.PaymentMethod, receipt string) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Nimal Perera", "nimal@example.com", "0771234567", "12 Galle Rd, Colombo")
	require.NoError(t, err)

	line, err := order.NewLine("P1", "Basmati Rice 5kg", 2500, 3000, 2, "rice.jpg")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		mustOrderID(t, 42),
		customer,
		[]order.Line{line},
		method,
		receipt,
		time.Now(),
	)
	require.NoError(t, err)
	return aggregate
}

func makeDriver(t *testing.T) *driver.Driver {
	t.Helper()
	aggregate, err := driver.NewDriver(kernel.NewUUID(), "Kasun Silva", "0719876543", "WP-AB-4455", "B1234567")
	require.NoError(t, err)
	return aggregate
}
