package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewOrderRejectsEmptyCart(t *testing.T) {
	order, err := NewOrder(nil, ShippingAddress{}, "PayPal", 0, 0, 0, 0, "user-1")

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
}

func TestNewOrderSellerComesFromFirstItem(t *testing.T) {
	items := []OrderItem{
		{Product: primitive.NewObjectID(), Name: "Sérum", Quantity: 1, Price: 32.50, Seller: "seller-A"},
		{Product: primitive.NewObjectID(), Name: "Crème", Quantity: 2, Price: 24.90, Seller: "seller-B"},
	}

	order, err := NewOrder(items, ShippingAddress{City: "Bruxelles"}, "PayPal", 82.30, 5, 3.5, 90.80, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "seller-A", order.Seller)
	assert.Equal(t, "user-1", order.User)
}

func TestNewOrderInitialState(t *testing.T) {
	items := []OrderItem{{Product: primitive.NewObjectID(), Name: "Shampooing", Quantity: 1, Price: 14.90, Seller: "seller-A"}}

	order, err := NewOrder(items, ShippingAddress{}, "PayPal", 14.90, 5, 1, 20.90, "user-1")
	require.NoError(t, err)

	assert.False(t, order.ID.IsZero())
	assert.False(t, order.IsPaid)
	assert.Nil(t, order.PaidAt)
	assert.Nil(t, order.PaymentResult)
	assert.False(t, order.IsDelivered)
	assert.Nil(t, order.DeliveredAt)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, 20.90, order.TotalPrice)
}

func TestMarkPaid(t *testing.T) {
	tests := []struct {
		name   string
		result PaymentResult
	}{
		{"confirmation complète", PaymentResult{
			ID:           "PAYID-123",
			Status:       "COMPLETED",
			UpdateTime:   "2026-08-29T10:00:00Z",
			EmailAddress: "alice@example.com",
		}},
		// Le prestataire peut renvoyer une confirmation vide : elle est
		// stockée telle quelle et la commande passe quand même à payé.
		{"confirmation vide", PaymentResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []OrderItem{{Product: primitive.NewObjectID(), Name: "Sérum", Quantity: 1, Price: 32.50, Seller: "seller-A"}}
			order, err := NewOrder(items, ShippingAddress{}, "PayPal", 32.50, 5, 2, 39.50, "user-1")
			require.NoError(t, err)

			paidAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
			order.MarkPaid(tt.result, paidAt)

			assert.True(t, order.IsPaid)
			require.NotNil(t, order.PaidAt)
			assert.Equal(t, paidAt, *order.PaidAt)

			require.NotNil(t, order.PaymentResult)
			assert.Equal(t, tt.result.ID, order.PaymentResult.ID)
			assert.Equal(t, tt.result.Status, order.PaymentResult.Status)
			assert.Equal(t, tt.result.UpdateTime, order.PaymentResult.UpdateTime)
			assert.Equal(t, tt.result.EmailAddress, order.PaymentResult.EmailAddress)

			// La livraison n'est pas touchée.
			assert.False(t, order.IsDelivered)
			assert.Nil(t, order.DeliveredAt)
		})
	}
}

func TestMarkPaidOverwritesPreviousResult(t *testing.T) {
	items := []OrderItem{{Product: primitive.NewObjectID(), Name: "Crème", Quantity: 1, Price: 24.90, Seller: "seller-A"}}
	order, err := NewOrder(items, ShippingAddress{}, "PayPal", 24.90, 5, 2, 31.90, "user-1")
	require.NoError(t, err)

	order.MarkPaid(PaymentResult{ID: "PAYID-1", Status: "PENDING"}, time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))

	secondAt := time.Date(2026, 8, 29, 9, 5, 0, 0, time.UTC)
	order.MarkPaid(PaymentResult{ID: "PAYID-2", Status: "COMPLETED"}, secondAt)

	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaymentResult)
	assert.Equal(t, "PAYID-2", order.PaymentResult.ID)
	assert.Equal(t, "COMPLETED", order.PaymentResult.Status)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, secondAt, *order.PaidAt)
}

func TestMarkDelivered(t *testing.T) {
	items := []OrderItem{{Product: primitive.NewObjectID(), Name: "Shampooing", Quantity: 1, Price: 14.90, Seller: "seller-A"}}
	order, err := NewOrder(items, ShippingAddress{}, "PayPal", 14.90, 5, 1, 20.90, "user-1")
	require.NoError(t, err)

	deliveredAt := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	order.MarkDelivered(deliveredAt)

	assert.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, deliveredAt, *order.DeliveredAt)

	// La livraison ne dépend pas du paiement.
	assert.False(t, order.IsPaid)
	assert.Nil(t, order.PaymentResult)
}
