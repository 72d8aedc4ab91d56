package service

import (
	"context"
	"testing"

	"fulfillment-service/internal/engine"
	"fulfillment-service/internal/models"
	"fulfillment-service/internal/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *FulfillmentService {
	t.Helper()

	eng := engine.New(1800, shipping.NewLogNotifier())
	require.NoError(t, eng.LoadCatalog([]models.Product{
		{ID: 0, Name: "RBC A+ Adult", UnitWeight: 700},
		{ID: 10, Name: "FFP A+", UnitWeight: 300},
	}))
	return NewFulfillmentService(eng, nil, nil)
}

func TestSubmitOrderShipsFromStock(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SubmitRestock(ctx, []models.Restock{{ProductID: 0, Quantity: 5}}))

	result, err := svc.SubmitOrder(ctx, models.Order{
		OrderID:   1,
		Requested: []models.LineItem{{ProductID: 0, Quantity: 2}},
	})
	require.NoError(t, err)

	require.Len(t, result.Shipped, 1)
	assert.Equal(t, int64(1400), result.Shipped[0].TotalWeight)
	assert.Empty(t, result.Deferred)
}

func TestSubmitOrderRejectsEmptyOrder(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitOrder(context.Background(), models.Order{OrderID: 1})
	assert.ErrorIs(t, err, engine.ErrEmptyOrder)
}

func TestSubmitOrderRejectsNegativeQuantity(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SubmitOrder(context.Background(), models.Order{
		OrderID:   3,
		Requested: []models.LineItem{{ProductID: 0, Quantity: -2}},
	})
	assert.ErrorIs(t, err, engine.ErrInvalidQuantity)
}

func TestSubmitRestockRejectsInvalidQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.SubmitRestock(ctx, []models.Restock{{ProductID: 0, Quantity: -1}})
	require.Error(t, err)
	assert.True(t, engine.IsValidation(err))

	err = svc.SubmitRestock(ctx, nil)
	require.Error(t, err)
	assert.True(t, engine.IsValidation(err))
}

func TestSubmitRestockReplaysDeferredDemand(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitOrder(ctx, models.Order{
		OrderID:   2,
		Requested: []models.LineItem{{ProductID: 10, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, svc.ListDeferredOrders(ctx), 1)

	require.NoError(t, svc.SubmitRestock(ctx, []models.Restock{{ProductID: 10, Quantity: 3}}))
	assert.Empty(t, svc.ListDeferredOrders(ctx))
}

func TestAddProductAssignsID(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.AddProduct(context.Background(), "PLT AB+", 120)
	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, "PLT AB+", product.Name)

	_, err = svc.AddProduct(context.Background(), "pallet", 5000)
	assert.ErrorIs(t, err, engine.ErrUnpackableProduct)
}

func TestListProductsInsertionOrder(t *testing.T) {
	svc := newTestService(t)

	products := svc.ListProducts(context.Background())
	require.Len(t, products, 2)
	assert.Equal(t, int64(0), products[0].ID)
	assert.Equal(t, int64(10), products[1].ID)
}
