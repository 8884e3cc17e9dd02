package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/api/apifakes"
	"github.com/sellerhq/seller-console/notify/notifyfakes"
	"github.com/sellerhq/seller-console/session"
	"github.com/sellerhq/seller-console/session/storefakes"
)

func newTestConsole(t *testing.T, products *apifakes.FakeProductService, merchant *api.Merchant) (*Console, *bytes.Buffer) {
	t.Helper()

	store := storefakes.NewFakeStore()
	if merchant != nil {
		require.NoError(t, store.Set(session.KeyMerchant, merchant))
	}

	controller, err := session.NewController(session.Deps{
		Users:     apifakes.NewFakeUserService(),
		Merchants: apifakes.NewFakeMerchantService(),
		Store:     store,
		Notifier:  notifyfakes.NewFakeNotifier(),
	})
	require.NoError(t, err)

	var out bytes.Buffer
	return &Console{
		Services: &api.Services{Product: products},
		Session:  controller,
		Notifier: notifyfakes.NewFakeNotifier(),
		Out:      &out,
	}, &out
}

func TestProductsListRendersTable(t *testing.T) {
	products := apifakes.NewFakeProductService()
	products.GetAllFn = func(ctx context.Context, merchantCode string, page int) (*api.ProductPage, error) {
		require.Equal(t, "adas-shop", merchantCode)
		require.Equal(t, 2, page)
		return &api.ProductPage{
			Products: []api.Product{
				{Name: "Gadget", Price: 150, InStock: true, IsActive: true},
				{Name: "Widget", Price: 75.5, InStock: false, IsActive: false},
			},
			Count:       11,
			TotalPages:  2,
			CurrentPage: 2,
		}, nil
	}
	console, out := newTestConsole(t, products, &api.Merchant{
		ID: "m1", MerchantCode: "adas-shop", Currency: "USD",
	})

	cmd := newProductsListCmd(console)
	cmd.SetArgs([]string{"--page", "2"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	rendered := out.String()
	require.Contains(t, rendered, "Gadget")
	require.Contains(t, rendered, "USD 150.00")
	require.Contains(t, rendered, "ACTIVE")
	require.Contains(t, rendered, "INACTIVE")
	require.Contains(t, rendered, "page 2 of 2 (11 total)")
}

func TestProductsListWithoutStore(t *testing.T) {
	console, _ := newTestConsole(t, apifakes.NewFakeProductService(), nil)

	cmd := newProductsListCmd(console)
	require.Error(t, cmd.ExecuteContext(context.Background()))
}
