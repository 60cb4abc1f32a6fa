package entitlements_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aigenie/genie-server/entitlements"
	"github.com/aigenie/genie-server/internal/latency"
	"github.com/aigenie/genie-server/store/memstore"
)

func newTestService(t *testing.T) *entitlements.Service {
	t.Helper()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, err := entitlements.NewService(memstore.New(),
		entitlements.WithSleeper(latency.None),
		entitlements.WithNowTime(func() time.Time { return now }),
		entitlements.WithRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, err)
	return svc
}

func TestOfferings_FixedCatalog(t *testing.T) {
	svc := newTestService(t)

	offerings := svc.Offerings()
	require.Len(t, offerings, 2)
	require.Equal(t, "premium_monthly", offerings[0].Identifier)
	require.Equal(t, "MONTHLY", offerings[0].PackageType)
	require.Equal(t, "$9.99", offerings[0].Product.PriceString)
	require.Equal(t, "premium_yearly", offerings[1].Identifier)
	require.Equal(t, "ANNUAL", offerings[1].PackageType)
	require.Equal(t, "$99.99", offerings[1].Product.PriceString)
}

func TestPurchase_GrantsPremium(t *testing.T) {
	svc := newTestService(t)

	info, err := svc.Purchase(context.Background(), "premium_monthly", "user_42")
	require.NoError(t, err)
	require.Equal(t, "user_42", info.OriginalAppUserID)
	require.Equal(t, []string{"premium_monthly"}, info.ActiveSubscriptions)
	require.True(t, info.HasActivePremium())

	// Expiration lands 30 days after purchase.
	require.Equal(t,
		time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
		info.AllExpirationDates["premium_monthly"])
}

func TestPurchase_GeneratesUserIDWhenAbsent(t *testing.T) {
	svc := newTestService(t)

	info, err := svc.Purchase(context.Background(), "premium_yearly", "")
	require.NoError(t, err)
	require.NotEmpty(t, info.OriginalAppUserID)
	require.Contains(t, info.OriginalAppUserID, "user_")
}

func TestPurchase_UnknownPackage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Purchase(context.Background(), "premium_weekly", "user_42")
	require.ErrorIs(t, err, entitlements.ErrUnknownPackage)

	info, err := svc.CustomerInfo(context.Background())
	require.NoError(t, err)
	require.Nil(t, info)
}

func TestPurchase_OverwritesPreviousState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Purchase(ctx, "premium_monthly", "user_42")
	require.NoError(t, err)
	_, err = svc.Purchase(ctx, "premium_yearly", "user_42")
	require.NoError(t, err)

	info, err := svc.CustomerInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"premium_yearly"}, info.ActiveSubscriptions)
	require.NotContains(t, info.AllPurchaseDates, "premium_monthly")
}

func TestCustomerInfo_AbsentIsNil(t *testing.T) {
	svc := newTestService(t)

	info, err := svc.CustomerInfo(context.Background())
	require.NoError(t, err)
	require.Nil(t, info)
	require.False(t, info.HasActivePremium())
}

func TestRestore_Success(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	purchased, err := svc.Purchase(ctx, "premium_monthly", "user_42")
	require.NoError(t, err)

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	require.Equal(t, purchased.OriginalAppUserID, restored.OriginalAppUserID)
	require.True(t, restored.HasActivePremium())
}

func TestRestore_NothingToRestore(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Restore(context.Background())
	require.ErrorIs(t, err, entitlements.ErrNoPurchases)
}
