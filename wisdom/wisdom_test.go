package wisdom_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aigenie/genie-server/store/memstore"
	"github.com/aigenie/genie-server/wisdom"
)

func newTestService(t *testing.T) *wisdom.Service {
	t.Helper()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, err := wisdom.NewService(memstore.New(),
		wisdom.WithNowTime(func() time.Time { return now }),
		wisdom.WithRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, err)
	return svc
}

func TestAdd_AppendsRecord(t *testing.T) {
	svc := newTestService(t)

	record, err := svc.Add(context.Background(), "Trust the process", "career", false)
	require.NoError(t, err)
	require.NotEmpty(t, record.ID)
	require.Equal(t, "Trust the process", record.Content)
	require.Equal(t, "career", record.Category)
	require.Equal(t, 0, record.Votes)
	require.False(t, record.Anonymous)
	require.Equal(t, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC).UnixMilli(), record.Timestamp)
}

func TestAdd_RequiresContent(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), "", "career", false)
	require.Error(t, err)
}

func TestList_EmptyLedger(t *testing.T) {
	svc := newTestService(t)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestList_InsertionOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, "First", "life", false)
	require.NoError(t, err)
	second, err := svc.Add(ctx, "Second", "life", true)
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, first.ID, records[0].ID)
	require.Equal(t, second.ID, records[1].ID)
	require.True(t, records[1].Anonymous)
}

func TestVote_IncrementsAndPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	record, err := svc.Add(ctx, "Voteworthy", "life", false)
	require.NoError(t, err)

	voted, err := svc.Vote(ctx, record.ID)
	require.NoError(t, err)
	require.Equal(t, 1, voted.Votes)

	voted, err = svc.Vote(ctx, record.ID)
	require.NoError(t, err)
	require.Equal(t, 2, voted.Votes)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, records[0].Votes)
}

func TestVote_UnknownRecord(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Vote(context.Background(), "wisdom_missing")
	require.ErrorIs(t, err, wisdom.ErrRecordNotFound)
}
