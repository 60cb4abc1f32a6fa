package advisor_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aigenie/genie-server/advisor"
	"github.com/aigenie/genie-server/internal/latency"
)

func newTestService() *advisor.Service {
	return advisor.NewService(
		advisor.WithSleeper(latency.None),
		advisor.WithRand(rand.New(rand.NewSource(1))),
	)
}

func TestReply_ReturnsCannedText(t *testing.T) {
	svc := newTestService()

	reply, err := svc.Reply(context.Background(), "What should I do with my life?")
	require.NoError(t, err)
	require.NotEmpty(t, reply)
}

func TestReply_IgnoresMessage(t *testing.T) {
	first := newTestService()
	second := newTestService()

	// Same seed, different messages: identical selection.
	a, err := first.Reply(context.Background(), "message one")
	require.NoError(t, err)
	b, err := second.Reply(context.Background(), "completely different")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestReply_CancelledContext(t *testing.T) {
	svc := advisor.NewService(advisor.WithRand(rand.New(rand.NewSource(1))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Reply(ctx, "hello")
	require.ErrorIs(t, err, context.Canceled)
}

func TestChaos_SamplesThreePosts(t *testing.T) {
	svc := newTestService()

	result, err := svc.Chaos(context.Background(), "Should I quit my job?")
	require.NoError(t, err)
	require.Len(t, result.Posts, 3)
	require.NotEmpty(t, result.Suggestion)

	seen := map[string]bool{}
	for _, post := range result.Posts {
		require.NotEmpty(t, post.Title)
		require.False(t, seen[post.ID], "posts must be distinct")
		seen[post.ID] = true
	}
}

func TestChaos_EmptyDecision(t *testing.T) {
	svc := newTestService()

	_, err := svc.Chaos(context.Background(), "")
	require.ErrorIs(t, err, advisor.ErrEmptyDecision)
}
