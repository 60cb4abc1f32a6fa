package accounts_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aigenie/genie-server/accounts"
	"github.com/aigenie/genie-server/internal/latency"
	"github.com/aigenie/genie-server/internal/utils"
	"github.com/aigenie/genie-server/store/memstore"
	"github.com/aigenie/genie-server/token"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "Secret123!"
	testFullName = "Alice Example"
)

// testFixture holds all test dependencies
type testFixture struct {
	store   *memstore.MemStore
	tokens  *token.Issuer
	service *accounts.Service
	now     time.Time
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	st := memstore.New()
	tokens, err := token.NewIssuer([]byte("test-secret"), "test-issuer", time.Hour)
	require.NoError(t, err)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, err := accounts.NewService(st, accounts.Base64Codec{}, tokens,
		accounts.WithSleeper(latency.None),
		accounts.WithNowTime(func() time.Time { return now }),
		accounts.WithRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, err)

	return &testFixture{store: st, tokens: tokens, service: svc, now: now}
}

func (f *testFixture) signUp(t *testing.T) *accounts.AuthResult {
	t.Helper()
	result, err := f.service.SignUp(context.Background(), testEmail, testPassword, testFullName)
	require.NoError(t, err)
	return result
}

func TestSignUp_CreatesAccountAndSession(t *testing.T) {
	f := setupTestFixture(t)

	result := f.signUp(t)

	require.Equal(t, testEmail, result.User.Email)
	require.Equal(t, testFullName, result.User.FullName)
	require.False(t, result.User.IsPremium)
	require.NotEmpty(t, result.User.ID)
	require.NotEmpty(t, result.Session.AccessToken)

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, result.User.ID, current.ID)
	require.Equal(t, testEmail, current.Email)
}

func TestSignUp_TokenCarriesIdentity(t *testing.T) {
	f := setupTestFixture(t)

	result := f.signUp(t)

	identity, err := f.tokens.Verify(result.Session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, identity.UserID)
	require.Equal(t, testEmail, identity.Email)
}

func TestSignUp_DuplicateLeavesStateUnchanged(t *testing.T) {
	f := setupTestFixture(t)
	first := f.signUp(t)

	_, err := f.service.SignUp(context.Background(), testEmail, "OtherPassword", "Impostor")
	require.ErrorIs(t, err, accounts.ErrDuplicateAccount)

	// Session still belongs to the first registration.
	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, first.User.ID, current.ID)
	require.Equal(t, testFullName, current.FullName)

	stats, err := f.service.DirectoryStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalAccounts)
}

func TestSignUp_SessionBlobOmitsCredential(t *testing.T) {
	f := setupTestFixture(t)
	f.signUp(t)

	raw, ok, err := f.store.Get(context.Background(), "ai_genie_user")
	require.NoError(t, err)
	require.True(t, ok)

	var blob map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &blob))
	require.NotContains(t, blob, "password_hash")
}

func TestSignIn_Success(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.signUp(t)
	require.NoError(t, f.service.SignOut(context.Background()))

	result, err := f.service.SignIn(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, result.User.ID)
	require.NotEmpty(t, result.Session.AccessToken)

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, registered.User.ID, current.ID)
}

func TestSignIn_UnknownAccount(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.SignIn(context.Background(), "nobody@example.com", testPassword)
	require.ErrorIs(t, err, accounts.ErrAccountNotFound)

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestSignIn_WrongPassword(t *testing.T) {
	f := setupTestFixture(t)
	f.signUp(t)
	require.NoError(t, f.service.SignOut(context.Background()))

	_, err := f.service.SignIn(context.Background(), testEmail, "wrong-password")
	require.ErrorIs(t, err, accounts.ErrInvalidCredential)

	// Failed attempt must not resurrect the session.
	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestSignOut_ClearsSession(t *testing.T) {
	f := setupTestFixture(t)
	f.signUp(t)

	require.NoError(t, f.service.SignOut(context.Background()))

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, current)

	// Directory entry survives sign-out.
	stats, err := f.service.DirectoryStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalAccounts)
}

func TestSignOut_Idempotent(t *testing.T) {
	f := setupTestFixture(t)

	require.NoError(t, f.service.SignOut(context.Background()))
	require.NoError(t, f.service.SignOut(context.Background()))
}

func TestCurrentUser_NoSession(t *testing.T) {
	f := setupTestFixture(t)

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestCurrentUser_MarkerMustBeTrue(t *testing.T) {
	f := setupTestFixture(t)
	f.signUp(t)

	require.NoError(t, f.store.Set(context.Background(), "ai_genie_authenticated", "yes"))

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestCurrentUser_CorruptSessionBlob(t *testing.T) {
	f := setupTestFixture(t)
	f.signUp(t)

	require.NoError(t, f.store.Set(context.Background(), "ai_genie_user", "{not json"))

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, current)
}

// Profile resolves to the session record regardless of the id argument.
func TestProfile_IgnoresID(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.signUp(t)

	profile, err := f.service.Profile(context.Background(), "someone-else")
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Equal(t, registered.User.ID, profile.ID)
}

func TestProfile_NoSession(t *testing.T) {
	f := setupTestFixture(t)

	profile, err := f.service.Profile(context.Background(), "any")
	require.NoError(t, err)
	require.Nil(t, profile)
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	f := setupTestFixture(t)
	registered := f.signUp(t)

	updated, err := f.service.UpdateProfile(context.Background(), registered.User.ID, accounts.ProfileUpdate{
		FullName:  utils.Ptr("Alice Updated"),
		AvatarURL: utils.Ptr("https://example.com/alice.png"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Alice Updated", updated.FullName)
	require.Equal(t, "https://example.com/alice.png", updated.AvatarURL)
	require.Equal(t, testEmail, updated.Email)
	require.False(t, updated.IsPremium)

	// The update lands in the directory entry too, so a later sign-in
	// restores the new fields.
	require.NoError(t, f.service.SignOut(context.Background()))
	result, err := f.service.SignIn(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	require.Equal(t, "Alice Updated", result.User.FullName)
}

func TestUpdateProfile_PremiumFlag(t *testing.T) {
	f := setupTestFixture(t)
	f.signUp(t)

	updated, err := f.service.UpdateProfile(context.Background(), "", accounts.ProfileUpdate{
		IsPremium: utils.Ptr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.IsPremium)
	require.Equal(t, testFullName, updated.FullName)
}

func TestUpdateProfile_NoSession(t *testing.T) {
	f := setupTestFixture(t)

	updated, err := f.service.UpdateProfile(context.Background(), "", accounts.ProfileUpdate{
		FullName: utils.Ptr("Ghost"),
	})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestClearAll_WipesEverything(t *testing.T) {
	f := setupTestFixture(t)
	f.signUp(t)

	require.NoError(t, f.service.ClearAll(context.Background()))

	current, err := f.service.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, current)

	stats, err := f.service.DirectoryStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalAccounts)
}

// End-to-end identity scenario: register, duplicate rejection, sign-out,
// wrong password, successful sign-in.
func TestIdentityScenario(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	_, err := f.service.SignUp(ctx, "alice@example.com", "secret1", "Alice")
	require.NoError(t, err)
	stats, err := f.service.DirectoryStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalAccounts)

	_, err = f.service.SignUp(ctx, "alice@example.com", "secret2", "Alice Again")
	require.ErrorIs(t, err, accounts.ErrDuplicateAccount)
	stats, err = f.service.DirectoryStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.TotalAccounts)

	require.NoError(t, f.service.SignOut(ctx))

	_, err = f.service.SignIn(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, accounts.ErrInvalidCredential)

	result, err := f.service.SignIn(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", result.User.Email)
	require.Empty(t, result.User.PasswordHash)
}

func TestSignUp_TimestampsFromClock(t *testing.T) {
	f := setupTestFixture(t)

	result := f.signUp(t)

	expected := f.now.UTC().Format(time.RFC3339)
	require.Equal(t, expected, result.User.CreatedAt)
	require.Equal(t, expected, result.User.UpdatedAt)
}
