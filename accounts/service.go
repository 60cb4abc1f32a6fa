// Package accounts implements the identity operations of the server:
// sign-up, sign-in, sign-out, session restore, and profile read/update.
//
// All state lives in two blobs of the injected key-value store: the account
// directory (email -> account record, credential included) and the session
// record (one credential-stripped account plus an authenticated marker).
// At most one session exists at a time; the store is a single-user
// mirror of browser localStorage, not a multi-session system.
package accounts

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/aigenie/genie-server/internal/ident"
	"github.com/aigenie/genie-server/internal/latency"
	"github.com/aigenie/genie-server/store"
	"github.com/aigenie/genie-server/token"
)

// Store keys owned by this package.
const (
	directoryKey     = "ai_genie_users_db"
	sessionKey       = "ai_genie_user"
	authenticatedKey = "ai_genie_authenticated"
)

// Emulated network latency of the vendor SDK calls being simulated.
const (
	signUpDelay = 1200 * time.Millisecond
	signInDelay = 800 * time.Millisecond
)

const authenticatedMarker = "true"

// Service orchestrates identity operations against the account directory
// and session state. It serializes its read-modify-write cycles with a
// mutex so concurrent requests cannot interleave directory writes.
type Service struct {
	store   store.Store
	codec   CredentialCodec
	tokens  *token.Issuer
	nowTime func() time.Time
	sleep   latency.Sleeper
	rand    *rand.Rand
	lock    sync.Mutex
}

// Option modifies a Service instance.
type Option func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Service) { s.nowTime = nowFunc }
}

// WithSleeper sets the latency capability (tests pass latency.None).
func WithSleeper(sleep latency.Sleeper) Option {
	return func(s *Service) { s.sleep = sleep }
}

// WithRand sets the random source used for identifier suffixes.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rand = r }
}

// NewService initializes an account Service with required dependencies.
func NewService(st store.Store, codec CredentialCodec, tokens *token.Issuer, options ...Option) (*Service, error) {
	if st == nil {
		return nil, errors.New("[NewService] store is required")
	}
	if codec == nil {
		return nil, errors.New("[NewService] credential codec is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewService] token issuer is required")
	}

	svc := &Service{
		store:   st,
		codec:   codec,
		tokens:  tokens,
		nowTime: time.Now,
		sleep:   latency.Wait,
		rand:    ident.NewSource(),
	}
	for _, opt := range options {
		opt(svc)
	}
	return svc, nil
}

// SignUp registers a new account and signs it in, overwriting any existing
// session. Fails with ErrDuplicateAccount if the email is already present;
// no state is written on failure.
func (s *Service) SignUp(ctx context.Context, email, password, fullName string) (*AuthResult, error) {
	if err := s.sleep(ctx, signUpDelay); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[SignUp] loadDirectory")
	}
	if _, exists := dir[email]; exists {
		return nil, ErrDuplicateAccount
	}

	encoded, err := s.codec.Encode(password)
	if err != nil {
		return nil, errors.Wrap(err, "[SignUp] codec.Encode")
	}

	now := s.nowTime()
	account := Account{
		ID:           ident.New(s.rand, now, "user"),
		Email:        email,
		FullName:     fullName,
		IsPremium:    false,
		CreatedAt:    now.UTC().Format(time.RFC3339),
		UpdatedAt:    now.UTC().Format(time.RFC3339),
		PasswordHash: encoded,
	}

	dir[email] = account
	if err := s.saveDirectory(ctx, dir); err != nil {
		return nil, errors.Wrap(err, "[SignUp] saveDirectory")
	}

	return s.establishSession(ctx, account)
}

// SignIn authenticates an existing account and establishes a session,
// overwriting any prior one. Failed attempts leave all state unchanged.
func (s *Service) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := s.sleep(ctx, signInDelay); err != nil {
		return nil, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[SignIn] loadDirectory")
	}

	account, exists := dir[email]
	if !exists {
		return nil, ErrAccountNotFound
	}
	if !s.codec.Verify(password, account.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	return s.establishSession(ctx, account)
}

// SignOut clears the session state unconditionally. Errors only surface
// when the underlying store is unavailable.
func (s *Service) SignOut(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.store.Remove(ctx, authenticatedKey); err != nil {
		return errors.Wrap(err, "[SignOut] remove authenticated marker")
	}
	if err := s.store.Remove(ctx, sessionKey); err != nil {
		return errors.Wrap(err, "[SignOut] remove session")
	}
	return nil
}

// CurrentUser restores the signed-in identity from the session state.
// Absence is a normal result, reported as (nil, nil): the authenticated
// marker must be exactly "true" and the session blob must parse.
func (s *Service) CurrentUser(ctx context.Context) (*Account, error) {
	marker, ok, err := s.store.Get(ctx, authenticatedKey)
	if err != nil {
		return nil, errors.Wrap(err, "[CurrentUser] get authenticated marker")
	}
	if !ok || marker != authenticatedMarker {
		return nil, nil
	}

	raw, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "[CurrentUser] get session")
	}
	if !ok {
		return nil, nil
	}

	var account Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, nil
	}
	return &account, nil
}

// Profile returns the stored session record. The id parameter is accepted
// for interface compatibility but not consulted: the session state holds
// exactly one record, so every lookup resolves to the current user.
func (s *Service) Profile(ctx context.Context, _ string) (*Account, error) {
	raw, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "[Profile] get session")
	}
	if !ok {
		return nil, nil
	}

	var account Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, nil
	}
	return &account, nil
}

// UpdateProfile merges the given partial fields into the session record
// and, when the email key matches, the corresponding directory entry,
// stamping the updated timestamp. With no session present it returns
// (nil, nil) rather than an error; callers decide how to surface that.
func (s *Service) UpdateProfile(ctx context.Context, _ string, updates ProfileUpdate) (*Account, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	raw, ok, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "[UpdateProfile] get session")
	}
	if !ok {
		return nil, nil
	}

	var account Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, nil
	}

	applyUpdate(&account, updates)
	account.UpdatedAt = s.nowTime().UTC().Format(time.RFC3339)

	if err := s.writeSession(ctx, account); err != nil {
		return nil, errors.Wrap(err, "[UpdateProfile] writeSession")
	}

	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[UpdateProfile] loadDirectory")
	}
	if entry, exists := dir[account.Email]; exists {
		applyUpdate(&entry, updates)
		entry.UpdatedAt = account.UpdatedAt
		dir[account.Email] = entry
		if err := s.saveDirectory(ctx, dir); err != nil {
			return nil, errors.Wrap(err, "[UpdateProfile] saveDirectory")
		}
	}

	return &account, nil
}

// DirectoryStats reports the registered accounts. Demo utility.
func (s *Service) DirectoryStats(ctx context.Context) (*Stats, error) {
	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "[DirectoryStats] loadDirectory")
	}

	stats := &Stats{TotalAccounts: len(dir), Accounts: make([]AccountSummary, 0, len(dir))}
	for _, account := range dir {
		stats.Accounts = append(stats.Accounts, AccountSummary{
			Email:   account.Email,
			Name:    account.FullName,
			Created: account.CreatedAt,
		})
	}
	return stats, nil
}

// ClearAll wipes the directory and session state. Demo utility.
func (s *Service) ClearAll(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, key := range []string{sessionKey, authenticatedKey, directoryKey} {
		if err := s.store.Remove(ctx, key); err != nil {
			return errors.Wrapf(err, "[ClearAll] remove %q", key)
		}
	}
	return nil
}

// establishSession persists the credential-stripped session record and the
// authenticated marker, then issues an access token.
func (s *Service) establishSession(ctx context.Context, account Account) (*AuthResult, error) {
	session := account.Redacted()
	if err := s.writeSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "[establishSession] writeSession")
	}
	if err := s.store.Set(ctx, authenticatedKey, authenticatedMarker); err != nil {
		return nil, errors.Wrap(err, "[establishSession] set authenticated marker")
	}

	accessToken, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "[establishSession] tokens.Issue")
	}

	return &AuthResult{User: session, Session: Session{AccessToken: accessToken}}, nil
}

func (s *Service) writeSession(ctx context.Context, account Account) error {
	data, err := json.Marshal(account.Redacted())
	if err != nil {
		return err
	}
	return s.store.Set(ctx, sessionKey, string(data))
}

// loadDirectory reads the directory blob. A blob that fails to parse is
// treated as empty so a corrupt store never blocks registration.
func (s *Service) loadDirectory(ctx context.Context) (directory, error) {
	raw, ok, err := s.store.Get(ctx, directoryKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return directory{}, nil
	}

	var dir directory
	if err := json.Unmarshal([]byte(raw), &dir); err != nil {
		return directory{}, nil
	}
	return dir, nil
}

func (s *Service) saveDirectory(ctx context.Context, dir directory) error {
	data, err := json.Marshal(dir)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, directoryKey, string(data))
}

func applyUpdate(account *Account, updates ProfileUpdate) {
	if updates.FullName != nil {
		account.FullName = *updates.FullName
	}
	if updates.AvatarURL != nil {
		account.AvatarURL = *updates.AvatarURL
	}
	if updates.IsPremium != nil {
		account.IsPremium = *updates.IsPremium
	}
}
