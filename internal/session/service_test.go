package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memoryblob "github.com/sparkvibe/sparkvibe-cli/internal/adapters/blob/memory"
	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestService(store *memoryblob.Store) *Service {
	counter := 0

	return NewService(store, nil,
		WithLatency(0),
		WithClock(fixedClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}),
		WithIDGenerator(func() string {
			counter++
			return fmt.Sprintf("acc-%d", counter)
		}),
	)
}

func TestSessionStartsInLoadingState(t *testing.T) {
	t.Parallel()

	svc := newTestService(memoryblob.NewStore())

	sess := svc.Session()
	assert.True(t, sess.Loading)
	assert.False(t, sess.Authenticated)
	assert.Nil(t, sess.Account)
}

func TestRegisterEstablishesSessionAndPersistsRecords(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)

	account, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	assert.Equal(t, domain.AccountID("acc-1"), account.ID)
	assert.Equal(t, "ada@example.com", account.Email)
	assert.Equal(t, "Ada", account.DisplayName)
	assert.Equal(t, domain.DefaultPreferences(), account.Preferences)
	assert.Equal(t, time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC), account.CreatedAt)

	sess := svc.Session()
	require.True(t, sess.Authenticated)
	require.NotNil(t, sess.Account)
	assert.Equal(t, account, *sess.Account)
	assert.False(t, sess.Loading)

	// The credential lives in its own record, outside the account list.
	credential, err := store.Get(context.Background(), "credential:acc-1")
	require.NoError(t, err)
	assert.Equal(t, "hunter22", credential)

	rawList, err := store.Get(context.Background(), accountListKey)
	require.NoError(t, err)
	assert.NotContains(t, rawList, "hunter22")
}

func TestRegisterThenLoginYieldsSameAccount(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)

	registered, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	loggedIn, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.Equal(t, registered, loggedIn)
}

func TestRegisterDuplicateEmailLeavesAccountListUnchanged(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	before, err := store.Get(context.Background(), accountListKey)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "ada@example.com", "other-pass", "Imposter")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	after, err := store.Get(context.Background(), accountListKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRegisterEmailUniquenessIsCaseSensitive(t *testing.T) {
	t.Parallel()

	svc := newTestService(memoryblob.NewStore())

	_, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Ada@example.com", "hunter22", "Ada Again")
	require.NoError(t, err)
}

func TestLoginFailuresLeaveSessionUnauthenticated(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	setup := newTestService(store)
	_, err := setup.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)
	setup.Logout(context.Background())

	svc := newTestService(store)
	svc.Restore(context.Background())

	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter22")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.False(t, svc.Session().Authenticated)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong-pass")
	require.ErrorIs(t, err, domain.ErrInvalidCredential)
	assert.False(t, svc.Session().Authenticated)
}

func TestLogoutClearsSessionAcrossRestart(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	svc.Logout(context.Background())

	sess := svc.Session()
	assert.False(t, sess.Authenticated)
	assert.Nil(t, sess.Account)

	restarted := newTestService(store)
	restarted.Restore(context.Background())
	assert.False(t, restarted.Session().Authenticated)
}

func TestRestoreRoundTripAfterRegister(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)

	registered, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	restarted := newTestService(store)
	restarted.Restore(context.Background())

	sess := restarted.Session()
	require.True(t, sess.Authenticated)
	require.NotNil(t, sess.Account)
	assert.Equal(t, registered, *sess.Account)
	assert.False(t, sess.Loading)
}

func TestRestoreMalformedRecordDegradesToSignedOut(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	require.NoError(t, store.Set(context.Background(), currentSessionKey, "not toml at all }}}"))

	svc := newTestService(store)
	svc.Restore(context.Background())

	sess := svc.Session()
	assert.False(t, sess.Authenticated)
	assert.Nil(t, sess.Account)
	assert.False(t, sess.Loading)
}

func TestRestoreUnsupportedSchemaVersionDegradesToSignedOut(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	record := "version = 99\n\n[account]\nid = \"acc-1\"\nemail = \"ada@example.com\"\n"
	require.NoError(t, store.Set(context.Background(), currentSessionKey, record))

	svc := newTestService(store)
	svc.Restore(context.Background())

	assert.False(t, svc.Session().Authenticated)
}

func TestUpdateProfilePersistsAcrossRestart(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	newName := "Ada Lovelace"
	prefs := domain.Preferences{Theme: domain.ThemeDark, Notifications: false, Newsletter: true}
	err = svc.UpdateProfile(context.Background(), domain.ProfileUpdate{
		DisplayName: &newName,
		Preferences: &prefs,
	})
	require.NoError(t, err)

	sess := svc.Session()
	require.NotNil(t, sess.Account)
	assert.Equal(t, newName, sess.Account.DisplayName)
	assert.Equal(t, prefs, sess.Account.Preferences)

	restarted := newTestService(store)
	restarted.Restore(context.Background())
	require.NotNil(t, restarted.Session().Account)
	assert.Equal(t, newName, restarted.Session().Account.DisplayName)
	assert.Equal(t, prefs, restarted.Session().Account.Preferences)

	// The account-list entry was rewritten too, so a fresh login sees the
	// merged profile.
	restarted.Logout(context.Background())
	loggedIn, err := restarted.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, newName, loggedIn.DisplayName)
}

func TestUpdateProfileWhileSignedOutIsNoOp(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)
	svc.Restore(context.Background())

	name := "Ghost"
	require.NoError(t, svc.UpdateProfile(context.Background(), domain.ProfileUpdate{DisplayName: &name}))

	assert.Equal(t, 0, store.Len())
	assert.False(t, svc.Session().Authenticated)
}

func TestEmailUniquenessHoldsAfterRegisterSequence(t *testing.T) {
	t.Parallel()

	store := memoryblob.NewStore()
	svc := newTestService(store)

	emails := []string{"a@example.com", "b@example.com", "c@example.com", "a@example.com", "b@example.com"}
	for _, email := range emails {
		_, _ = svc.Register(context.Background(), email, "hunter22", "Someone")
	}

	accounts, err := svc.loadAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	seen := map[string]bool{}
	for _, account := range accounts {
		assert.False(t, seen[account.Email], "duplicate email %q", account.Email)
		seen[account.Email] = true
	}
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	svc := newTestService(memoryblob.NewStore())

	_, err := svc.Register(context.Background(), "ada@example.com", "hunter22", "Ada")
	require.NoError(t, err)

	snapshot := svc.Session()
	snapshot.Account.DisplayName = "Mutated"

	assert.Equal(t, "Ada", svc.Session().Account.DisplayName)
}

func TestSimulatedLatencyRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	svc := NewService(memoryblob.NewStore(), nil, WithLatency(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "ada@example.com", "hunter22")
	require.ErrorIs(t, err, context.Canceled)
}
