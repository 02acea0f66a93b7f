package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

func TestSessionRecordRoundTrip(t *testing.T) {
	t.Parallel()

	account := domain.Account{
		ID:          "acc-1",
		Email:       "ada@example.com",
		DisplayName: "Ada",
		Preferences: domain.Preferences{Theme: domain.ThemeDark, Notifications: true, Newsletter: true},
		CreatedAt:   time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}

	encoded, err := encodeSessionRecord(account)
	require.NoError(t, err)

	decoded, err := decodeSessionRecord(encoded)
	require.NoError(t, err)
	assert.Equal(t, account, decoded)
}

func TestAccountListRoundTripPreservesEntries(t *testing.T) {
	t.Parallel()

	accounts := []domain.Account{
		{ID: "acc-1", Email: "a@example.com", DisplayName: "A", Preferences: domain.DefaultPreferences()},
		{ID: "acc-2", Email: "b@example.com", DisplayName: "B", Preferences: domain.DefaultPreferences()},
	}

	encoded, err := encodeAccountList(accounts)
	require.NoError(t, err)

	decoded, err := decodeAccountList(encoded)
	require.NoError(t, err)
	assert.Equal(t, accounts, decoded)
}

func TestDecodeSessionRecordRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := decodeSessionRecord("{{{ not toml")
	require.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestDecodeSessionRecordRejectsMissingAccountID(t *testing.T) {
	t.Parallel()

	_, err := decodeSessionRecord("version = 1\n\n[account]\nemail = \"ada@example.com\"\n")
	require.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestDecodeAccountListRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	_, err := decodeAccountList("version = 2\n")
	require.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestFromAccountSchemaNormalizesUnknownTheme(t *testing.T) {
	t.Parallel()

	account := fromAccountSchema(accountSchema{
		ID:          "acc-1",
		Preferences: preferencesSchema{Theme: "neon"},
	})

	assert.Equal(t, domain.ThemeLight, account.Preferences.Theme)
}
