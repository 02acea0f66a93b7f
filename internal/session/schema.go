package session

import (
	"fmt"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

const currentSchemaVersion = 1

type sessionRecord struct {
	Version int           `toml:"version"`
	Account accountSchema `toml:"account"`
}

type accountListRecord struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

type accountSchema struct {
	ID          string            `toml:"id"`
	Email       string            `toml:"email"`
	DisplayName string            `toml:"display_name"`
	Preferences preferencesSchema `toml:"preferences"`
	CreatedAt   string            `toml:"created_at"`
}

type preferencesSchema struct {
	Theme         string `toml:"theme"`
	Notifications bool   `toml:"notifications"`
	Newsletter    bool   `toml:"newsletter"`
}

func validateVersion(version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("%w: unsupported schema version %d (current %d)",
			domain.ErrMalformedRecord, version, currentSchemaVersion)
	}

	return nil
}

func encodeSessionRecord(account domain.Account) (string, error) {
	data, err := toml.Marshal(sessionRecord{
		Version: currentSchemaVersion,
		Account: toAccountSchema(account),
	})
	if err != nil {
		return "", fmt.Errorf("encode session record: %w", err)
	}

	return string(data), nil
}

func decodeSessionRecord(raw string) (domain.Account, error) {
	var record sessionRecord
	if err := toml.Unmarshal([]byte(raw), &record); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if err := validateVersion(record.Version); err != nil {
		return domain.Account{}, err
	}
	if record.Account.ID == "" {
		return domain.Account{}, fmt.Errorf("%w: session record has no account id", domain.ErrMalformedRecord)
	}

	return fromAccountSchema(record.Account), nil
}

func encodeAccountList(accounts []domain.Account) (string, error) {
	record := accountListRecord{Version: currentSchemaVersion}
	for _, account := range accounts {
		record.Accounts = append(record.Accounts, toAccountSchema(account))
	}

	data, err := toml.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode account list: %w", err)
	}

	return string(data), nil
}

func decodeAccountList(raw string) ([]domain.Account, error) {
	var record accountListRecord
	if err := toml.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if err := validateVersion(record.Version); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(record.Accounts))
	for _, entry := range record.Accounts {
		accounts = append(accounts, fromAccountSchema(entry))
	}

	return accounts, nil
}

func toAccountSchema(account domain.Account) accountSchema {
	return accountSchema{
		ID:          string(account.ID),
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Preferences: preferencesSchema{
			Theme:         string(account.Preferences.Theme),
			Notifications: account.Preferences.Notifications,
			Newsletter:    account.Preferences.Newsletter,
		},
		CreatedAt: formatTime(account.CreatedAt),
	}
}

func fromAccountSchema(account accountSchema) domain.Account {
	theme := domain.Theme(account.Preferences.Theme)
	if !theme.Valid() {
		theme = domain.ThemeLight
	}

	return domain.Account{
		ID:          domain.AccountID(account.ID),
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Preferences: domain.Preferences{
			Theme:         theme,
			Notifications: account.Preferences.Notifications,
			Newsletter:    account.Preferences.Newsletter,
		},
		CreatedAt: parseTime(account.CreatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
