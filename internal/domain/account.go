package domain

import "time"

type AccountID string

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

type Preferences struct {
	Theme         Theme
	Notifications bool
	Newsletter    bool
}

// DefaultPreferences is what every freshly registered account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         ThemeLight,
		Notifications: true,
		Newsletter:    false,
	}
}

type Account struct {
	ID          AccountID
	Email       string
	DisplayName string
	Preferences Preferences
	CreatedAt   time.Time
}

// ProfileUpdate carries an arbitrary subset of the mutable account fields.
// Nil fields are left untouched when the update is applied.
type ProfileUpdate struct {
	DisplayName *string
	Email       *string
	Preferences *Preferences
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Email == nil && u.Preferences == nil
}

// ApplyTo merges the update onto a copy of the account. ID and CreatedAt
// are immutable and never touched.
func (u ProfileUpdate) ApplyTo(account Account) Account {
	if u.DisplayName != nil {
		account.DisplayName = *u.DisplayName
	}
	if u.Email != nil {
		account.Email = *u.Email
	}
	if u.Preferences != nil {
		account.Preferences = *u.Preferences
	}

	return account
}
