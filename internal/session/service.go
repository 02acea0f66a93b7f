package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
	"github.com/sparkvibe/sparkvibe-cli/internal/ports"
)

// Blob-store keys. One record for the signed-in account, one for the full
// account list, and one credential record per account id.
const (
	currentSessionKey   = "current-session"
	accountListKey      = "account-list"
	credentialKeyPrefix = "credential:"
)

// DefaultLatency matches the simulated network round-trip of the original
// sign-in and sign-up flows.
const DefaultLatency = time.Second

// Service is the single authority for account registration, credential
// checking, session establishment and profile mutation. It synchronizes the
// blob store before updating its in-memory session, so a restart after any
// completed operation observes consistent state.
type Service struct {
	store   ports.BlobStore
	clock   ports.Clock
	logger  *zap.Logger
	latency time.Duration
	newID   func() string

	mu      sync.RWMutex
	current domain.Session
}

type Option func(*Service)

func WithClock(clock ports.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

func WithLatency(latency time.Duration) Option {
	return func(s *Service) { s.latency = latency }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(store ports.BlobStore, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		store:   store,
		clock:   ports.SystemClock{},
		logger:  logger,
		latency: DefaultLatency,
		newID:   uuid.NewString,
		current: domain.Session{Loading: true},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Session returns a snapshot of the current session. The account is copied
// so callers cannot mutate the service's view.
func (s *Service) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.current
	if s.current.Account != nil {
		account := *s.current.Account
		snapshot.Account = &account
	}

	return snapshot
}

// Restore loads the persisted current-session record. It never fails the
// caller: an absent or malformed record degrades to signed-out, and either
// way the session leaves its loading state.
func (s *Service) Restore(ctx context.Context) {
	raw, err := s.store.Get(ctx, currentSessionKey)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.logger.Warn("session restore failed", zap.Error(err))
		}
		s.setSignedOut()
		return
	}

	account, err := decodeSessionRecord(raw)
	if err != nil {
		s.logger.Warn("discarding malformed session record", zap.Error(err))
		s.setSignedOut()
		return
	}

	s.setSignedIn(account)
	s.logger.Debug("session restored", zap.String("account_id", string(account.ID)))
}

// Register creates a new account and signs it in. The email must not match
// any stored account (comparison is exact, including case).
func (s *Service) Register(ctx context.Context, email, password, displayName string) (domain.Account, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return domain.Account{}, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("load account list: %w", err)
	}

	for _, existing := range accounts {
		if existing.Email == email {
			return domain.Account{}, domain.ErrDuplicateEmail
		}
	}

	account := domain.Account{
		ID:          domain.AccountID(s.newID()),
		Email:       email,
		DisplayName: displayName,
		Preferences: domain.DefaultPreferences(),
		CreatedAt:   s.clock.Now(),
	}
	accounts = append(accounts, account)

	if err := s.store.Set(ctx, credentialKey(account.ID), password); err != nil {
		return domain.Account{}, fmt.Errorf("store credential: %w", err)
	}
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return domain.Account{}, err
	}
	if err := s.saveCurrent(ctx, account); err != nil {
		return domain.Account{}, err
	}

	s.setSignedIn(account)
	s.logger.Info("account registered", zap.String("account_id", string(account.ID)))

	return account, nil
}

// Login checks the supplied credential against the stored one and, on an
// exact match, establishes the session.
func (s *Service) Login(ctx context.Context, email, password string) (domain.Account, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return domain.Account{}, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("load account list: %w", err)
	}

	var account *domain.Account
	for i := range accounts {
		if accounts[i].Email == email {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	stored, err := s.store.Get(ctx, credentialKey(account.ID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Account{}, domain.ErrInvalidCredential
		}
		return domain.Account{}, fmt.Errorf("load credential: %w", err)
	}
	if stored != password {
		return domain.Account{}, domain.ErrInvalidCredential
	}

	if err := s.saveCurrent(ctx, *account); err != nil {
		return domain.Account{}, err
	}

	s.setSignedIn(*account)
	s.logger.Info("account signed in", zap.String("account_id", string(account.ID)))

	return *account, nil
}

// Logout clears the persisted session record and resets the in-memory
// session. It has no failure mode: a persistence error is logged and the
// in-memory session is reset regardless.
func (s *Service) Logout(ctx context.Context) {
	if err := s.store.Remove(ctx, currentSessionKey); err != nil {
		s.logger.Warn("clear persisted session", zap.Error(err))
	}

	s.setSignedOut()
	s.logger.Debug("session cleared")
}

// UpdateProfile merges the update onto the signed-in account and persists it
// both as the current session and as the matching account-list entry. When
// nobody is signed in the call is a no-op.
func (s *Service) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	s.mu.RLock()
	account := s.current.Account
	s.mu.RUnlock()

	if account == nil {
		s.logger.Debug("profile update ignored: no signed-in account")
		return nil
	}

	merged := update.ApplyTo(*account)

	if err := s.saveCurrent(ctx, merged); err != nil {
		return err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return fmt.Errorf("load account list: %w", err)
	}
	for i := range accounts {
		if accounts[i].ID == merged.ID {
			accounts[i] = merged
			if err := s.saveAccounts(ctx, accounts); err != nil {
				return err
			}
			break
		}
	}

	s.setSignedIn(merged)
	s.logger.Debug("profile updated", zap.String("account_id", string(merged.ID)))

	return nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) loadAccounts(ctx context.Context) ([]domain.Account, error) {
	raw, err := s.store.Get(ctx, accountListKey)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return decodeAccountList(raw)
}

func (s *Service) saveAccounts(ctx context.Context, accounts []domain.Account) error {
	encoded, err := encodeAccountList(accounts)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, accountListKey, encoded); err != nil {
		return fmt.Errorf("store account list: %w", err)
	}

	return nil
}

func (s *Service) saveCurrent(ctx context.Context, account domain.Account) error {
	encoded, err := encodeSessionRecord(account)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, currentSessionKey, encoded); err != nil {
		return fmt.Errorf("store session record: %w", err)
	}

	return nil
}

func (s *Service) setSignedIn(account domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = domain.Session{Authenticated: true, Account: &account}
}

func (s *Service) setSignedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = domain.Session{}
}

func credentialKey(id domain.AccountID) string {
	return credentialKeyPrefix + string(id)
}
