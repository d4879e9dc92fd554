package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"

	"github.com/rs/zerolog"
)

// oauthStateTTL bounds how long a consent redirect may take before the
// state token expires.
const oauthStateTTL = 10 * time.Minute

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	oauth      ports.GoogleOAuthClient
	stateStore ports.OAuthStateStore
	tokenSvc   ports.TokenService
	transactor ports.DBTransactor
	currency   string
	log        zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	oauth ports.GoogleOAuthClient,
	stateStore ports.OAuthStateStore,
	tokenSvc ports.TokenService,
	transactor ports.DBTransactor,
	currency string,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		oauth:      oauth,
		stateStore: stateStore,
		tokenSvc:   tokenSvc,
		transactor: transactor,
		currency:   currency,
		log:        log,
	}
}

// GoogleAuthURL issues a single-use state token and returns the Google
// consent URL carrying it.
func (s *AuthServiceImpl) GoogleAuthURL(ctx context.Context) (string, error) {
	state, err := generateRandomHex(32)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("generate state: %w", err))
	}

	ok, err := s.stateStore.Issue(ctx, state, oauthStateTTL)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("issue state: %w", err))
	}
	if !ok {
		return "", apperror.InternalError(fmt.Errorf("state token collision"))
	}

	return s.oauth.AuthURL(state), nil
}

// HandleGoogleCallback consumes the state token, exchanges the code for a
// Google profile and signs the user in. First logins get a user row and a
// zero-balance wallet, provisioned together.
func (s *AuthServiceImpl) HandleGoogleCallback(ctx context.Context, state, code string) (*ports.LoginResult, error) {
	if state == "" || code == "" {
		return nil, apperror.Validation("state and code are required")
	}

	// Each state token authenticates exactly one callback
	ok, err := s.stateStore.Consume(ctx, state)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("consume state: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInvalidToken()
	}

	profile, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.log.Warn().Err(err).Msg("google code exchange failed")
		return nil, apperror.Validation("invalid authorization code")
	}

	user, err := s.findUser(ctx, profile)
	if err != nil {
		return nil, err
	}

	var wallet *domain.Wallet
	if user == nil {
		user, wallet, err = s.provision(ctx, profile)
		if err != nil {
			return nil, err
		}
	} else {
		wallet, err = s.walletRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load wallet: %w", err))
		}
		if wallet == nil {
			// A past partial provisioning left the user without a wallet
			wallet, err = s.provisionWallet(ctx, user)
			if err != nil {
				return nil, err
			}
		}
	}

	token, expiresAt, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("user logged in successfully")

	return &ports.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		Wallet:    wallet,
	}, nil
}

// findUser matches a Google profile to an existing account, by Google ID
// first and by email for accounts that predate the link.
func (s *AuthServiceImpl) findUser(ctx context.Context, profile *ports.GoogleProfile) (*domain.User, error) {
	user, err := s.userRepo.GetByGoogleID(ctx, profile.GoogleID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user by google id: %w", err))
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user by email: %w", err))
	}
	return user, nil
}

// provision creates the user and their wallet in one database transaction.
func (s *AuthServiceImpl) provision(ctx context.Context, profile *ports.GoogleProfile) (*domain.User, *domain.Wallet, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	user := domain.NewUser(profile.Email, profile.FullName, profile.GoogleID)
	if err := s.userRepo.Create(ctx, dbTx, user); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	wallet := domain.NewWallet(user.ID, s.currency)
	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("wallet_number", wallet.WalletNumber).
		Msg("user provisioned successfully")

	return user, wallet, nil
}

func (s *AuthServiceImpl) provisionWallet(ctx context.Context, user *domain.User) (*domain.Wallet, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet := domain.NewWallet(user.ID, s.currency)
	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return wallet, nil
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
