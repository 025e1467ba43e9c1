package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"waitline/config"
	"waitline/internal/domain/entity"
	domainerrors "waitline/internal/domain/errors"
	"waitline/internal/domain/repository"
	"waitline/internal/domain/service"
	"waitline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// signupService implements the SignupUsecase interface.
type signupService struct {
	txManager     repository.TransactionManager
	mailSender    service.MailSender
	clock         service.Clock
	validationURL string
	logger        *slog.Logger
}

// SignupServiceParams holds dependencies for SignupService, injected by Fx.
type SignupServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MailSender service.MailSender
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSignupService is the constructor for signupService.
func NewSignupService(params SignupServiceParams) usecase.SignupUsecase {
	validationURL := ""
	if params.Config.Mail != nil {
		validationURL = params.Config.Mail.ValidationBaseURL
	}

	return &signupService{
		txManager:     params.TxManager,
		mailSender:    params.MailSender,
		clock:         params.Clock,
		validationURL: validationURL,
		logger:        params.Logger,
	}
}

// RequestUpdates records a pending signup behind an opaque hash and mails a
// validation link. The address is never considered confirmed until the link
// is followed; repeated requests for the same address simply mint a fresh
// hash.
func (srv *signupService) RequestUpdates(ctx context.Context, input *usecase.SignupInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domainerrors.ErrSignupInvalid
	}

	hash, err := signupHash(email, input.DeviceID)
	if err != nil {
		return mapStoreError(ctx, srv.logger, "signup_hash", err)
	}

	request := &entity.SignupRequest{
		Hash:      hash,
		Email:     email,
		DeviceID:  input.DeviceID,
		CreatedAt: srv.clock.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.SignupRepo().CreateRequest(ctx, request)
	})
	if err != nil {
		return mapStoreError(ctx, srv.logger, "signup_request", err)
	}

	// Mail goes out after the row committed; a dead mail relay must not
	// roll back the request the link validates against.
	validationURL := fmt.Sprintf("%s/%s", strings.TrimRight(srv.validationURL, "/"), hash)
	if err := srv.mailSender.SendValidationMail(ctx, email, validationURL); err != nil {
		srv.logger.Warn("Failed to send validation mail",
			slog.String("email", email),
			slog.Any("error", err),
		)
	}

	return nil
}

// ConfirmEmail resolves a validation hash: the pending request becomes a
// confirmed signup, the originating device (when one was given) is linked to
// it, and the request row is consumed so the link is single use.
func (srv *signupService) ConfirmEmail(ctx context.Context, hash string) (*usecase.ConfirmOutput, error) {
	if hash == "" {
		return nil, domainerrors.ErrSignupInvalid
	}

	var out *usecase.ConfirmOutput

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		signupRepo := repos.SignupRepo()

		request, err := signupRepo.FindRequestByHash(ctx, hash)
		if err != nil {
			if errors.Is(err, repository.ErrSignupRequestNotFound) {
				return domainerrors.ErrSignupInvalid
			}

			return errors.Wrap(err, "failed to look up signup request")
		}

		signup, err := signupRepo.UpsertSignup(ctx, request.Email)
		if err != nil {
			return errors.Wrap(err, "failed to record signup")
		}

		if request.DeviceID != "" {
			if err := signupRepo.LinkDevice(ctx, signup.ID, request.DeviceID); err != nil {
				return errors.Wrap(err, "failed to link device to signup")
			}
		}

		if err := signupRepo.DeleteRequest(ctx, hash); err != nil {
			return errors.Wrap(err, "failed to consume signup request")
		}

		out = &usecase.ConfirmOutput{Email: request.Email}

		return nil
	})
	if err != nil {
		return nil, mapStoreError(ctx, srv.logger, "signup_confirm", err)
	}

	return out, nil
}

// signupHash derives the opaque validation token. The random salt keeps the
// hash unguessable even for a known address.
func signupHash(email, deviceID string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate signup salt")
	}

	sum := sha256.New()
	sum.Write(salt)
	sum.Write([]byte(email))
	sum.Write([]byte(deviceID))

	return hex.EncodeToString(sum.Sum(nil)), nil
}
