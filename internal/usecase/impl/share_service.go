package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"waitline/config"
	deliverycontext "waitline/internal/delivery/context"
	domainerrors "waitline/internal/domain/errors"
	"waitline/internal/domain/repository"
	"waitline/internal/domain/service"
	"waitline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shareService implements the ShareUsecase interface.
type shareService struct {
	deviceRepo   repository.DeviceRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	clock        service.Clock
	boostFactors map[string]float64
	landingURL   string
	logger       *slog.Logger
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Publisher  service.EventPublisher
	QRService  service.QRCodeService
	Clock      service.Clock
	Config     *config.Config
	Logger     *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	return &shareService{
		deviceRepo:   params.DeviceRepo,
		publisher:    params.Publisher,
		qrService:    params.QRService,
		clock:        params.Clock,
		boostFactors: params.Config.Share.BoostFactors(),
		landingURL:   params.Config.Share.LandingBaseURL,
		logger:       params.Logger,
	}
}

// Share rewards a device for sharing on a recognized channel by shrinking
// its priority key. A smaller key means an earlier place; the reduction is a
// single atomic update so concurrent shares for the same device compose
// instead of clobbering each other.
func (srv *shareService) Share(ctx context.Context, input *usecase.ShareInput) (*usecase.ShareOutput, error) {
	factor, ok := srv.boostFactors[input.Channel]
	if !ok {
		return nil, domainerrors.ErrInvalidShareChannel
	}

	newPriority, err := srv.deviceRepo.BoostPriority(ctx, input.DeviceID, 1-factor)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrShareDeviceNotFound
		}

		return nil, mapStoreError(ctx, srv.logger, "share", err)
	}

	srv.publishBoost(ctx, input, newPriority)

	return &usecase.ShareOutput{Priority: newPriority}, nil
}

// ShareQR renders a QR code pointing at the landing page, for print and
// offline sharing.
func (srv *shareService) ShareQR(ctx context.Context, deviceID string) ([]byte, error) {
	shareURL := srv.landingURL
	if deviceID != "" {
		shareURL = fmt.Sprintf("%s?ref=%s", srv.landingURL, url.QueryEscape(deviceID))
	}

	png, err := srv.qrService.GenerateShareQR(shareURL)
	if err != nil {
		return nil, mapStoreError(ctx, srv.logger, "share_qr", errors.Wrap(err, "failed to generate QR code"))
	}

	return png, nil
}

func (srv *shareService) publishBoost(ctx context.Context, input *usecase.ShareInput, newPriority int64) {
	event := &service.QueueEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventPriorityBoosted,
		DeviceID:   input.DeviceID,
		Priority:   newPriority,
		OccurredAt: srv.clock.Now(),
	}

	if err := srv.publisher.PublishQueueEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish boost event",
			slog.String("device_id", input.DeviceID),
			slog.String("channel", input.Channel),
			slog.Any("error", err),
		)
	}
}
