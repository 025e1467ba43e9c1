package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"waitline/config"
	deliverycontext "waitline/internal/delivery/context"
	"waitline/internal/domain/entity"
	domainerrors "waitline/internal/domain/errors"
	"waitline/internal/domain/repository"
	"waitline/internal/domain/service"
	"waitline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Soft-condition messages folded into the response envelope.
const (
	msgInvalidActivationCode  = "Activation code has already been used or does not exist."
	msgDeviceAlreadyInLine    = "Device is already in line."
	msgDeviceAlreadyActivated = "Device is already activated."
)

// admissionService implements the AdmissionUsecase interface.
type admissionService struct {
	txManager       repository.TransactionManager
	publisher       service.EventPublisher
	clock           service.Clock
	prelaunchCutoff time.Time
	logger          *slog.Logger
}

// AdmissionServiceParams holds dependencies for AdmissionService, injected by Fx.
type AdmissionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdmissionService is the constructor for admissionService.
func NewAdmissionService(params AdmissionServiceParams) usecase.AdmissionUsecase {
	return &admissionService{
		txManager:       params.TxManager,
		publisher:       params.Publisher,
		clock:           params.Clock,
		prelaunchCutoff: params.Config.Launch.PrelaunchCutoff,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *admissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enqueue runs one admission attempt in a single transaction. Bad codes,
// duplicates and already-admitted devices are soft conditions: they mark the
// envelope with status 1 but the caller still gets the best-known queue
// position once a device row exists.
func (srv *admissionService) Enqueue(ctx context.Context, input *usecase.EnqueueInput) (*usecase.EnqueueOutput, error) {
	if strings.TrimSpace(input.DeviceID) == "" {
		return nil, domainerrors.ErrDeviceIDRequired
	}

	out := &usecase.EnqueueOutput{}
	var event *service.QueueEvent

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		deviceRepo := repos.DeviceRepo()
		codeRepo := repos.ActivationCodeRepo()

		// A bad code is not a hard failure: the device may still need to be
		// enqueued, so flag the envelope and keep going.
		var code *entity.ActivationCode
		if input.ActivationCode != "" {
			found, err := codeRepo.FindPendingByCode(ctx, input.ActivationCode)
			switch {
			case errors.Is(err, repository.ErrCodeNotFound):
				srv.flagSoft(out, msgInvalidActivationCode)
			case err != nil:
				return errors.Wrap(err, "failed to look up activation code")
			default:
				code = found
			}
		}

		device, err := deviceRepo.FindByID(ctx, input.DeviceID)
		if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(err, "failed to look up device")
		}

		if device == nil {
			event, err = srv.enqueueNewDevice(ctx, deviceRepo, codeRepo, input, code, out)

			return err
		}

		event, err = srv.handleKnownDevice(ctx, deviceRepo, codeRepo, input, code, device, out)

		return err
	})
	if err != nil {
		return nil, mapStoreError(ctx, srv.logger, "enqueue", err)
	}

	srv.publish(ctx, event)

	return out, nil
}

// enqueueNewDevice inserts a device the line has never seen. The insert goes
// first and the activation code is claimed only once the row is known to have
// landed, so a lost insert race can never commit a spent code with no device
// behind it.
func (srv *admissionService) enqueueNewDevice(
	ctx context.Context,
	deviceRepo repository.DeviceRepository,
	codeRepo repository.ActivationCodeRepository,
	input *usecase.EnqueueInput,
	code *entity.ActivationCode,
	out *usecase.EnqueueOutput,
) (*service.QueueEvent, error) {
	now := srv.clock.Now()
	newDevice := &entity.Device{ID: input.DeviceID}
	if code == nil && srv.inPrelaunchWindow(now) {
		// Time-boxed override: before the cutoff everyone is let in directly.
		newDevice.IsActivated = true
		newDevice.ActivatedAt = &now
	}

	err := deviceRepo.Insert(ctx, newDevice)
	if errors.Is(err, repository.ErrDuplicateDevice) {
		// Insert raced a concurrent registration of the same id. The insert
		// resolves the conflict without erroring the statement, so the
		// transaction stays usable and the winner's row is still readable.
		// The code, if any, stays unspent. The remediation matches a normal
		// duplicate: report the existing row's position.
		srv.flagSoft(out, msgDeviceAlreadyInLine)
		existing, ferr := deviceRepo.FindByID(ctx, input.DeviceID)
		if ferr != nil {
			return nil, errors.Wrap(ferr, "failed to reload duplicate device")
		}
		out.Activated = existing.IsActivated

		return nil, srv.fillPlace(ctx, deviceRepo, out, existing.Priority)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert device")
	}

	if code != nil {
		claimed, err := codeRepo.Claim(ctx, code.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to claim activation code")
		}
		if claimed {
			if err := deviceRepo.Activate(ctx, newDevice.ID, code.ID); err != nil {
				return nil, errors.Wrap(err, "failed to activate device")
			}
			newDevice.IsActivated = true
		} else {
			// Lost the claim race; same soft condition as an unknown code.
			srv.flagSoft(out, msgInvalidActivationCode)
		}
	}

	out.Activated = newDevice.IsActivated

	eventType := service.EventDeviceEnqueued
	if newDevice.IsActivated {
		eventType = service.EventDeviceActivated
	}

	if err := srv.fillPlace(ctx, deviceRepo, out, newDevice.Priority); err != nil {
		return nil, err
	}

	return srv.newEvent(ctx, eventType, newDevice.ID, newDevice.Priority, out), nil
}

// handleKnownDevice resolves a repeat admission attempt.
func (srv *admissionService) handleKnownDevice(
	ctx context.Context,
	deviceRepo repository.DeviceRepository,
	codeRepo repository.ActivationCodeRepository,
	input *usecase.EnqueueInput,
	code *entity.ActivationCode,
	device *entity.Device,
	out *usecase.EnqueueOutput,
) (*service.QueueEvent, error) {
	if device.IsActivated {
		// Never spend a code on a device that is already in. The stale
		// priority-derived figures are still reported, matching the
		// launched behavior.
		srv.flagSoft(out, msgDeviceAlreadyActivated)
		out.Activated = true

		return nil, srv.fillPlace(ctx, deviceRepo, out, device.Priority)
	}

	var event *service.QueueEvent
	switch {
	case code != nil:
		claimed, err := codeRepo.Claim(ctx, code.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to claim activation code")
		}
		if !claimed {
			srv.flagSoft(out, msgInvalidActivationCode)

			break
		}
		if err := deviceRepo.Activate(ctx, device.ID, code.ID); err != nil {
			return nil, errors.Wrap(err, "failed to activate device")
		}
		out.Activated = true
	case input.ActivationCode == "":
		// Plain repeat registration.
		srv.flagSoft(out, msgDeviceAlreadyInLine)
	}

	if err := srv.fillPlace(ctx, deviceRepo, out, device.Priority); err != nil {
		return nil, err
	}

	if out.Activated {
		event = srv.newEvent(ctx, service.EventDeviceActivated, device.ID, device.Priority, out)
	}

	return event, nil
}

// fillPlace derives place/total from the priority key. The rank is never
// stored; it is recomputed from one aggregate pass so both figures are
// consistent with each other.
func (srv *admissionService) fillPlace(ctx context.Context, deviceRepo repository.DeviceRepository, out *usecase.EnqueueOutput, priority int64) error {
	position, err := deviceRepo.PlaceAndTotal(ctx, priority)
	if err != nil {
		return errors.Wrap(err, "failed to compute queue position")
	}

	out.Place = position.Place
	out.Total = position.Total

	return nil
}

func (srv *admissionService) flagSoft(out *usecase.EnqueueOutput, message string) {
	out.Status = 1
	out.Message = message
}

func (srv *admissionService) inPrelaunchWindow(now time.Time) bool {
	return !srv.prelaunchCutoff.IsZero() && now.Before(srv.prelaunchCutoff)
}

func (srv *admissionService) newEvent(ctx context.Context, eventType, deviceID string, priority int64, out *usecase.EnqueueOutput) *service.QueueEvent {
	return &service.QueueEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		DeviceID:   deviceID,
		Priority:   priority,
		Place:      out.Place,
		Total:      out.Total,
		OccurredAt: srv.clock.Now(),
	}
}

// publish emits the queue event after the transaction committed. Publishing
// is best effort: a broker failure never turns a committed admission into an
// error.
func (srv *admissionService) publish(ctx context.Context, event *service.QueueEvent) {
	if event == nil {
		return
	}

	if err := srv.publisher.PublishQueueEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish queue event",
			slog.String("type", event.Type),
			slog.String("device_id", event.DeviceID),
			slog.Any("error", err),
		)
	}
}
