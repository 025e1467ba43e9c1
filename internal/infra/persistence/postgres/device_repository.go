// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"waitline/internal/domain/entity"
	"waitline/internal/domain/repository"
	"waitline/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindByID retrieves a device by its identifier.
func (repo *deviceRepository) FindByID(ctx context.Context, id string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// Insert persists a new device. The priority column defaults to the next
// sequence value; GORM reads the generated values back via RETURNING.
// A duplicate id is resolved with ON CONFLICT DO NOTHING instead of a raised
// unique violation: a 23505 error would move the surrounding transaction into
// the aborted state and every follow-up statement in it would fail with
// 25P02, so the caller could no longer read back the winner's row.
func (repo *deviceRepository) Insert(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(deviceM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to insert device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateDevice
	}

	// Update the entity with generated values
	device.Priority = deviceM.Priority
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// Activate marks a waiting device admitted and links the consumed code.
// The activation_code_id is immutable once set, so the update only matches
// rows that have not been linked to a code yet.
func (repo *deviceRepository) Activate(ctx context.Context, id string, codeID int64) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ? AND is_activated = ? AND activation_code_id IS NULL", id, false).
		Updates(map[string]any{
			"is_activated":       true,
			"activation_code_id": codeID,
			"activated_at":       now,
			"updated_at":         now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to activate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// BoostPriority lowers the priority in one atomic update-and-return, so the
// value handed back is exactly what the statement wrote.
func (repo *deviceRepository) BoostPriority(ctx context.Context, id string, multiplier float64) (int64, error) {
	var deviceM model.DeviceModel

	result := repo.db.WithContext(ctx).
		Model(&deviceM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "priority"}}}).
		Where("id = ?", id).
		Update("priority", gorm.Expr("floor(priority * ?)", multiplier))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to boost device priority")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrDeviceNotFound
	}

	return deviceM.Priority, nil
}

// PlaceAndTotal derives the waiting-line position from the priority key in a
// single aggregate pass. The place of a priority is the count of waiting
// devices at or before it; an empty line yields zeros.
func (repo *deviceRepository) PlaceAndTotal(ctx context.Context, priority int64) (*repository.QueuePosition, error) {
	var row struct {
		Place int64
		Total int64
	}

	err := repo.db.WithContext(ctx).
		Raw(`SELECT
			COALESCE(SUM(CASE WHEN is_activated = FALSE AND priority <= ? THEN 1 END), 0) AS place,
			COALESCE(SUM(CASE WHEN is_activated = FALSE THEN 1 END), 0) AS total
		FROM devices`, priority).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute place and total")
	}

	return &repository.QueuePosition{Place: row.Place, Total: row.Total}, nil
}

// Counts reports how many devices are admitted and how many still wait.
func (repo *deviceRepository) Counts(ctx context.Context) (*repository.QueueCounts, error) {
	var row struct {
		LetIn        int64
		StillWaiting int64
	}

	err := repo.db.WithContext(ctx).
		Raw(`SELECT
			COALESCE(SUM(CASE WHEN is_activated = TRUE THEN 1 END), 0) AS let_in,
			COALESCE(SUM(CASE WHEN is_activated = FALSE THEN 1 END), 0) AS still_waiting
		FROM devices`).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count queue totals")
	}

	return &repository.QueueCounts{LetIn: row.LetIn, StillWaiting: row.StillWaiting}, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:               data.ID,
		Priority:         data.Priority,
		IsActivated:      data.IsActivated,
		ActivationCodeID: data.ActivationCodeID,
		ActivatedAt:      data.ActivatedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:               data.ID,
		Priority:         data.Priority,
		IsActivated:      data.IsActivated,
		ActivationCodeID: data.ActivationCodeID,
		ActivatedAt:      data.ActivatedAt,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
