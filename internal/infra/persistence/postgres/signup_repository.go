package postgres

import (
	"context"

	"waitline/internal/domain/entity"
	"waitline/internal/domain/repository"
	"waitline/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// signupRepository implements the repository.SignupRepository interface.
type signupRepository struct {
	db *gorm.DB
}

// NewSignupRepository is the constructor for signupRepository.
func NewSignupRepository(db *gorm.DB) repository.SignupRepository {
	return &signupRepository{
		db: db,
	}
}

// CreateRequest persists a pending signup request keyed by its hash.
func (repo *signupRepository) CreateRequest(ctx context.Context, request *entity.SignupRequest) error {
	requestM := &model.SignupRequestModel{
		Hash:     request.Hash,
		Email:    request.Email,
		DeviceID: request.DeviceID,
	}

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return errors.Wrap(err, "failed to create signup request")
	}

	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindRequestByHash retrieves a pending request by the presented hash.
func (repo *signupRepository) FindRequestByHash(ctx context.Context, hash string) (*entity.SignupRequest, error) {
	var requestM model.SignupRequestModel

	if err := repo.db.WithContext(ctx).
		Where("hash = ?", hash).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSignupRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find signup request")
	}

	return &entity.SignupRequest{
		Hash:      requestM.Hash,
		Email:     requestM.Email,
		DeviceID:  requestM.DeviceID,
		CreatedAt: requestM.CreatedAt,
	}, nil
}

// DeleteRequest removes a pending request once it has been promoted.
func (repo *signupRepository) DeleteRequest(ctx context.Context, hash string) error {
	if err := repo.db.WithContext(ctx).
		Where("hash = ?", hash).
		Delete(&model.SignupRequestModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete signup request")
	}

	return nil
}

// UpsertSignup creates the confirmed signup for an email, or returns the
// existing one when the address confirmed before.
func (repo *signupRepository) UpsertSignup(ctx context.Context, email string) (*entity.Signup, error) {
	signupM := &model.SignupModel{Email: email}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(signupM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to upsert signup")
	}

	// Conflict path: the insert matched an existing row, fetch it.
	if result.RowsAffected == 0 {
		if err := repo.db.WithContext(ctx).
			Where("email = ?", email).
			First(signupM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to load existing signup")
		}
	}

	return &entity.Signup{
		ID:        signupM.ID,
		Email:     signupM.Email,
		CreatedAt: signupM.CreatedAt,
	}, nil
}

// LinkDevice associates a confirmed signup with a device. Linking the same
// pair twice is a no-op.
func (repo *signupRepository) LinkDevice(ctx context.Context, signupID int64, deviceID string) error {
	linkM := &model.SignupDeviceModel{
		SignupID: signupID,
		DeviceID: deviceID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(linkM).Error; err != nil {
		return errors.Wrap(err, "failed to link signup device")
	}

	return nil
}
