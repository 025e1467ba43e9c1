package postgres

import (
	"context"
	"time"

	"waitline/internal/domain/entity"
	"waitline/internal/domain/repository"
	"waitline/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activationCodeRepository implements the repository.ActivationCodeRepository interface.
type activationCodeRepository struct {
	db *gorm.DB
}

// NewActivationCodeRepository is the constructor for activationCodeRepository.
func NewActivationCodeRepository(db *gorm.DB) repository.ActivationCodeRepository {
	return &activationCodeRepository{
		db: db,
	}
}

// FindPendingByCode retrieves the unused code matching the presented token.
func (repo *activationCodeRepository) FindPendingByCode(ctx context.Context, code string) (*entity.ActivationCode, error) {
	var codeM model.ActivationCodeModel

	if err := repo.db.WithContext(ctx).
		Where("code = ? AND used = ?", code, false).
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending activation code")
	}

	return toActivationCodeDomain(&codeM), nil
}

// Claim consumes the code with a single conditional update. The used = false
// guard makes the claim exactly-once: of two concurrent claimers only one
// update matches a row, the other sees zero rows affected.
func (repo *activationCodeRepository) Claim(ctx context.Context, id int64) (bool, error) {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ActivationCodeModel{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]any{
			"used":       true,
			"used_at":    now,
			"updated_at": now,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim activation code")
	}

	return result.RowsAffected == 1, nil
}

// toActivationCodeDomain converts a GORM ActivationCodeModel to a domain entity.
func toActivationCodeDomain(data *model.ActivationCodeModel) *entity.ActivationCode {
	if data == nil {
		return nil
	}

	return &entity.ActivationCode{
		ID:        data.ID,
		Code:      data.Code,
		Used:      data.Used,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
