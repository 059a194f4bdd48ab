package postgres

import (
	"context"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"
	"salesboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// platformRepository implements the repository.PlatformRepository interface.
type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository is the constructor for platformRepository.
func NewPlatformRepository(db *gorm.DB) repository.PlatformRepository {
	return &platformRepository{db: db}
}

// GetOrCreateByName inserts the platform unless its name exists, then reads it back.
// The insert is a no-op on conflict, so concurrent imports of the same platform never fail.
func (repo *platformRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.Platform, error) {
	platformM := &model.PlatformModel{PlatformName: name}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "platform_name"}},
			DoNothing: true,
		}).
		Create(platformM).Error; err != nil {
		return nil, translateWriteError(err, "failed to create platform", nil)
	}

	return repo.FindByName(ctx, name)
}

// FindByName retrieves a platform by its exact name.
func (repo *platformRepository) FindByName(ctx context.Context, name string) (*entity.Platform, error) {
	var platformM model.PlatformModel

	if err := repo.db.WithContext(ctx).
		Where("platform_name = ?", name).
		First(&platformM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlatformNotFound
		}

		return nil, errors.Wrap(err, "failed to find platform by name")
	}

	return toPlatformDomain(&platformM), nil
}

// List returns all platforms ordered by name.
func (repo *platformRepository) List(ctx context.Context) ([]*entity.Platform, error) {
	var platformModels []*model.PlatformModel

	if err := repo.db.WithContext(ctx).
		Order("platform_name ASC").
		Find(&platformModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list platforms")
	}

	platforms := make([]*entity.Platform, 0, len(platformModels))
	for _, platformM := range platformModels {
		platforms = append(platforms, toPlatformDomain(platformM))
	}

	return platforms, nil
}

func toPlatformDomain(data *model.PlatformModel) *entity.Platform {
	if data == nil {
		return nil
	}

	return &entity.Platform{
		ID:   data.PlatformID,
		Name: data.PlatformName,
	}
}
