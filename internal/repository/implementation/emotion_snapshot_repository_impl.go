package implementation

import (
	"context"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/mapper"
	"ai-interview-be/internal/model"
	"ai-interview-be/internal/repository/contract"
	"ai-interview-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EmotionSnapshotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewEmotionSnapshotRepository(db *gorm.DB) contract.EmotionSnapshotRepository {
	return &EmotionSnapshotRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *EmotionSnapshotRepositoryImpl) Create(ctx context.Context, snapshot *entity.EmotionSnapshot) error {
	m := r.mapper.EmotionToModel(snapshot)
	if err := r.db.WithContext(ctx).Omit("Session").Create(m).Error; err != nil {
		return err
	}
	*snapshot = *r.mapper.EmotionToEntity(m)
	return nil
}

func (r *EmotionSnapshotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmotionSnapshot, error) {
	var models []*model.EmotionSnapshot
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.EmotionSnapshot, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EmotionToEntity(m)
	}
	return entities, nil
}
