package implementation

import (
	"context"
	"errors"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/mapper"
	"ai-interview-be/internal/model"
	"ai-interview-be/internal/repository/contract"
	"ai-interview-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InterviewTopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewInterviewTopicRepository(db *gorm.DB) contract.InterviewTopicRepository {
	return &InterviewTopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *InterviewTopicRepositoryImpl) Create(ctx context.Context, topic *entity.InterviewTopic) error {
	m := r.mapper.TopicToModel(topic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.TopicToEntity(m)
	return nil
}

func (r *InterviewTopicRepositoryImpl) CreateBulk(ctx context.Context, topics []*entity.InterviewTopic) error {
	if len(topics) == 0 {
		return nil
	}
	models := make([]*model.InterviewTopic, len(topics))
	for i, t := range topics {
		models[i] = r.mapper.TopicToModel(t)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *InterviewTopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewTopic, error) {
	var m model.InterviewTopic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TopicToEntity(&m), nil
}

func (r *InterviewTopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewTopic, error) {
	var models []*model.InterviewTopic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InterviewTopic, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TopicToEntity(m)
	}
	return entities, nil
}

func (r *InterviewTopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.InterviewTopic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
