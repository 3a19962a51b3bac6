package implementation

import (
	"context"

	"invoxa-search-be/internal/entity"
	"invoxa-search-be/internal/mapper"
	"invoxa-search-be/internal/model"
	"invoxa-search-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SearchEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SearchEventMapper
}

func NewSearchEventRepository(db *gorm.DB) contract.SearchEventRepository {
	return &SearchEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewSearchEventMapper(),
	}
}

func (r *SearchEventRepositoryImpl) Create(ctx context.Context, event *entity.SearchEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *SearchEventRepositoryImpl) TopQueries(ctx context.Context, limit int) ([]string, error) {
	var queries []string
	err := r.db.WithContext(ctx).
		Model(&model.SearchEvent{}).
		Select("query").
		Where("query <> ''").
		Group("query").
		Order("COUNT(*) DESC").
		Limit(limit).
		Pluck("query", &queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *SearchEventRepositoryImpl) RecentBySession(ctx context.Context, sessionId string, limit int) ([]*entity.SearchEvent, error) {
	var models []*model.SearchEvent
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
