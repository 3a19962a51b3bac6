package mapper

import (
	"encoding/json"

	"invoxa-search-be/internal/entity"
	"invoxa-search-be/internal/model"
)

type SearchEventMapper struct{}

func NewSearchEventMapper() *SearchEventMapper {
	return &SearchEventMapper{}
}

func (m *SearchEventMapper) ToModel(e *entity.SearchEvent) *model.SearchEvent {
	out := &model.SearchEvent{
		Id:             e.Id,
		SessionId:      e.SessionId,
		Query:          e.Query,
		CorrectedQuery: e.CorrectedQuery,
		Category:       e.Category,
		Confidence:     e.Confidence,
		LatencyMs:      e.LatencyMs,
		CreatedAt:      e.CreatedAt,
	}
	if len(e.Filters) > 0 {
		if raw, err := json.Marshal(e.Filters); err == nil {
			out.Filters = raw
		}
	}
	return out
}

func (m *SearchEventMapper) ToEntity(mod *model.SearchEvent) *entity.SearchEvent {
	out := &entity.SearchEvent{
		Id:             mod.Id,
		SessionId:      mod.SessionId,
		Query:          mod.Query,
		CorrectedQuery: mod.CorrectedQuery,
		Category:       mod.Category,
		Confidence:     mod.Confidence,
		LatencyMs:      mod.LatencyMs,
		CreatedAt:      mod.CreatedAt,
	}
	if len(mod.Filters) > 0 {
		var filters map[string]interface{}
		if err := json.Unmarshal(mod.Filters, &filters); err == nil {
			out.Filters = filters
		}
	}
	return out
}

func (m *SearchEventMapper) ToEntities(models []*model.SearchEvent) []*entity.SearchEvent {
	entities := make([]*entity.SearchEvent, len(models))
	for i, mod := range models {
		entities[i] = m.ToEntity(mod)
	}
	return entities
}
