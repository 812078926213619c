package repository

import (
	"Melodia/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SearchQueryRepo interface {
	UpsertOccurrence(ctx context.Context, query string) error
	GetOrCreate(ctx context.Context, query string) (*model.SearchQuery, error)
	ListRecent(ctx context.Context, limit int) ([]*model.SearchQuery, error)
	ListPopular(ctx context.Context, limit int) ([]*model.SearchQuery, error)
	DeleteWithClicks(ctx context.Context, id uint64) error
}

type searchQueryRepoImpl struct {
	db *gorm.DB
}

func NewSearchQueryRepository(db *gorm.DB) SearchQueryRepo {
	return &searchQueryRepoImpl{db: db}
}

// UpsertOccurrence 单语句 Upsert：已存在则 search_count+1 并刷新时间，
// 否则按 search_count=1 新建。并发记录同一个词不会丢增量。
func (s *searchQueryRepoImpl) UpsertOccurrence(ctx context.Context, query string) error {
	now := time.Now()
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "query"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"search_count":     gorm.Expr("search_count + 1"),
			"last_searched_at": now,
		}),
	}).Create(&model.SearchQuery{
		Query:          query,
		SearchCount:    1,
		LastSearchedAt: now,
	}).Error
}

// GetOrCreate 只做存在性解析，已存在时不动 search_count。
// 点击归因靠它拿外键，不能重复计入搜索次数。
func (s *searchQueryRepoImpl) GetOrCreate(ctx context.Context, query string) (*model.SearchQuery, error) {
	record := model.SearchQuery{
		Query:          query,
		SearchCount:    1,
		LastSearchedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	// 冲突时拿不到 ID，回查获取完整数据
	var existing model.SearchQuery
	err = s.db.WithContext(ctx).Where("query = ?", query).First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// ListRecent 最近搜索，平手按插入顺序
func (s *searchQueryRepoImpl) ListRecent(ctx context.Context, limit int) ([]*model.SearchQuery, error) {
	queries := make([]*model.SearchQuery, 0)
	err := s.db.WithContext(ctx).
		Order("last_searched_at DESC, id ASC").
		Limit(limit).
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

// ListPopular 热门搜索，平手时最近活跃的在前
func (s *searchQueryRepoImpl) ListPopular(ctx context.Context, limit int) ([]*model.SearchQuery, error) {
	queries := make([]*model.SearchQuery, 0)
	err := s.db.WithContext(ctx).
		Order("search_count DESC, last_searched_at DESC").
		Limit(limit).
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

// DeleteWithClicks 级联删除：同事务先清依赖它的点击记录再删词条。
// 词条不存在返回 ErrRecordNotFound。
func (s *searchQueryRepoImpl) DeleteWithClicks(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("search_query_id = ?", id).Delete(&model.SearchClick{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.SearchQuery{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
