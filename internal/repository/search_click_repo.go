package repository

import (
	"Melodia/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SongClickAgg 按歌曲聚合后的搜索点击总量
type SongClickAgg struct {
	SongID      uint64
	TotalClicks int64
}

type SearchClickRepo interface {
	UpsertClick(ctx context.Context, queryID, songID uint64) error
	TopClickedSongs(ctx context.Context, limit int) ([]*SongClickAgg, error)
	SumClicksBySongIds(ctx context.Context, songIDs []uint64) (map[uint64]int64, error)
	SumClicksBySongID(ctx context.Context, songID uint64) (int64, error)
}

type searchClickRepoImpl struct {
	db *gorm.DB
}

func NewSearchClickRepository(db *gorm.DB) SearchClickRepo {
	return &searchClickRepoImpl{db: db}
}

// UpsertClick 对 (query, song) 组合做单语句 Upsert：
// 已存在则 click_count+1，否则按 click_count=1 新建。
// 唯一约束 + 原子自增保证并发调用不产生重复行也不丢增量。
func (s *searchClickRepoImpl) UpsertClick(ctx context.Context, queryID, songID uint64) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "search_query_id"}, {Name: "song_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"click_count": gorm.Expr("click_count + 1"),
		}),
	}).Create(&model.SearchClick{
		SearchQueryID: queryID,
		SongID:        songID,
		ClickCount:    1,
	}).Error
}

// TopClickedSongs 按歌曲分组求点击总和，倒序取前 limit。
// 没有点击记录的歌曲天然不出现在结果里。
func (s *searchClickRepoImpl) TopClickedSongs(ctx context.Context, limit int) ([]*SongClickAgg, error) {
	aggs := make([]*SongClickAgg, 0)
	err := s.db.WithContext(ctx).Model(&model.SearchClick{}).
		Select("song_id, SUM(click_count) AS total_clicks").
		Group("song_id").
		Order("total_clicks DESC, song_id DESC").
		Limit(limit).
		Find(&aggs).Error
	if err != nil {
		return nil, err
	}
	return aggs, nil
}

func (s *searchClickRepoImpl) SumClicksBySongIds(ctx context.Context, songIDs []uint64) (map[uint64]int64, error) {
	if len(songIDs) == 0 {
		return map[uint64]int64{}, nil
	}
	aggs := make([]*SongClickAgg, 0)
	err := s.db.WithContext(ctx).Model(&model.SearchClick{}).
		Select("song_id, SUM(click_count) AS total_clicks").
		Where("song_id IN ?", songIDs).
		Group("song_id").
		Find(&aggs).Error
	if err != nil {
		return nil, err
	}
	result := make(map[uint64]int64, len(aggs))
	for _, agg := range aggs {
		result[agg.SongID] = agg.TotalClicks
	}
	return result, nil
}

func (s *searchClickRepoImpl) SumClicksBySongID(ctx context.Context, songID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.SearchClick{}).
		Where("song_id = ?", songID).
		Select("COALESCE(SUM(click_count), 0)").
		Scan(&total).Error
	return total, err
}
