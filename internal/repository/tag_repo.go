package repository

import (
	"Melodia/internal/model"
	"context"

	"gorm.io/gorm"
)

type TagRepo interface {
	CreateTag(ctx context.Context, tag *model.Tag) error
	ListTags(ctx context.Context) ([]*model.Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error)
	CountTagsByIds(ctx context.Context, ids []uint64) (int64, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

// CreateTag slug 重复时由唯一约束拦截，冲突错误上抛由服务层翻译
func (s *tagRepoImpl) CreateTag(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}

func (s *tagRepoImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	err := s.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagRepoImpl) GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// CountTagsByIds 用于建歌时校验标签都存在
func (s *tagRepoImpl) CountTagsByIds(ctx context.Context, ids []uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}
