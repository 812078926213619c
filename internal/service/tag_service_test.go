package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/model"
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) CreateTag(ctx context.Context, tag *model.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *mockTagRepo) ListTags(ctx context.Context) ([]*model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Tag), args.Error(1)
}

func (m *mockTagRepo) GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *mockTagRepo) CountTagsByIds(ctx context.Context, ids []uint64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateTagRejectsUnknownType(t *testing.T) {
	repo := new(mockTagRepo)
	svc := NewTagService(repo)

	_, err := svc.CreateTag(context.Background(), &dto.TagCreateDTO{
		Name: "摇滚", Slug: "rock", Type: "vibe",
	})
	assert.ErrorIs(t, err, ErrTagTypeInvalid)
	repo.AssertNotCalled(t, "CreateTag", mock.Anything, mock.Anything)
}

func TestCreateTagDuplicateSlug(t *testing.T) {
	repo := new(mockTagRepo)
	svc := NewTagService(repo)

	repo.On("CreateTag", mock.Anything, mock.Anything).
		Return(&mysql.MySQLError{Number: 1062})

	_, err := svc.CreateTag(context.Background(), &dto.TagCreateDTO{
		Name: "摇滚", Slug: "rock", Type: "genre",
	})
	assert.ErrorIs(t, err, ErrTagSlugExist)
}

func TestCreateTagSuccess(t *testing.T) {
	repo := new(mockTagRepo)
	svc := NewTagService(repo)

	repo.On("CreateTag", mock.Anything, mock.MatchedBy(func(tag *model.Tag) bool {
		return tag.Slug == "rock" && tag.Type == "genre"
	})).Return(nil)

	tag, err := svc.CreateTag(context.Background(), &dto.TagCreateDTO{
		Name: "摇滚", Slug: "rock", Type: "genre",
	})
	require.NoError(t, err)
	assert.Equal(t, "rock", tag.Slug)
}

func TestGetTagBySlugNotFound(t *testing.T) {
	repo := new(mockTagRepo)
	svc := NewTagService(repo)

	repo.On("GetTagBySlug", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetTagBySlug(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrTagNotFound)
}
