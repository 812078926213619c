package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/model"

	"github.com/jinzhu/copier"
)

func toTagDTOs(tags []model.Tag) []*dto.TagDTO {
	out := make([]*dto.TagDTO, 0, len(tags))
	for i := range tags {
		t := &dto.TagDTO{}
		_ = copier.Copy(t, &tags[i])
		out = append(out, t)
	}
	return out
}

func toTagDTO(tag *model.Tag) *dto.TagDTO {
	d := &dto.TagDTO{}
	_ = copier.Copy(d, tag)
	return d
}

func toSongDTO(song *model.Song) *dto.SongDTO {
	d := &dto.SongDTO{}
	_ = copier.Copy(d, song)
	d.Tags = toTagDTOs(song.Tags)
	return d
}

func toSongDTOs(songs []*model.Song) []*dto.SongDTO {
	out := make([]*dto.SongDTO, 0, len(songs))
	for _, s := range songs {
		out = append(out, toSongDTO(s))
	}
	return out
}

func toSearchQueryDTOs(queries []*model.SearchQuery) []*dto.SearchQueryDTO {
	out := make([]*dto.SearchQueryDTO, 0, len(queries))
	for _, q := range queries {
		d := &dto.SearchQueryDTO{}
		_ = copier.Copy(d, q)
		out = append(out, d)
	}
	return out
}
