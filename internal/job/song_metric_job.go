package job

import (
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/logger"
	"Melodia/internal/pkg/redis"
	"Melodia/internal/pkg/util"
	"Melodia/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// SongMetricsJob 把脏歌曲集合里的全部歌曲回刷成当日指标快照
type SongMetricsJob struct {
	metricSvc service.SongMetricService
}

func NewSongMetricsJob(metricSvc service.SongMetricService) *SongMetricsJob {
	return &SongMetricsJob{
		metricSvc: metricSvc,
	}
}

func (s *SongMetricsJob) Run() {
	traceID := "job-song-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 先把脏集合改名，期间新产生的脏数据落到下一轮
	processingKey := consts.SongDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.SongDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get song dirty set error", "err", err)
		return
	}

	songIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert song set to int slice error", "err", err)
		return
	}

	for _, sid := range songIDs {
		if err := s.metricSvc.SyncSongMetric(ctx, sid); err != nil {
			log.ErrorContext(ctx, "sync song daily metric error", "sid", sid, "err", err)
		}
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete song processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync song metrics success", "song_count", len(songIDs))
}
