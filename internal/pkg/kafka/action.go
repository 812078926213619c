package kafka

import (
	"Melodia/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
)

// ActionParams 一次计数变更需要的全部参数
type ActionParams struct {
	TargetID       uint64
	CountKeyPrefix string
	DirtyKey       string
	IsIncrement    bool

	// NotifyFunc 可选的后置动作
	NotifyFunc func()
}

// ExecAction 维护计数缓存并把目标标脏，等待定时任务回刷快照。
// 计数只在键已存在时增减，缓存过期后由读路径回源重建。
func ExecAction(ctx context.Context, params ActionParams) {
	if params.TargetID == 0 {
		return
	}

	delta := int64(1)
	if !params.IsIncrement {
		delta = -1
	}

	idStr := strconv.FormatUint(params.TargetID, 10)
	if err := redis.IncrByExist(ctx, params.CountKeyPrefix+idStr, delta); err != nil {
		log.WarnContext(ctx, "incr count cache error", "key", params.CountKeyPrefix+idStr, "err", err)
	}

	if params.DirtyKey != "" {
		if err := redis.SAddValue(ctx, params.DirtyKey, idStr); err != nil {
			log.WarnContext(ctx, "mark dirty error", "key", params.DirtyKey, "err", err)
		}
	}

	if params.NotifyFunc != nil {
		params.NotifyFunc()
	}
}
