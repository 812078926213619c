package kafka

import (
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/redis"
	"Melodia/internal/pkg/util"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ClicksHandler 消费 search_clicks 表的 binlog 事件，
// 维护点击计数缓存并让热门面板缓存失效
type ClicksHandler struct {
}

func NewClicksHandler() *ClicksHandler {
	return &ClicksHandler{}
}

func (s *ClicksHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("search click consumer setup")
	return nil
}

func (s *ClicksHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("search click consumer cleanup")
	return nil
}

func (s *ClicksHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-click consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-click process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ClicksHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "search_clicks")
	if err != nil {
		return err
	}

	// 点击是 upsert：首次点击 INSERT，重复点击 UPDATE click_count
	switch canalMsg.Type {
	case INSERT, UPDATE:
		return s.handleClick(ctx, canalMsg)
	default:
		return nil
	}
}

func (s *ClicksHandler) handleClick(ctx context.Context, msg *CanalMessage) error {
	if len(msg.Data) == 0 {
		return nil
	}
	songID := util.StrToUint64(msg.Data[0]["song_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       songID,
		CountKeyPrefix: consts.SongClickKey,
		DirtyKey:       consts.SongDirtyKey,
		IsIncrement:    true,
		NotifyFunc: func() {
			// 点击变化会影响双信号热门面板的重排结果
			_ = redis.DeleteKey(ctx, consts.RankPopularPanelKey)
		},
	})

	log.InfoContext(ctx, "search click processed", "songID", songID, "type", msg.Type)
	return nil
}
