package kafka

import (
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/util"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// LikesHandler 消费 likes 表的 binlog 事件，维护点赞计数缓存
type LikesHandler struct {
}

func NewLikesHandler() *LikesHandler {
	return &LikesHandler{}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("song like consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("song like consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-like consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-like process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "likes")
	if err != nil {
		return err
	}

	// 点赞是物理增删，只关心 INSERT / DELETE
	switch canalMsg.Type {
	case INSERT:
		return s.handleInsert(ctx, canalMsg)
	case DELETE:
		return s.handleDelete(ctx, canalMsg)
	default:
		return nil
	}
}

// handleInsert 处理新增点赞：INCR + DIRTY
func (s *LikesHandler) handleInsert(ctx context.Context, msg *CanalMessage) error {
	if len(msg.Data) == 0 {
		return nil
	}
	row := msg.Data[0]
	userID, songID := util.StrToUint64(row["user_id"]), util.StrToUint64(row["song_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       songID,
		CountKeyPrefix: consts.SongLikeKey,
		DirtyKey:       consts.SongDirtyKey,
		IsIncrement:    true,
	})

	log.InfoContext(ctx, "song like inserted", "userID", userID, "songID", songID)
	return nil
}

// handleDelete 处理取消点赞：DECR + DIRTY
func (s *LikesHandler) handleDelete(ctx context.Context, msg *CanalMessage) error {
	if len(msg.Data) == 0 {
		return nil
	}
	songID := util.StrToUint64(msg.Data[0]["song_id"])

	ExecAction(ctx, ActionParams{
		TargetID:       songID,
		CountKeyPrefix: consts.SongLikeKey,
		DirtyKey:       consts.SongDirtyKey,
		IsIncrement:    false,
	})

	log.InfoContext(ctx, "song unlike processed", "songID", songID)
	return nil
}
