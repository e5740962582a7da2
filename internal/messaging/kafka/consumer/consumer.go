package consumer

import (
	"context"
	"encoding/json"
	"net/http"

	"go-integration/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Reader is the part of *kafkago.Reader the consumers use.
type Reader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// consume runs the fetch loop until ctx is cancelled. Messages that cannot be
// decoded, fail validation or are rejected by the handler with a client error
// are committed and skipped. Any other handler error is logged and the
// message is not committed, but the loop moves on: a later commit on the same
// partition also covers its offset, so it is only redelivered when the
// process stops or rebalances before that happens.
func consume[T any](
	ctx context.Context,
	reader Reader,
	log *zap.Logger,
	handle func(ctx context.Context, event T) error,
) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event T
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			commit(ctx, reader, log, msg)
			continue
		}
		if err := binding.Validator.ValidateStruct(&event); err != nil {
			log.Warn("invalid message, skipping", zap.Int64("offset", msg.Offset), zap.Error(err))
			commit(ctx, reader, log, msg)
			continue
		}

		if err := handle(ctx, event); err != nil {
			if apperror.ToHTTP(err).Status < http.StatusInternalServerError {
				log.Warn("message rejected, skipping", zap.Int64("offset", msg.Offset), zap.Error(err))
				commit(ctx, reader, log, msg)
				continue
			}
			log.Error("handle message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			continue
		}

		commit(ctx, reader, log, msg)
	}
}

func commit(ctx context.Context, reader Reader, log *zap.Logger, msg kafkago.Message) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
	}
}

// NewReader builds a consumer-group reader for one topic.
func NewReader(broker, groupID, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
