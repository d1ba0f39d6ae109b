package memo

import "go.uber.org/zap"

type zapObserver struct {
	logger *zap.Logger
}

// NewZapObserver adapts a zap.Logger into an Observer. Events are
// logged at debug level; misses include the computation's duration.
func NewZapObserver(logger *zap.Logger) Observer {
	return zapObserver{logger: logger}
}

func (z zapObserver) On(eventData EventData) {
	switch eventData.Event {
	case EventMiss:
		z.logger.Debug("memoized source computed",
			zap.String("memoId", eventData.MemoID),
			zap.String("key", eventData.Key),
			zap.Duration("took", eventData.Span.Duration()),
		)
	case EventCoalesced:
		z.logger.Debug("memoized call coalesced with in-flight computation",
			zap.String("memoId", eventData.MemoID),
			zap.String("key", eventData.Key),
		)
	default:
		z.logger.Debug("memoized cache hit",
			zap.String("memoId", eventData.MemoID),
			zap.String("key", eventData.Key),
		)
	}
}
