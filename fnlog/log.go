// Package fnlog instruments composed functions with structured logging.
// The fn and dyn cores stay pure; wrapping a stage here is an explicit
// opt-in, and the wrapped function behaves exactly like the original apart
// from the log entries it emits.
package fnlog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/func_ive_go/dyn"
)

// Stage wraps a typed single-argument function so every invocation logs its
// argument and result at debug level. Each wrap gets its own id so entries
// from distinct wraps of the same function stay distinguishable.
func Stage[A, B any](logger *zap.Logger, name string, f func(A) B) func(A) B {
	id := uuid.New().String()
	return func(a A) B {
		logger.Debug("stage call",
			zap.String("stage", name),
			zap.String("stageId", id),
			zap.Any("arg", a),
		)
		b := f(a)
		logger.Debug("stage done",
			zap.String("stage", name),
			zap.String("stageId", id),
			zap.Any("result", b),
		)
		return b
	}
}

// Predicate wraps a typed predicate, logging its verdict.
func Predicate[A any](logger *zap.Logger, name string, pred func(A) bool) func(A) bool {
	id := uuid.New().String()
	return func(a A) bool {
		verdict := pred(a)
		logger.Debug("predicate",
			zap.String("stage", name),
			zap.String("stageId", id),
			zap.Any("arg", a),
			zap.Bool("verdict", verdict),
		)
		return verdict
	}
}

// Instrument wraps a dynamic Func. Successful calls log argument and result
// counts at debug level; failed calls log the error at error level. The
// error itself is returned unchanged.
func Instrument(logger *zap.Logger, name string, f dyn.Func) dyn.Func {
	id := uuid.New().String()
	return func(args ...any) ([]any, error) {
		logger.Debug("pipeline call",
			zap.String("pipeline", name),
			zap.String("pipelineId", id),
			zap.Int("numArgs", len(args)),
		)
		results, err := f(args...)
		if err != nil {
			logger.Error("pipeline failed",
				zap.String("pipeline", name),
				zap.String("pipelineId", id),
				zap.Error(err),
			)
			return nil, err
		}
		logger.Debug("pipeline done",
			zap.String("pipeline", name),
			zap.String("pipelineId", id),
			zap.Int("numResults", len(results)),
		)
		return results, nil
	}
}
