package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/ctxmeta"
)

// Проверка, что ZapLogger удовлетворяет интерфейсу ports.Logger.
var _ ports.Logger = (*ZapLogger)(nil)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := newZapLogger(logger, isProd)
	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewFromZap — обёртка над готовым *zap.Logger (тесты, встраивание).
func NewFromZap(base *zap.Logger) *ZapLogger { return newZapLogger(base, false) }

func newZapLogger(base *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar(), isProd: isProd}
}

// withCtx — добавляет к записи метаданные запроса из контекста.
func (z *ZapLogger) withCtx(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", id)
	}
	if src, ok := ctxmeta.SourceFromContext(ctx); ok {
		s = s.With("source", src)
	}
	if id, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		s = s.With("trace_id", id)
	}
	if id, ok := ctxmeta.SpanIDFromContext(ctx); ok {
		s = s.With("span_id", id)
	}
	return s
}

func (z *ZapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Debugf(format, args...)
}
func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withCtx(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
