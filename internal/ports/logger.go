package ports

import "context"

// Logger — минимальный контракт логгера для внешних слоёв.
// Реализация сама достаёт метаданные запроса (request_id) из ctx.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any) // Debugf — подробности (попадания в кэш и т.п.).
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения.
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
}
