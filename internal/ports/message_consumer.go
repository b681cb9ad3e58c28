package ports

import "context"

// MessageConsumer — фоновый источник пакетов реестра (брокер сообщений).
// Run блокируется до отмены ctx; Close идемпотентен.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
