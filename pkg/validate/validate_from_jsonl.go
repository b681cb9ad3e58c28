package validate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	Rows              BatchRows
}

// BatchRows — содержимое валидных пакетов: число reset и строк регионов/заказов.
type BatchRows struct {
	Resets  int
	Regions int
	Orders  int
}

func (r *BatchRows) add(batch *domain.Batch) {
	switch batch.Kind {
	case domain.BatchReset:
		r.Resets++
	case domain.BatchRegions:
		r.Regions += len(batch.Regions)
	case domain.BatchOrders:
		r.Orders += len(batch.Orders)
	}
}

// ValidateJSONLStream — читает JSONL из reader’а, валидирует каждую строку как
// конверт пакета, валидные пишет в writer в КАНОНИЧЕСКОМ виде одной строкой.
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.BatchValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие пакеты
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue
		}

		batch, err := ValidateBatchFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			// не возвращаем ошибку — просто пропускаем невалидную строку
			continue
		}

		if err := writeBatchLine(ow, batch); err != nil {
			return res, err
		}
		res.ValidLinesCount++
		res.Rows.add(batch)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeBatchLine(ow io.Writer, batch *domain.Batch) error {
	canonical, err := EncodeBatch(batch)
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	if _, err := ow.Write(append(canonical, '\n')); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	return nil
}
