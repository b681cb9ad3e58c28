package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/gift_ledger/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// FileSummary — итог проверки файла пакетов: сколько конвертов прошло
// и сколько строк реестра они несут.
type FileSummary struct {
	Valid   int
	Invalid int
	Rows    BatchRows
}

func (s FileSummary) String() string {
	return fmt.Sprintf("%d valid / %d invalid batches (resets=%d regions=%d orders=%d)",
		s.Valid, s.Invalid, s.Rows.Resets, s.Rows.Regions, s.Rows.Orders)
}

// ValidateFile — проверяет файл пакетов и пишет канонические валидные конверты в writer,
// по одному на строку в исходном порядке.
//
// JSON — один конверт или массив конвертов (последовательность пакетов);
// JSONL — конверт на строку. Невалидный одиночный конверт или битый массив — ошибка,
// невалидные элементы массива и строки JSONL пропускаются и считаются.
func ValidateFile(ctx context.Context, validator ports.BatchValidator, filePath string, format InputFormat, ow io.Writer) (FileSummary, error) {
	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl", ".ndjson":
			format = FormatJSONL
		default:
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return FileSummary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return FileSummary{}, fmt.Errorf("read file: %w", err)
		}
		return validateJSONDocument(ctx, validator, raw, ow)

	case FormatJSONL:
		result, err := ValidateJSONLStream(ctx, validator, file, ow)
		summary := FileSummary{Valid: result.ValidLinesCount, Invalid: result.InvalidLinesCount, Rows: result.Rows}
		return summary, err

	default:
		return FileSummary{}, fmt.Errorf("unsupported format: %s", format)
	}
}

// validateJSONDocument — конверт `{...}` или последовательность `[{...}, ...]`.
func validateJSONDocument(ctx context.Context, validator ports.BatchValidator, raw []byte, ow io.Writer) (FileSummary, error) {
	var summary FileSummary

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		batch, err := ValidateBatchFromJSON(ctx, validator, raw)
		if err != nil {
			summary.Invalid = 1
			return summary, err
		}
		if err := writeBatchLine(ow, batch); err != nil {
			return summary, err
		}
		summary.Valid = 1
		summary.Rows.add(batch)
		return summary, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		summary.Invalid = 1
		return summary, fmt.Errorf("%w: invalid json array: %v", ErrInvalidBatch, err)
	}
	for i := range items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		batch, err := ValidateBatchFromJSON(ctx, validator, items[i])
		if err != nil {
			summary.Invalid++
			continue
		}
		if err := writeBatchLine(ow, batch); err != nil {
			return summary, err
		}
		summary.Valid++
		summary.Rows.add(batch)
	}
	return summary, nil
}
