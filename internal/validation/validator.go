package validation

import (
	"strings"

	"github.com/mmrzaf/dataforge/internal/columns"
	"github.com/mmrzaf/dataforge/internal/domain"
	"github.com/mmrzaf/dataforge/internal/logging"
)

type Validator struct {
	registry       *columns.Registry
	maxRecords     int
	defaultRecords int
	logger         *logging.Logger
}

func NewValidator(registry *columns.Registry, maxRecords, defaultRecords int, logger *logging.Logger) *Validator {
	return &Validator{
		registry:       registry,
		maxRecords:     maxRecords,
		defaultRecords: defaultRecords,
		logger:         logger,
	}
}

// NormalizeRequest applies the input policies and returns a normalized copy:
//   - record count outside [1, max] falls back to the default, never fatal
//   - unknown column names are dropped with a warning
//   - duplicate column names are dropped, first occurrence wins
//   - an empty selection after filtering is a caller error
func (v *Validator) NormalizeRequest(req *domain.GenerateRequest) (*domain.GenerateRequest, error) {
	out := *req

	if out.RecordCount < 1 || out.RecordCount > v.maxRecords {
		if out.RecordCount != 0 {
			v.logger.Warnw("record_count.defaulted", map[string]any{
				"requested": out.RecordCount,
				"default":   v.defaultRecords,
			})
		}
		out.RecordCount = v.defaultRecords
	}

	seen := make(map[string]bool, len(req.Columns))
	cols := make([]string, 0, len(req.Columns))
	for _, name := range req.Columns {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !v.registry.Has(name) {
			v.logger.Warnw("column.unknown", map[string]any{"column": name})
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		cols = append(cols, name)
	}
	if len(cols) == 0 {
		return nil, domain.BadRequestf("select at least one known column to generate")
	}
	out.Columns = cols

	return &out, nil
}
