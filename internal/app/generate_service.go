package app

import (
	"fmt"
	"time"

	"github.com/mmrzaf/dataforge/internal/columns"
	"github.com/mmrzaf/dataforge/internal/domain"
	"github.com/mmrzaf/dataforge/internal/export"
	"github.com/mmrzaf/dataforge/internal/generate"
	"github.com/mmrzaf/dataforge/internal/infra/repos/presets"
	"github.com/mmrzaf/dataforge/internal/logging"
	"github.com/mmrzaf/dataforge/internal/validation"
)

// GenerateService orchestrates one generation request end to end: normalize,
// resolve dependencies, generate, export. It holds no per-request state.
type GenerateService struct {
	registry   *columns.Registry
	validator  *validation.Validator
	generator  *generate.Generator
	presetRepo *presets.FileRepository
	logger     *logging.Logger
	workers    int
}

func NewGenerateService(
	registry *columns.Registry,
	presetRepo *presets.FileRepository,
	logger *logging.Logger,
	maxRecords, defaultRecords, workers int,
) *GenerateService {
	return &GenerateService{
		registry:   registry,
		validator:  validation.NewValidator(registry, maxRecords, defaultRecords, logger),
		generator:  generate.NewGenerator(registry),
		presetRepo: presetRepo,
		logger:     logger,
		workers:    workers,
	}
}

func (s *GenerateService) Generate(req *domain.GenerateRequest) (*domain.Payload, error) {
	if req.PresetID != "" {
		resolved, err := s.applyPreset(req)
		if err != nil {
			return nil, err
		}
		req = resolved
	}

	norm, err := s.validator.NormalizeRequest(req)
	if err != nil {
		return nil, err
	}

	exporter, err := export.ForFormat(norm.Format)
	if err != nil {
		return nil, err
	}

	plan, err := generate.Resolve(s.registry, norm.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve columns: %w", err)
	}

	started := time.Now()
	ds, err := s.generator.GenerateMany(norm.RecordCount, plan, s.workers)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	payload, err := exporter.Export(ds)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}

	s.logger.Infow("generate.completed", map[string]any{
		"records":     norm.RecordCount,
		"columns":     len(norm.Columns),
		"format":      string(norm.Format),
		"bytes":       len(payload.Data),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return payload, nil
}

// GenerateDataset runs the same pipeline but stops before export; used by the
// database loader.
func (s *GenerateService) GenerateDataset(req *domain.GenerateRequest) (*domain.Dataset, error) {
	if req.PresetID != "" {
		resolved, err := s.applyPreset(req)
		if err != nil {
			return nil, err
		}
		req = resolved
	}

	norm, err := s.validator.NormalizeRequest(req)
	if err != nil {
		return nil, err
	}

	plan, err := generate.Resolve(s.registry, norm.Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve columns: %w", err)
	}

	return s.generator.GenerateMany(norm.RecordCount, plan, s.workers)
}

// applyPreset merges a preset into the request: the preset supplies any field
// the caller left unset.
func (s *GenerateService) applyPreset(req *domain.GenerateRequest) (*domain.GenerateRequest, error) {
	if s.presetRepo == nil {
		return nil, domain.BadRequestf("presets are not configured")
	}
	p, err := s.presetRepo.Get(req.PresetID)
	if err != nil {
		return nil, domain.BadRequestf("preset not found: %s", req.PresetID)
	}

	out := *req
	if out.RecordCount == 0 {
		out.RecordCount = p.RecordCount
	}
	if len(out.Columns) == 0 {
		out.Columns = p.Columns
	}
	if out.Format == "" {
		out.Format = p.Format
	}
	return &out, nil
}

func (s *GenerateService) Columns() []domain.ColumnInfo {
	return s.registry.Infos()
}

func (s *GenerateService) Formats() []domain.Format {
	return domain.Formats()
}

func (s *GenerateService) Presets() ([]*domain.Preset, error) {
	if s.presetRepo == nil {
		return []*domain.Preset{}, nil
	}
	return s.presetRepo.List()
}

func (s *GenerateService) Preset(id string) (*domain.Preset, error) {
	if s.presetRepo == nil {
		return nil, fmt.Errorf("presets are not configured")
	}
	return s.presetRepo.Get(id)
}
