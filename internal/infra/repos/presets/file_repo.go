package presets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/dataforge/internal/domain"
)

// FileRepository reads presets (saved generation requests) from a directory
// of YAML or JSON files.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func (r *FileRepository) List() ([]*domain.Preset, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []*domain.Preset{}, nil
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Preset, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}

		path := filepath.Join(r.baseDir, entry.Name())
		preset, err := r.loadPreset(path)
		if err != nil {
			continue
		}
		list = append(list, preset)
	}

	return list, nil
}

func (r *FileRepository) Get(id string) (*domain.Preset, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, p := range list {
		if p.ID == id || p.Name == id {
			return p, nil
		}
	}

	return nil, fmt.Errorf("preset not found: %s", id)
}

func (r *FileRepository) GetByPath(path string) (*domain.Preset, error) {
	return r.loadPreset(path)
}

func (r *FileRepository) loadPreset(path string) (*domain.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var preset domain.Preset
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &preset)
	} else {
		err = yaml.Unmarshal(data, &preset)
	}
	if err != nil {
		return nil, err
	}

	if preset.ID == "" {
		preset.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &preset, nil
}
