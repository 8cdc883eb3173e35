package level

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// record mirrors Level with pointer fields so missing keys can be told apart from zero values
type record struct {
	NumberSugarGrains   *int          `json:"number_sugar_grains" yaml:"number_sugar_grains"`
	Statics             *[]StaticSpec `json:"statics" yaml:"statics"`
	Buckets             *[]BucketSpec `json:"buckets" yaml:"buckets"`
	TimeToCompleteLevel *int          `json:"time_to_complete_level" yaml:"time_to_complete_level"`
	SpoutX              *float64      `json:"spout_x" yaml:"spout_x"`
	SpoutY              *float64      `json:"spout_y" yaml:"spout_y"`
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads and validates a level file. JSON is the default codec; .yaml and
// .yml files are decoded as YAML with the same field names.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrLevelParse, path, err)
	}

	var l *Level
	if isYAML(path) {
		l, err = decodeYAML(data)
	} else {
		l, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return l, nil
}

func decodeJSON(data []byte) (*Level, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", ErrLevelParse)
	}

	var rec record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidConfiguration, typeErr.Field, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrLevelParse, err)
	}
	return rec.toLevel()
}

func decodeYAML(data []byte) (*Level, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLevelParse, err)
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrLevelParse)
	}

	var rec record
	if err := node.Decode(&rec); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrLevelParse, err)
	}
	return rec.toLevel()
}

func (r *record) toLevel() (*Level, error) {
	switch {
	case r.NumberSugarGrains == nil:
		return nil, fmt.Errorf("%w: missing number_sugar_grains", ErrLevelParse)
	case r.Statics == nil:
		return nil, fmt.Errorf("%w: missing statics", ErrLevelParse)
	case r.Buckets == nil:
		return nil, fmt.Errorf("%w: missing buckets", ErrLevelParse)
	}

	l := &Level{
		NumberSugarGrains: *r.NumberSugarGrains,
		Statics:           append([]StaticSpec{}, *r.Statics...),
		Buckets:           append([]BucketSpec{}, *r.Buckets...),
	}
	if r.TimeToCompleteLevel != nil {
		l.TimeToCompleteLevel = *r.TimeToCompleteLevel
	}
	if r.SpoutX != nil {
		l.SpoutX = *r.SpoutX
	}
	if r.SpoutY != nil {
		l.SpoutY = *r.SpoutY
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks value ranges
func (l *Level) Validate() error {
	if l.NumberSugarGrains < 0 {
		return fmt.Errorf("%w: number_sugar_grains %d is negative", ErrInvalidConfiguration, l.NumberSugarGrains)
	}
	if l.TimeToCompleteLevel < 0 {
		return fmt.Errorf("%w: time_to_complete_level %d is negative", ErrInvalidConfiguration, l.TimeToCompleteLevel)
	}
	for i, b := range l.Buckets {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: bucket %d has non-positive size %gx%g", ErrInvalidConfiguration, i, b.Width, b.Height)
		}
		if b.NeededSugar < 0 {
			return fmt.Errorf("%w: bucket %d needs %d grains", ErrInvalidConfiguration, i, b.NeededSugar)
		}
	}
	for i, s := range l.Statics {
		if s.LineWidth < 0 {
			return fmt.Errorf("%w: static %d has negative line width", ErrInvalidConfiguration, i)
		}
	}
	return nil
}

// Save writes the record to path, JSON unless the extension selects YAML.
// The file is replaced atomically so a failed save never truncates an existing level.
func Save(path string, l *Level) error {
	if path == "" {
		return fmt.Errorf("%w: no file specified", ErrPersist)
	}

	// Nil lists are written as empty so the record reloads
	out := *l
	if out.Statics == nil {
		out.Statics = []StaticSpec{}
	}
	if out.Buckets == nil {
		out.Buckets = []BucketSpec{}
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(&out)
	} else {
		data, err = json.MarshalIndent(&out, "", "    ")
	}
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersist, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".level-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrPersist, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrPersist, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %v", ErrPersist, path, err)
	}
	return nil
}
