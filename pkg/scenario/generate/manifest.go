package generate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/void"
)

// MetadataEntry correlates one scenario file with the void state that
// produced it. Downstream analysis joins solver outputs back to their
// generating parameters through these entries.
type MetadataEntry struct {
	SequenceID int        `yaml:"sequence_id"`
	Stage      int        `yaml:"stage"`
	InputFile  string     `yaml:"input_file"`
	Void       void.State `yaml:"void_params"`
}

// Manifest lists every generated (sequence, stage) pair in generation
// order.
type Manifest []MetadataEntry

// WriteManifest persists the manifest as a single YAML document.
func WriteManifest(m Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}
