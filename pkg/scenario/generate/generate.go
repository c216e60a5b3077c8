// Package generate orchestrates scenario generation: it iterates
// sequences, samples each sequence's frozen void parameters once, evolves
// the void per stage, and writes one scenario file per (sequence, stage)
// plus a metadata manifest.
package generate

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/matwu/road-void-evolution-simulator/config"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/gprmax"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/road"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/scene"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/void"
)

var log = config.NamedLogger("generate")

// ManifestFileName is written once into the output directory after all
// sequences complete.
const ManifestFileName = "metadata.yaml"

// inputFilePattern names scenario files per (sequence, stage).
const inputFilePattern = "seq_%04d_stage_%02d.in"

// Generator drives one full generation run.
type Generator struct {
	cfg *config.Config

	crossSection road.CrossSection
	frame        scene.Frame
	shape        scene.VoidShape
}

// New builds a generator from a checked configuration.
func New(cfg *config.Config) (*Generator, error) {
	crossSection, err := road.New(cfg.Road.Thicknesses())
	if err != nil {
		return nil, err
	}
	frame, err := scene.ParseFrame(cfg.Geometry.Frame)
	if err != nil {
		return nil, err
	}
	shape, err := scene.ParseVoidShape(cfg.Void.Shape)
	if err != nil {
		return nil, err
	}

	return &Generator{
		cfg:          cfg,
		crossSection: crossSection,
		frame:        frame,
		shape:        shape,
	}, nil
}

// Generate runs every sequence and persists the manifest. Each sequence
// owns a random source seeded with its id, so sequences are independent
// and the whole run is reproducible regardless of ordering. A failed
// scenario write aborts the run with an error naming the offending
// sequence and stage; files written before the failure stay on disk.
func (g *Generator) Generate() (Manifest, error) {
	cfg := g.cfg

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	numSequences := cfg.Generation.NumSequences
	stagesPerSequence := cfg.Generation.StagesPerSequence
	log.Infof("generating %d sequences, %d stages each", numSequences, stagesPerSequence)

	ranges := cfg.Void.Ranges()
	reference := void.Reference{
		DomainX:   cfg.Domain.SizeX,
		DomainY:   cfg.Domain.SizeY,
		RoadDepth: g.crossSection.RoadDepth(),
	}
	materials := cfg.MaterialList()

	manifest := make(Manifest, 0, numSequences*stagesPerSequence)

	for sequenceID := 0; sequenceID < numSequences; sequenceID++ {
		rng := rand.New(rand.NewSource(int64(sequenceID)))
		initial := void.SampleInitial(ranges, rng)

		for stage := 0; stage < stagesPerSequence; stage++ {
			state := void.Evolve(initial, stage, stagesPerSequence, reference)

			composed, err := scene.Compose(scene.Input{
				DomainX:      cfg.Domain.SizeX,
				DomainY:      cfg.Domain.SizeY,
				Dx:           cfg.GPR.SpatialResolution,
				CrossSection: g.crossSection,
				Void:         state,
				Scan: scene.ScanConfig{
					NumTraces:   cfg.GPR.NumTraces,
					StartXRatio: cfg.GPR.ScanStartXRatio,
					EndXRatio:   cfg.GPR.ScanEndXRatio,
				},
				Materials:    materials,
				FrequencyMHz: cfg.GPR.FrequencyMHz,
				TimeWindowNs: cfg.GPR.TimeWindowNs,
				Frame:        g.frame,
				Shape:        g.shape,
				Strict:       cfg.Geometry.Strict,
				View:         cfg.Geometry.View,
			})
			if err != nil {
				return nil, fmt.Errorf("sequence %d stage %d: %w", sequenceID, stage, err)
			}

			fileName := fmt.Sprintf(inputFilePattern, sequenceID, stage)
			doc := gprmax.FromScene(composed)
			if err := gprmax.Write(doc, filepath.Join(cfg.OutputDir, fileName)); err != nil {
				return nil, fmt.Errorf("sequence %d stage %d: %w", sequenceID, stage, err)
			}

			manifest = append(manifest, MetadataEntry{
				SequenceID: sequenceID,
				Stage:      stage,
				InputFile:  fileName,
				Void:       state,
			})

			log.Debugf("sequence %d stage %d: depth=%.2fm size_x=%.2fm",
				sequenceID, stage, state.CenterZ, state.SizeX)
		}
		log.Infof("sequence %d/%d done", sequenceID+1, numSequences)
	}

	manifestPath := filepath.Join(cfg.OutputDir, ManifestFileName)
	if err := WriteManifest(manifest, manifestPath); err != nil {
		return nil, err
	}
	log.Infof("manifest saved to %s, %d scenario files generated", manifestPath, len(manifest))

	return manifest, nil
}
