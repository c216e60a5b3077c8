package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matwu/road-void-evolution-simulator/config"
	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/gprmax"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.Generation.NumSequences = 2
	cfg.Generation.StagesPerSequence = 3
	return cfg
}

func TestGenerateWritesAllFilesAndManifest(t *testing.T) {
	cfg := testConfig(t)
	gen, err := New(cfg)
	require.NoError(t, err)

	manifest, err := gen.Generate()
	require.NoError(t, err)
	require.Len(t, manifest, 6)

	for seq := 0; seq < 2; seq++ {
		for stage := 0; stage < 3; stage++ {
			name := fmt.Sprintf("seq_%04d_stage_%02d.in", seq, stage)
			_, statErr := os.Stat(filepath.Join(cfg.OutputDir, name))
			assert.NoError(t, statErr, name)
		}
	}

	loaded, err := ReadManifest(filepath.Join(cfg.OutputDir, ManifestFileName))
	require.NoError(t, err)
	assert.Equal(t, manifest, loaded)

	assert.Equal(t, 0, manifest[0].SequenceID)
	assert.Equal(t, 0, manifest[0].Stage)
	assert.Equal(t, "seq_0000_stage_00.in", manifest[0].InputFile)
}

func TestGenerateIsReproducible(t *testing.T) {
	first := testConfig(t)
	gen, err := New(first)
	require.NoError(t, err)
	firstManifest, err := gen.Generate()
	require.NoError(t, err)

	second := testConfig(t)
	gen, err = New(second)
	require.NoError(t, err)
	secondManifest, err := gen.Generate()
	require.NoError(t, err)

	// Same seeds, same geometry, bit for bit.
	assert.Equal(t, firstManifest, secondManifest)

	a, err := os.ReadFile(filepath.Join(first.OutputDir, "seq_0001_stage_02.in"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(second.OutputDir, "seq_0001_stage_02.in"))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGenerateSequencesAreIndependent(t *testing.T) {
	cfg := testConfig(t)
	gen, err := New(cfg)
	require.NoError(t, err)

	manifest, err := gen.Generate()
	require.NoError(t, err)

	// Different seeds should not produce identical initial geometry.
	assert.NotEqual(t, manifest[0].Void.CenterX, manifest[3].Void.CenterX)
}

func TestGenerateVoidRisesAndGrowsWithinSequence(t *testing.T) {
	cfg := testConfig(t)
	gen, err := New(cfg)
	require.NoError(t, err)

	manifest, err := gen.Generate()
	require.NoError(t, err)

	first, last := manifest[0], manifest[2]
	require.Equal(t, first.SequenceID, last.SequenceID)
	assert.LessOrEqual(t, last.Void.CenterZ, first.Void.CenterZ)
	assert.Greater(t, last.Void.SizeX, first.Void.SizeX)
}

func TestGeneratedScenarioParsesBack(t *testing.T) {
	cfg := testConfig(t)
	gen, err := New(cfg)
	require.NoError(t, err)

	_, err = gen.Generate()
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(cfg.OutputDir, "seq_0000_stage_00.in"))
	require.NoError(t, err)

	doc, err := gprmax.Parse(string(content))
	require.NoError(t, err)

	domain, ok := doc.Domain()
	require.True(t, ok)
	assert.InDelta(t, cfg.Domain.SizeX, domain.X, 1e-9)
	assert.InDelta(t, 1.5, domain.Z, 1e-9)
	assert.Len(t, doc.Materials(), 7)
	// Six layer slabs plus the void primitive.
	assert.Len(t, doc.Primitives(), 7)
}

func TestGenerateFailsOnUnwritableOutput(t *testing.T) {
	cfg := testConfig(t)
	// A regular file where the output directory should be.
	path := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	cfg.OutputDir = path

	gen, err := New(cfg)
	require.NoError(t, err)

	_, err = gen.Generate()
	assert.Error(t, err)
}

func TestGenerateStrictGeometryAbortsNamingStage(t *testing.T) {
	cfg := testConfig(t)
	cfg.Geometry.Strict = true
	// Force voids far beyond the road depth.
	cfg.Void.InitialSizeZRatioRange = config.Range{Min: 2.0, Max: 2.0}
	cfg.Void.InitialDepthRatioRange = config.Range{Min: 0.9, Max: 0.9}

	gen, err := New(cfg)
	require.NoError(t, err)

	_, err = gen.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence 0 stage 0")
}
