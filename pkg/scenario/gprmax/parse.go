package gprmax

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/matwu/road-void-evolution-simulator/pkg/scenario/geometry"
)

// Parse reads a serialized scenario document back into typed directive
// records, directive order preserved. Unknown keywords and malformed
// argument lists are errors.
func Parse(text string) (*Document, error) {
	doc := &Document{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		directive, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		doc.Append(directive)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}

func parseLine(line string) (Directive, error) {
	if !strings.HasPrefix(line, "#") {
		return nil, fmt.Errorf("directive must start with '#': %q", line)
	}
	keyword, args, found := strings.Cut(line[1:], ":")
	if !found {
		return nil, fmt.Errorf("missing ':' after keyword: %q", line)
	}
	keyword = strings.TrimSpace(keyword)
	args = strings.TrimSpace(args)
	fields := strings.Fields(args)

	switch keyword {
	case KeywordTitle:
		return Title{Text: args}, nil

	case KeywordDomain:
		vs, err := parseFloats(fields, 3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return Domain{X: vs[0], Y: vs[1], Z: vs[2]}, nil

	case KeywordDiscretization:
		vs, err := parseFloats(fields, 3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return Discretization{Dx: vs[0], Dy: vs[1], Dz: vs[2]}, nil

	case KeywordTimeWindow:
		vs, err := parseFloats(fields, 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return TimeWindow{Nanoseconds: vs[0] * 1e9}, nil

	case KeywordMaterial:
		if len(fields) != 5 {
			return nil, fmt.Errorf("%s: want 5 arguments, got %d", keyword, len(fields))
		}
		vs, err := parseFloats(fields[:4], 4)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return Material{
			RelativePermittivity: vs[0],
			Conductivity:         vs[1],
			RelativePermeability: vs[2],
			MagneticLoss:         vs[3],
			Name:                 fields[4],
		}, nil

	case KeywordBox:
		if len(fields) != 7 {
			return nil, fmt.Errorf("%s: want 7 arguments, got %d", keyword, len(fields))
		}
		vs, err := parseFloats(fields[:6], 6)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return Box{
			Min:      geometry.Point{X: vs[0], Y: vs[1], Z: vs[2]},
			Max:      geometry.Point{X: vs[3], Y: vs[4], Z: vs[5]},
			Material: fields[6],
		}, nil

	case KeywordCylinder:
		if len(fields) != 8 {
			return nil, fmt.Errorf("%s: want 8 arguments, got %d", keyword, len(fields))
		}
		vs, err := parseFloats(fields[:7], 7)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return Cylinder{
			Start:    geometry.Point{X: vs[0], Y: vs[1], Z: vs[2]},
			End:      geometry.Point{X: vs[3], Y: vs[4], Z: vs[5]},
			Radius:   vs[6],
			Material: fields[7],
		}, nil

	case KeywordWaveform:
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s: want 4 arguments, got %d", keyword, len(fields))
		}
		vs, err := parseFloats(fields[1:3], 2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return Waveform{
			Shape:        fields[0],
			Amplitude:    vs[0],
			FrequencyMHz: vs[1] / 1e6,
			Name:         fields[3],
		}, nil

	case KeywordHertzianDipole:
		if len(fields) != 5 {
			return nil, fmt.Errorf("%s: want 5 arguments, got %d", keyword, len(fields))
		}
		vs, err := parseFloats(fields[1:4], 3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return HertzianDipole{
			Polarisation: fields[0],
			Position:     geometry.Point{X: vs[0], Y: vs[1], Z: vs[2]},
			Waveform:     fields[4],
		}, nil

	case KeywordRx:
		vs, err := parseFloats(fields, 3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return Rx{Position: geometry.Point{X: vs[0], Y: vs[1], Z: vs[2]}}, nil

	case KeywordSrcSteps:
		vs, err := parseFloats(fields, 3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return SrcSteps{Step: geometry.Vec3D{X: vs[0], Y: vs[1], Z: vs[2]}}, nil

	case KeywordRxSteps:
		vs, err := parseFloats(fields, 3)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return RxSteps{Step: geometry.Vec3D{X: vs[0], Y: vs[1], Z: vs[2]}}, nil

	case KeywordGeometryView:
		if len(fields) != 11 {
			return nil, fmt.Errorf("%s: want 11 arguments, got %d", keyword, len(fields))
		}
		vs, err := parseFloats(fields[:9], 9)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyword, err)
		}
		return GeometryView{
			Min:  geometry.Point{X: vs[0], Y: vs[1], Z: vs[2]},
			Max:  geometry.Point{X: vs[3], Y: vs[4], Z: vs[5]},
			Dx:   vs[6],
			Dy:   vs[7],
			Dz:   vs[8],
			Name: fields[9],
			Mode: fields[10],
		}, nil
	}

	return nil, fmt.Errorf("unknown directive keyword %q", keyword)
}

func parseFloats(fields []string, want int) ([]float64, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("want %d numeric arguments, got %d", want, len(fields))
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
