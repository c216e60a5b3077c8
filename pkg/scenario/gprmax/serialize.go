package gprmax

import (
	"bytes"
	"fmt"
	"os"
)

// section groups directives so Serialize can separate logical blocks with
// blank lines the way hand-written scenario files do.
func section(keyword string) int {
	switch keyword {
	case KeywordTitle, KeywordDomain, KeywordDiscretization, KeywordTimeWindow:
		return 0
	case KeywordMaterial:
		return 1
	case KeywordBox, KeywordCylinder:
		return 2
	case KeywordWaveform, KeywordHertzianDipole, KeywordRx:
		return 3
	case KeywordSrcSteps, KeywordRxSteps:
		return 4
	default:
		return 5
	}
}

// Serialize renders the document in the solver's line-oriented directive
// format, preserving directive order.
func Serialize(doc *Document) string {
	writer := &bytes.Buffer{}

	previousSection := -1
	for _, directive := range doc.Directives {
		s := section(directive.Keyword())
		if previousSection >= 0 && s != previousSection {
			fmt.Fprintln(writer)
		}
		previousSection = s

		fmt.Fprintf(writer, "#%s: %s\n", directive.Keyword(), directive.Args())
	}

	return writer.String()
}

// Write serializes the document to path. A failed write surfaces the
// underlying I/O error to the caller; nothing is retried.
func Write(doc *Document, path string) error {
	if err := os.WriteFile(path, []byte(Serialize(doc)), 0644); err != nil {
		return fmt.Errorf("write scenario %s: %w", path, err)
	}
	return nil
}
