// seehuhn.de/go/svggeom - geometry of SVG shapes and paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes the test case geometry to JSON, for comparison
// with other SVG implementations.  Run from the module root directory.
//
// The output directory is read from SVGGEOM_OUT_DIR and defaults to
// "testdata".
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/svggeom/shape"
	"seehuhn.de/go/svggeom/testcases"
)

// config holds the settings of the command.
type config struct {
	OutDir string `envconfig:"OUT_DIR" default:"testdata"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var cfg config
	if err := envconfig.Process("svggeom", &cfg); err != nil {
		slog.Error("cannot read configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return err
	}
	fname := filepath.Join(cfg.OutDir, "testcases.json")
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote test cases", "file", fname, "count", len(out.TestCases))
	return nil
}

type jsonTestCase struct {
	Name        string    `json:"name"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Shape       string    `json:"shape"`
	Reified     string    `json:"reified"`
	D           string    `json:"d"`
	BBox        []float64 `json:"bbox,omitempty"` // [x_min, y_min, x_max, y_max]
	Length      float64   `json:"length"`
	StrokeWidth float64   `json:"stroke_width,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Width,
		Height:  tc.Height,
		Shape:   tc.Shape.String(),
		Reified: shape.Reify(tc.Shape).String(),
		D:       shape.PathData(tc.Shape),
		Length:  shape.Length(tc.Shape),
	}
	if bbox, ok := shape.BBox(tc.Shape, true); ok {
		jtc.BBox = []float64{bbox.LLx, bbox.LLy, bbox.URx, bbox.URy}
	}
	if shape.StyleOf(tc.Shape).Stroke != "" {
		jtc.StrokeWidth = shape.ImplicitStrokeWidth(tc.Shape)
	}
	return jtc
}
