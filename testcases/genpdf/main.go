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

// Command genpdf writes a PDF preview of every test case.  Filled shapes
// are painted gray, strokes are drawn in black at their implicit width,
// and the bounding box is outlined with a thin dashed line.  Optionally,
// the PDFs are rendered to PNG using Ghostscript.
//
// Settings are read from the environment:
//
//	SVGGEOM_OUT_DIR       output directory (default "testdata/preview")
//	SVGGEOM_MARGIN        margin around the canvas, in points (default 8)
//	SVGGEOM_STROKE_WIDTH  line width of the bounding box (default 0.25)
//	SVGGEOM_PNG           also render PNG files (default false)
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/kelseyhightower/envconfig"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/svggeom/shape"
	"seehuhn.de/go/svggeom/testcases"
)

// config holds the settings of the command.
type config struct {
	OutDir      string  `envconfig:"OUT_DIR" default:"testdata/preview"`
	Margin      float64 `envconfig:"MARGIN" default:"8"`
	StrokeWidth float64 `envconfig:"STROKE_WIDTH" default:"0.25"`
	PNG         bool    `envconfig:"PNG" default:"false"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var cfg config
	if err := envconfig.Process("svggeom", &cfg); err != nil {
		slog.Error("cannot read configuration", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		slog.Error("cannot create output directory", "error", err)
		os.Exit(1)
	}

	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(cfg.OutDir, name+".pdf")

			if err := generatePDF(cfg, tc, pdfPath); err != nil {
				slog.Error("cannot write preview", "case", name, "error", err)
				os.Exit(1)
			}
			if cfg.PNG {
				pngPath := filepath.Join(cfg.OutDir, name+".png")
				if err := renderPNG(pdfPath, pngPath); err != nil {
					slog.Error("cannot render preview", "case", name, "error", err)
					os.Exit(1)
				}
			}
			count++
		}
	}
	slog.Info("previews written", "dir", cfg.OutDir, "count", count)
}

func generatePDF(cfg config, tc testcases.TestCase, pdfPath string) error {
	m := cfg.Margin
	w := float64(tc.Width)
	h := float64(tc.Height)

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: w + 2*m,
		URy: h + 2*m,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; SVG coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, m, h + m})

	// canvas outline
	page.SetStrokeColor(color.DeviceGray(0.8))
	page.SetLineWidth(cfg.StrokeWidth)
	page.Rectangle(0, 0, w, h)
	page.Stroke()

	outline := shape.Outline(tc.Shape)
	if len(outline) == 0 {
		return page.Close()
	}
	data := outline.Data()
	st := shape.StyleOf(tc.Shape)

	if st.Fill != "" {
		page.SetFillColor(color.DeviceGray(0.6))
		drawPath(page, data)
		page.Fill()
	}

	if st.Stroke != "" {
		// stroke parameters must be set before path construction
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(shape.ImplicitStrokeWidth(tc.Shape))
		page.SetLineCap(st.Cap)
		page.SetLineJoin(st.Join)
		miterLimit := st.MiterLimit
		if miterLimit == 0 {
			miterLimit = 4
		}
		page.SetMiterLimit(miterLimit)
		drawPath(page, data)
		page.Stroke()
	}

	if bbox, ok := shape.BBox(tc.Shape, true); ok {
		page.SetStrokeColor(color.DeviceGray(0.3))
		page.SetLineWidth(cfg.StrokeWidth)
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineJoin(graphics.LineJoinMiter)
		page.SetLineDash([]float64{1, 1}, 0)
		page.Rectangle(bbox.LLx, bbox.LLy, bbox.URx-bbox.LLx, bbox.URy-bbox.LLy)
		page.Stroke()
	}

	return page.Close()
}

// drawPath adds the path to the current page.  Quadratic curves are
// converted to cubics, since PDF has no quadratic segments.
func drawPath(page *document.Page, data *path.Data) {
	for cmd, pts := range data.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ghostscript: %w", err)
	}
	return nil
}
