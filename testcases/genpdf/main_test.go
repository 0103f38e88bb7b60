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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/svggeom/testcases"
)

func TestGeneratePDF(t *testing.T) {
	cfg := config{Margin: 4, StrokeWidth: 0.5}
	dir := t.TempDir()
	for _, category := range []string{"fill", "stroke", "precision"} {
		for _, tc := range testcases.All[category] {
			fname := filepath.Join(dir, category+"_"+tc.Name+".pdf")
			if err := generatePDF(cfg, tc, fname); err != nil {
				t.Fatalf("%s: %v", tc.Name, err)
			}
			body, err := os.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(body, []byte("%PDF-")) {
				t.Errorf("%s: not a PDF file", fname)
			}
		}
	}
}
