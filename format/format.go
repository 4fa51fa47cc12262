// SPDX-License-Identifier: MIT

// Package format writes a tad.Hierarchy as BED or BEDPE text.
//
// BED has three tab-separated columns per domain (chrom, start, end), levels
// written one after another in ascending order. BEDPE pairs every domain
// with itself for 2D viewers such as Juicebox:
//
//	chrom1 start1 end1 chrom2 start2 end2 name score strand1 strand2 color
//
// name is level_<k>, score is the silhouette width or ".", both strands are
// "." and color is picked from Palette by level.
package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvtad/tad"
)

// Palette holds the BEDPE colours of levels 1, 2, … (cycled).
var Palette = []string{
	"0,0,255",
	"255,0,0",
	"0,160,0",
	"255,140,0",
	"148,0,211",
	"0,170,170",
}

// Color returns the BEDPE colour of level k (1-based).
func Color(k int) string {
	if k < 1 {
		k = 1
	}

	return Palette[(k-1)%len(Palette)]
}

// Range is the flat form of a domain.
type Range struct {
	Chrom string
	Start int64
	End   int64
	Score *float64
}

// Ranges returns the domains of h keyed by level.
func Ranges(h tad.Hierarchy) map[int][]Range {
	out := make(map[int][]Range, h.Depth())
	for k := 1; k <= h.Depth(); k++ {
		level := h.Level(k)
		rs := make([]Range, len(level))
		for i, d := range level {
			rs[i] = Range{Chrom: d.Chrom, Start: d.Start, End: d.End, Score: d.Score}
		}
		out[k] = rs
	}

	return out
}

// WriteBED writes every domain of hs as chrom, start, end.
func WriteBED(w io.Writer, hs ...tad.Hierarchy) error {
	bw := bufio.NewWriter(w)
	for _, h := range hs {
		for _, d := range h.Domains() {
			if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\n", d.Chrom, d.Start, d.End); err != nil {
				return fmt.Errorf("format: bed: %w", err)
			}
		}
	}

	return flush(bw, "bed")
}

// WriteBEDPE writes every domain of hs as a self-paired BEDPE record.
func WriteBEDPE(w io.Writer, hs ...tad.Hierarchy) error {
	bw := bufio.NewWriter(w)
	for _, h := range hs {
		for _, d := range h.Domains() {
			_, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t%d\t%d\tlevel_%d\t%s\t.\t.\t%s\n",
				d.Chrom, d.Start, d.End, d.Chrom, d.Start, d.End, d.Level, score(d.Score), Color(d.Level))
			if err != nil {
				return fmt.Errorf("format: bedpe: %w", err)
			}
		}
	}

	return flush(bw, "bedpe")
}

func score(s *float64) string {
	if s == nil {
		return "."
	}

	return strconv.FormatFloat(*s, 'f', 4, 64)
}

func flush(bw *bufio.Writer, kind string) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("format: %s: %w", kind, err)
	}

	return nil
}
