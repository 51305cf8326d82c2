// Package mapper drives the microarray mapping pipeline: probeset
// definitions are converted to BED, optionally remapped between genome
// assemblies with liftOver, cross-referenced against exon data into
// bedGraph tracks, and the tracks sorted in place.
package mapper

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fls-bioinformatics-core/microarraytools/kent"
	"github.com/fls-bioinformatics-core/microarraytools/probeset"
	"github.com/fls-bioinformatics-core/microarraytools/xref"
	"golang.org/x/exp/slices"
)

// Pipeline holds the external tool hooks for a mapping run. The zero
// value is not usable; call New.
type Pipeline struct {
	// LiftOver remaps a BED file between assemblies.
	LiftOver func(bedIn, chain, liftedOut, unmappedOut string) error
	// BedSort sorts a bedGraph file in place.
	BedSort func(file string) error
}

// New returns a Pipeline wired to the external UCSC Kent tools.
func New() *Pipeline {
	return &Pipeline{
		LiftOver: kent.LiftOver,
		BedSort:  kent.BedSort,
	}
}

// Map runs the pipeline. Generated files land in the working
// directory: <probeset-basename>.bed, then with a chain file
// <probeset-basename>_liftOver.bed and <probeset-basename>_unmapped,
// then <exon-basename>_*.bedGraph tracks, sorted in place. chainFile
// may be empty, in which case the unlifted BED feeds the
// cross-reference stage. A failing stage aborts the run.
func (p *Pipeline) Map(probesetFile, exonFile, chainFile string) error {
	base := basename(probesetFile)
	bedFile := base + ".bed"
	fmt.Printf("Converting probeset data %s to BED: %s\n", probesetFile, bedFile)
	probeset.ToBed(probesetFile, bedFile)

	if chainFile != "" {
		lifted := base + "_liftOver.bed"
		unmapped := base + "_unmapped"
		fmt.Printf("Running liftOver with chain file %s: %s\n", chainFile, lifted)
		if err := p.LiftOver(bedFile, chainFile, lifted, unmapped); err != nil {
			return err
		}
		bedFile = lifted
	} else {
		fmt.Println("No liftOver chain file supplied, liftOver skipped")
	}

	fmt.Printf("Cross-referencing %s against exon data %s\n", bedFile, exonFile)
	xref.CrossReference(bedFile, exonFile, false)

	tracks, err := filepath.Glob(basename(exonFile) + "_*.bedGraph")
	if err != nil {
		return err
	}
	slices.Sort(tracks)
	for _, track := range tracks {
		fmt.Printf("Sorting %s\n", track)
		if err = p.BedSort(track); err != nil {
			return err
		}
	}

	fmt.Println("BigWig conversion not implemented")
	return nil
}

// basename strips the directory and extension from a file path.
func basename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
