// Package xref cross-references probeset BED coordinates against an
// exon data matrix, producing one bedGraph custom track per data
// column.
package xref

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/gonum/stat"
)

// progressInterval controls how often row progress is reported.
const progressInterval = 10000

// CrossReference joins an exon data matrix against probeset BED
// coordinates. The matrix's first row is a header: a probeset id column
// followed by one column per exon group. Every data row whose id
// matches a BED record name contributes one interval, carrying that
// column's value, to each per-column bedGraph
// (<exon-basename>_<column>.bedGraph). Rows with unknown ids are
// counted and skipped. Returns the created file names.
//
// When plot is true a terminal profile of each column's values is
// printed after the join.
func CrossReference(bedFile, exonFile string, plot bool) []string {
	probes := bed.Read(bedFile)
	byName := make(map[string]bed.Bed, len(probes))
	for _, b := range probes {
		if _, ok := byName[b.Name]; !ok {
			byName[b.Name] = b
		}
	}
	log.Printf("read in %d probeset records from %s", len(probes), bedFile)

	in := fileio.EasyOpen(exonFile)
	header, done := fileio.EasyNextLine(in)
	if done {
		log.Fatalf("ERROR: exon data file %s is empty", exonFile)
	}
	columns := strings.Fields(header)
	if len(columns) < 2 {
		log.Fatalf("ERROR: exon data file %s has no data columns in header:\n%s\n", exonFile, header)
	}
	log.Printf("found %d columns in exon data header", len(columns))

	basename := strings.TrimSuffix(filepath.Base(exonFile), filepath.Ext(exonFile))
	names := make([]string, 0, len(columns)-1)
	out := make([]*fileio.EasyWriter, 0, len(columns)-1)
	fmt.Println("Output files (one per column in exon data file):")
	for _, column := range columns[1:] {
		filen := basename + "_" + column + ".bedGraph"
		fmt.Printf("\t%s\n", filen)
		w := fileio.EasyCreate(filen)
		fmt.Fprintf(w, "track type=bedGraph name=%q description=\"BedGraph format\"\n", column)
		fmt.Fprintf(w, "visibility=full color=2,100,0 altColor=0,100,200 priority=20\n")
		names = append(names, filen)
		out = append(out, w)
	}

	values := make([][]float64, len(out))
	var read, skipped int
	var line string
	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		read++
		if read%progressInterval == 0 {
			fmt.Printf("Read %d\n", read)
		}
		probe, ok := byName[fields[0]]
		if !ok {
			log.Printf("WARNING: exon data has id not found in probeset data: %s", fields[0])
			skipped++
			continue
		}
		for j, w := range out {
			if j+1 >= len(fields) {
				log.Printf("WARNING: missing value for column %s on row %d", columns[j+1], read)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", probe.Chrom, probe.ChromStart, probe.ChromEnd, fields[j+1])
			if v, err := strconv.ParseFloat(fields[j+1], 64); err == nil {
				values[j] = append(values[j], v)
			}
		}
	}
	err := in.Close()
	exception.PanicOnErr(err)
	for _, w := range out {
		err = w.Close()
		exception.PanicOnErr(err)
	}

	for j := range values {
		if len(values[j]) == 0 {
			continue
		}
		log.Printf("column %s: n=%d mean=%.4g stddev=%.4g", columns[j+1], len(values[j]), stat.Mean(values[j], nil), stat.StdDev(values[j], nil))
		if plot {
			fmt.Printf("%s\n%s\n", columns[j+1], asciigraph.Plot(values[j], asciigraph.Height(5), asciigraph.Precision(0)))
		}
	}
	fmt.Printf("Finished: Read %d, skipped %d\n", read, skipped)
	return names
}
