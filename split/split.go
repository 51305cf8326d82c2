// Package split generates bedGraph custom-track files from selected
// columns of a tab-delimited data file whose first three columns are
// chromosome, start and end.
package split

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fls-bioinformatics-core/microarraytools/tabfile"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Options control bedGraph generation.
type Options struct {
	// Select picks the data columns to output, one bedGraph per
	// entry. Entries are 1-based column indices, or column names when
	// FirstLineIsHeader is set.
	Select []string
	// SkipFirstLine discards the first line of the input.
	SkipFirstLine bool
	// FirstLineIsHeader takes column names from the first line.
	FirstLineIsHeader bool
	// FixChromosome prepends "chr" to chromosome names lacking it.
	FixChromosome bool
	// TrackHeader is an optional header line written to each output
	// file. Empty means no header.
	TrackHeader string
}

// BedGraphs writes one bedGraph per selected column and returns the
// created file names in selection order. Each output row is the first
// three columns of the input (end position corrected by one base)
// followed by the selected column's value.
func BedGraphs(infile string, opts Options) ([]string, error) {
	data, err := tabfile.Read(infile, tabfile.Options{
		SkipFirstLine:     opts.SkipFirstLine,
		FirstLineIsHeader: opts.FirstLineIsHeader,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("read in %d lines from %s", data.Len(), infile)

	if len(opts.Select) == 0 {
		return nil, fmt.Errorf("%s: no columns selected for output", infile)
	}

	outputRoot := strings.TrimSuffix(filepath.Base(infile), filepath.Ext(infile))
	columns, names, err := resolveSelection(data, opts, outputRoot)
	if err != nil {
		return nil, err
	}

	if opts.FixChromosome {
		for _, l := range data.Lines() {
			if !strings.HasPrefix(l.Get(0), "chr") {
				l.Set(0, "chr"+l.Get(0))
			}
		}
	}
	// bedGraph end positions are zero-based half-open; inputs carry
	// fully-closed coordinates.
	for _, l := range data.Lines() {
		end, err := strconv.Atoi(l.Get(2))
		if err != nil {
			log.Printf("unable to fix end position for L%d", l.Lineno())
			continue
		}
		l.Set(2, strconv.Itoa(end-1))
	}

	out := make([]*fileio.EasyWriter, len(columns))
	for i, name := range names {
		log.Printf("writing %s", name)
		out[i] = fileio.EasyCreate(name)
		if opts.TrackHeader != "" {
			fmt.Fprintf(out[i], "%s\n", opts.TrackHeader)
		}
	}
	for _, l := range data.Lines() {
		for i, c := range columns {
			fmt.Fprintf(out[i], "%s\n", l.Subset(0, 1, 2, c))
		}
	}
	for _, w := range out {
		err = w.Close()
		exception.PanicOnErr(err)
	}
	return names, nil
}

// resolveSelection maps user selectors to 0-based column indices and
// output file names.
func resolveSelection(data *tabfile.Table, opts Options, outputRoot string) (columns []int, names []string, err error) {
	ncols := data.NColumns()
	if ncols == 0 && data.Len() > 0 {
		ncols = data.Line(0).Len()
	}
	for _, sel := range opts.Select {
		var col int
		if n, convErr := strconv.Atoi(sel); convErr == nil {
			col = n - 1
			if col < 0 || col >= ncols {
				return nil, nil, fmt.Errorf("unable to find column %s, not enough columns in input file", sel)
			}
		} else {
			var ok bool
			col, ok = data.ColumnIndex(sel)
			if !ok {
				return nil, nil, fmt.Errorf("unable to find column '%s' in input file", sel)
			}
		}
		var name string
		if opts.FirstLineIsHeader {
			name = data.Header()[col] + ".bedGraph"
		} else {
			name = outputRoot + "_" + sel + ".bedGraph"
		}
		columns = append(columns, col)
		names = append(names, strings.ReplaceAll(name, " ", "_"))
	}
	return columns, names, nil
}
