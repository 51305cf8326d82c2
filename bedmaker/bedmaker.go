// Package bedmaker builds BED custom-track files from tab-delimited
// data files. Two input schemas are supported: the standard
// transcript/fold-change/p-value layout, and the "unexplained" regions
// layout carrying sample id, length and average coverage.
package bedmaker

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

// Columns of the standard input schema, in file order. Extra columns
// are ignored.
var standardColumns = []string{"chr", "start", "stop", "strand", "transcript", "fold_change", "p_value"}

// Columns of the unexplained-regions input schema, in file order.
var unexplainedColumns = []string{"chr", "start", "stop", "sample_id", "length", "average_coverage"}

// MakeBed converts a tab-delimited file with the standard schema into a
// BED custom track at outfile. The name field is
// <transcript>_fc<fold_change> and the RGB field is banded on p-value.
func MakeBed(infile, outfile string) error {
	data, err := load(infile, standardColumns)
	if err != nil {
		return err
	}
	PrependChromosomeName(data, "chr")
	data.Compute("name", func(l *tabfile.Line) string {
		return fmt.Sprintf("%s_fc%s", l.GetName("transcript"), l.GetName("fold_change"))
	})
	var badLine *tabfile.Line
	data.Compute("RGB", func(l *tabfile.Line) string {
		p, err := strconv.ParseFloat(l.GetName("p_value"), 64)
		if err != nil {
			badLine = l
			return ""
		}
		return RGB(p)
	})
	if badLine != nil {
		return fmt.Errorf("%s: couldn't convert p-value to float (line %d): '%s'", infile, badLine.Lineno(), badLine.GetName("p_value"))
	}
	writeTrack(data, outfile, trackName(infile), "chr", "start", "stop", "name", "p_value", "strand", "start", "stop", "RGB")
	return nil
}

// MakeUnexplainedBed converts a tab-delimited file with the
// unexplained-regions schema into a BED custom track at outfile. The
// stop position is corrected by one base, the name field is
// <sample_id>_<length>bp, and the score is the average coverage capped
// at 1000.
func MakeUnexplainedBed(infile, outfile string) error {
	data, err := load(infile, unexplainedColumns)
	if err != nil {
		return err
	}
	AdjustStopPosition(data)
	data.Compute("name", func(l *tabfile.Line) string {
		return fmt.Sprintf("%s_%sbp", l.GetName("sample_id"), l.GetName("length"))
	})
	data.Compute("strand", func(l *tabfile.Line) string { return "+" })
	var badLine *tabfile.Line
	data.Compute("score", func(l *tabfile.Line) string {
		cov, err := strconv.ParseFloat(l.GetName("average_coverage"), 64)
		if err != nil {
			badLine = l
			return ""
		}
		score := int(cov)
		if score > 1000 {
			score = 1000
		}
		return strconv.Itoa(score)
	})
	if badLine != nil {
		return fmt.Errorf("%s: couldn't convert average coverage to float (line %d): '%s'", infile, badLine.Lineno(), badLine.GetName("average_coverage"))
	}
	data.Compute("RGB", func(l *tabfile.Line) string {
		length, _ := strconv.ParseFloat(l.GetName("length"), 64)
		cov, _ := strconv.ParseFloat(l.GetName("average_coverage"), 64)
		return RGBUnexplained(length, cov)
	})
	writeTrack(data, outfile, trackName(infile), "chr", "start", "stop", "name", "score", "strand", "start", "stop", "RGB")
	return nil
}

// load reads a tab file with fixed column names, then drops a leading
// non-data row (a header smuggled into the data) and any blank rows.
func load(infile string, columns []string) (*tabfile.Table, error) {
	data, err := tabfile.Read(infile, tabfile.Options{ColumnNames: columns})
	if err != nil {
		return nil, err
	}
	if data.Len() > 0 && (!isDigits(data.Line(0).GetName("start")) || !isDigits(data.Line(0).GetName("stop"))) {
		log.Printf("first line of %s doesn't look like data, removing", infile)
		data.Delete(0)
	}
	for i := 0; i < data.Len(); {
		if data.Line(i).IsBlank() {
			data.Delete(i)
		} else {
			i++
		}
	}
	return data, nil
}

// writeTrack writes the named columns of every row as a BED custom
// track, preceded by the UCSC track header line.
func writeTrack(data *tabfile.Table, outfile, name string, columns ...string) {
	out := fileio.EasyCreate(outfile)
	fmt.Fprintf(out, "track name=%q description=%q visibility=pack itemRgb=\"On\"\n", name, name)
	for _, l := range data.Lines() {
		if l.IsBlank() {
			log.Printf("no data items on line %d, ignoring", l.Lineno())
			continue
		}
		fmt.Fprintf(out, "%s\n", l.SubsetName(columns...))
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// PrependChromosomeName prefixes the 'chr' column of every row that
// does not already carry the prefix.
func PrependChromosomeName(data *tabfile.Table, prefix string) {
	data.Transform("chr", func(l *tabfile.Line) string {
		if strings.HasPrefix(l.GetName("chr"), "chr") {
			return l.GetName("chr")
		}
		return prefix + l.GetName("chr")
	})
}

// AdjustStopPosition subtracts one base from the 'stop' column of every
// row.
func AdjustStopPosition(data *tabfile.Table) {
	data.Transform("stop", func(l *tabfile.Line) string {
		stop, err := strconv.Atoi(l.GetName("stop"))
		if err != nil {
			log.Printf("unable to fix stop position for L%d", l.Lineno())
			return l.GetName("stop")
		}
		return strconv.Itoa(stop - 1)
	})
}

// RGB returns the track colour for a p-value: brighter red for more
// significant lines.
func RGB(pValue float64) string {
	switch {
	case pValue < 0.001:
		return "255,0,0"
	case pValue < 0.05:
		return "205,0,0"
	default:
		return "139,0,0"
	}
}

// RGBUnexplained returns the track colour for an unexplained region:
// blue for long, well-covered regions.
func RGBUnexplained(length, averageCoverage float64) string {
	if length > 300 && averageCoverage > 300 {
		return "0,0,255"
	}
	return "139,0,0"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func trackName(infile string) string {
	base := filepath.Base(infile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
