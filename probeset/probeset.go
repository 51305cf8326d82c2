// Package probeset parses microarray probeset definition files and
// converts the probe coordinates to BED records.
package probeset

import (
	"log"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// headerPrefix marks probeset definition lines. All other lines
// (probe sequence data) are ignored.
const headerPrefix = ">probe_set:"

// Read parses a probeset definition file and returns one BED record per
// probeset header line. A header looks like:
//
//	>probe_set:HuEx-1_0-st-v2:2315101; Assembly=build-34/hg16; Seqname=chr1; Start=1788; Stop=2030; Strand=+; Length=243; category=main
//
// The returned record uses the Seqname as chrom and the numeric probeset
// id as the BED name field.
func Read(filename string) []bed.Bed {
	var records []bed.Bed
	in := fileio.EasyOpen(filename)
	var line string
	var done bool
	lineno := 0
	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		lineno++
		if !strings.HasPrefix(line, headerPrefix) {
			continue
		}
		records = append(records, parseHeader(filename, lineno, line))
	}
	err := in.Close()
	exception.PanicOnErr(err)
	return records
}

func parseHeader(filename string, lineno int, line string) bed.Bed {
	fields := strings.Split(line, ";")
	if len(fields) < 5 {
		log.Fatalf("ERROR: malformed probeset header in %s\nerror on line %d:\n%s\n", filename, lineno, line)
	}
	ids := strings.Split(fields[0], ":")
	if len(ids) < 3 {
		log.Fatalf("ERROR: malformed probeset identifier in %s\nerror on line %d:\n%s\n", filename, lineno, line)
	}
	return bed.Bed{
		Chrom:             keyValue(filename, lineno, fields[2]),
		ChromStart:        atoi(filename, lineno, keyValue(filename, lineno, fields[3])),
		ChromEnd:          atoi(filename, lineno, keyValue(filename, lineno, fields[4])),
		Name:              ids[2],
		FieldsInitialized: 4,
	}
}

// keyValue pulls the value from a "Key=Value" field.
func keyValue(filename string, lineno int, field string) string {
	parts := strings.SplitN(field, "=", 2)
	if len(parts) != 2 {
		log.Fatalf("ERROR: expected Key=Value field in %s\nerror on line %d:\n%s\n", filename, lineno, field)
	}
	return strings.TrimSpace(parts[1])
}

func atoi(filename string, lineno int, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("ERROR: non-numeric coordinate '%s' in %s on line %d\n", s, filename, lineno)
	}
	return n
}

// ToBed converts a probeset definition file to a BED file at outfile.
func ToBed(probesetFile, outfile string) {
	records := Read(probesetFile)
	out := fileio.EasyCreate(outfile)
	for _, b := range records {
		bed.WriteBed(out, b)
	}
	err := out.Close()
	exception.PanicOnErr(err)
}
