package main

import (
	"flag"
	"fmt"

	"github.com/fls-bioinformatics-core/microarraytools/xref"
	"github.com/vertgenlab/gonomics/exception"
)

func towigUsage(towigFlags *flag.FlagSet) {
	fmt.Print(
		"towig - Cross-reference a probeset BED file against exon data\n\n" +
			"Writes one bedGraph track per data column in the exon file, named\n" +
			"<exon-basename>_<column>.bedGraph.\n\n" +
			"Usage:\n" +
			"  microarraytools towig [options] -i probeset.bed -e exon_data.txt\n\n" +
			"Options:\n")
	towigFlags.PrintDefaults()
}

func runTowig(args []string) {
	var err error
	towigFlags := flag.NewFlagSet("towig", flag.ExitOnError)

	bedFile := towigFlags.String("i", "", "Input probeset BED file.")
	exonFile := towigFlags.String("e", "", "Exon data matrix. First row is a header, first column is the probeset id.")
	plot := towigFlags.Bool("plot", false, "Print a terminal profile of each data column.")

	err = towigFlags.Parse(args)
	exception.PanicOnErr(err)
	towigFlags.Usage = func() { towigUsage(towigFlags) }

	if *bedFile == "" || *exonFile == "" {
		towigFlags.Usage()
		errExit("\nERROR: must have inputs for -i and -e")
	}

	xref.CrossReference(*bedFile, *exonFile, *plot)
}
