package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/fls-bioinformatics-core/microarraytools/split"
	"github.com/vertgenlab/gonomics/exception"
)

func splitUsage(splitFlags *flag.FlagSet) {
	fmt.Print(
		"split - Make bedGraph custom tracks from columns of a tab file\n\n" +
			"The input file must have chromosome, start and end as its first three\n" +
			"columns. One bedGraph is written per selected data column.\n\n" +
			"Usage:\n" +
			"  microarraytools split [options] -select 4,6,7 data.txt\n\n" +
			"Options:\n")
	splitFlags.PrintDefaults()
}

func runSplit(args []string) {
	var err error
	splitFlags := flag.NewFlagSet("split", flag.ExitOnError)

	selection := splitFlags.String("select", "", "Columns to output, as comma-separated 1-based indices or column names (with -first-line-is-header).")
	skipFirstLine := splitFlags.Bool("skip-first-line", false, "Skip the first line of the input file.")
	firstLineIsHeader := splitFlags.Bool("first-line-is-header", false, "Take column names from the first line of the input file.")
	fixChromosome := splitFlags.Bool("fix-chromosome", false, "Prepend 'chr' to chromosome names lacking it.")
	trackHeader := splitFlags.String("header", "", "Header line to write to each output bedGraph.")

	err = splitFlags.Parse(args)
	exception.PanicOnErr(err)
	splitFlags.Usage = func() { splitUsage(splitFlags) }

	if splitFlags.Arg(0) == "" {
		splitFlags.Usage()
		errExit("\nERROR: must supply an input file")
	}
	if *selection == "" {
		splitFlags.Usage()
		errExit("\nERROR: must select at least one column with -select")
	}

	_, err = split.BedGraphs(splitFlags.Arg(0), split.Options{
		Select:            strings.Split(*selection, ","),
		SkipFirstLine:     *skipFirstLine,
		FirstLineIsHeader: *firstLineIsHeader,
		FixChromosome:     *fixChromosome,
		TrackHeader:       *trackHeader,
	})
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
}
