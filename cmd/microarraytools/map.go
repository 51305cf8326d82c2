package main

import (
	"flag"
	"fmt"

	"github.com/fls-bioinformatics-core/microarraytools/mapper"
	"github.com/vertgenlab/gonomics/exception"
)

func mapUsage(mapFlags *flag.FlagSet) {
	fmt.Print(
		"map - Run the probeset to genome-track pipeline\n\n" +
			"Converts a probeset definition file to BED, optionally remaps the\n" +
			"coordinates with liftOver, cross-references against exon data to make\n" +
			"bedGraph tracks and sorts them in place.\n\n" +
			"Usage:\n" +
			"  microarraytools map <probeset_file> <exon_file> [<liftover_chain>]\n\n" +
			"Options:\n")
	mapFlags.PrintDefaults()
}

func runMap(args []string) {
	var err error
	mapFlags := flag.NewFlagSet("map", flag.ExitOnError)
	err = mapFlags.Parse(args)
	exception.PanicOnErr(err)
	mapFlags.Usage = func() { mapUsage(mapFlags) }

	if mapFlags.Arg(0) == "" {
		mapFlags.Usage()
		errExit("\nERROR: must supply a probeset file")
	}
	if mapFlags.Arg(1) == "" {
		mapFlags.Usage()
		errExit("\nERROR: must supply an exon data file")
	}

	err = mapper.New().Map(mapFlags.Arg(0), mapFlags.Arg(1), mapFlags.Arg(2))
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
}
