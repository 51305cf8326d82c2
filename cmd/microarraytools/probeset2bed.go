package main

import (
	"flag"
	"fmt"

	"github.com/fls-bioinformatics-core/microarraytools/probeset"
	"github.com/vertgenlab/gonomics/exception"
)

func probeset2BedUsage(psFlags *flag.FlagSet) {
	fmt.Print(
		"probeset2bed - Convert probeset definitions to BED\n\n" +
			"Usage:\n" +
			"  microarraytools probeset2bed [options] -i probeset.fa\n\n" +
			"Options:\n")
	psFlags.PrintDefaults()
}

func runProbeset2Bed(args []string) {
	var err error
	psFlags := flag.NewFlagSet("probeset2bed", flag.ExitOnError)

	input := psFlags.String("i", "", "Input probeset definition file. May be gzipped.")
	output := psFlags.String("o", "stdout", "Output BED file.")

	err = psFlags.Parse(args)
	exception.PanicOnErr(err)
	psFlags.Usage = func() { probeset2BedUsage(psFlags) }

	if *input == "" {
		psFlags.Usage()
		errExit("\nERROR: must have input for -i")
	}

	probeset.ToBed(*input, *output)
}
