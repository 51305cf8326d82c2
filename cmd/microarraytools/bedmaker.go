package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fls-bioinformatics-core/microarraytools/bedmaker"
	"github.com/vertgenlab/gonomics/exception"
)

func bedMakerUsage(bmFlags *flag.FlagSet) {
	fmt.Print(
		"bedmaker - Make a BED custom track from a tab-delimited file\n\n" +
			"The default schema expects columns chromosome, start, stop, strand,\n" +
			"transcript, fold change and p-value. With -unexplained the schema is\n" +
			"chromosome, start, stop, sample id, length and average coverage.\n" +
			"Output is written to <input-basename>.bed.\n\n" +
			"Usage:\n" +
			"  microarraytools bedmaker [options] data.txt\n\n" +
			"Options:\n")
	bmFlags.PrintDefaults()
}

func runBedMaker(args []string) {
	var err error
	bmFlags := flag.NewFlagSet("bedmaker", flag.ExitOnError)

	unexplained := bmFlags.Bool("unexplained", false, "Input uses the unexplained-regions schema.")

	err = bmFlags.Parse(args)
	exception.PanicOnErr(err)
	bmFlags.Usage = func() { bedMakerUsage(bmFlags) }

	infile := bmFlags.Arg(0)
	if infile == "" {
		bmFlags.Usage()
		errExit("\nERROR: must supply an input file")
	}

	base := filepath.Base(infile)
	outfile := strings.TrimSuffix(base, filepath.Ext(base)) + ".bed"
	fmt.Printf("Output file: %s\n", outfile)

	if *unexplained {
		err = bedmaker.MakeUnexplainedBed(infile, outfile)
	} else {
		err = bedmaker.MakeBed(infile, outfile)
	}
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
}
