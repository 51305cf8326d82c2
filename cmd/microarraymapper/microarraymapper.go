package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fls-bioinformatics-core/microarraytools/mapper"
)

func usage() {
	fmt.Print(
		"microarraymapper - Convert microarray probeset data to genome tracks\n\n" +
			"Converts a probeset definition file to BED, optionally remaps the\n" +
			"coordinates between assemblies with liftOver, cross-references against\n" +
			"exon data to make bedGraph tracks and sorts them in place. Generated\n" +
			"files are written to the working directory.\n\n" +
			"Usage:\n" +
			"  microarraymapper <probeset_file> <exon_file> [<liftover_chain>]\n\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.Arg(0) == "" {
		usage()
		log.Fatal("ERROR: Must supply a probeset file.")
	}
	if flag.Arg(1) == "" {
		usage()
		log.Fatal("ERROR: Must supply an exon data file.")
	}

	err := mapper.New().Map(flag.Arg(0), flag.Arg(1), flag.Arg(2))
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
}
