// Package kent wraps the external UCSC Kent command-line tools used by
// the mapping pipeline. The tools are treated as black boxes: inputs and
// outputs are files, and a tool's exit status is surfaced as an error
// together with whatever it printed.
package kent

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotImplemented is returned by conversion steps that are declared
// but not yet wired to a tool.
var ErrNotImplemented = errors.New("conversion not implemented")

// LiftOverPath resolves the liftOver executable on the search path,
// accepting either the canonical "liftOver" or an all-lowercase install.
func LiftOverPath() (string, error) {
	path, err := exec.LookPath("liftOver")
	if err == nil {
		return path, nil
	}
	path, err = exec.LookPath("liftover")
	if err != nil {
		return "", fmt.Errorf("liftOver executable not found on PATH: %w", err)
	}
	return path, nil
}

// LiftOver remaps bedIn between assemblies using the given chain file,
// writing remapped records to liftedOut and failures to unmappedOut.
func LiftOver(bedIn, chain, liftedOut, unmappedOut string) error {
	tool, err := LiftOverPath()
	if err != nil {
		return err
	}
	cmd := exec.Command(tool, bedIn, chain, liftedOut, unmappedOut)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("liftOver failed on %s: %w: %s", bedIn, err, string(output))
	}
	return nil
}

// BedSort sorts a BED or bedGraph file in place with the external
// bedSort utility.
func BedSort(file string) error {
	cmd := exec.Command("bedSort", file, file)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("bedSort failed on %s: %w: %s", file, err, string(output))
	}
	return nil
}

// WigToBigWig will compress a bedGraph into BigWig via the external
// wigToBigWig tool. Not yet wired into the pipeline, which reports the
// step as skipped.
func WigToBigWig(bedGraph, chromSizes, outBigWig string) error {
	return ErrNotImplemented
}
