package kent

import (
	"errors"
	"testing"
)

func TestWigToBigWigNotImplemented(t *testing.T) {
	err := WigToBigWig("in.bedGraph", "chrom.sizes", "out.bw")
	if !errors.Is(err, ErrNotImplemented) {
		t.Error("expected ErrNotImplemented, got", err)
	}
}

func TestLiftOverMissingTool(t *testing.T) {
	t.Setenv("PATH", "")
	if _, err := LiftOverPath(); err == nil {
		t.Error("expected an error with no liftOver on PATH")
	}
	if err := LiftOver("in.bed", "x.chain", "out.bed", "unmapped"); err == nil {
		t.Error("expected LiftOver to fail fast with no executable")
	}
}
