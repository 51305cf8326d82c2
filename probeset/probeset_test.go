package probeset

import (
	"os"
	"strings"
	"testing"

	"github.com/vertgenlab/gonomics/fileio"
)

func TestRead(t *testing.T) {
	records := Read("testdata/probes.fa")
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Chrom != "chr1" || records[0].ChromStart != 1788 || records[0].ChromEnd != 2030 || records[0].Name != "2315101" {
		t.Error("problem parsing first probeset header", records[0])
	}
	if records[2].Chrom != "chr2" || records[2].ChromStart != 500 || records[2].ChromEnd != 750 || records[2].Name != "2315103" {
		t.Error("problem parsing last probeset header", records[2])
	}
	if records[0].FieldsInitialized != 4 {
		t.Error("expected 4 initialized bed fields, got", records[0].FieldsInitialized)
	}
}

func TestToBed(t *testing.T) {
	out := "testdata/probes.bed"
	ToBed("testdata/probes.fa", out)
	defer os.Remove(out)

	expected := []string{
		"chr1\t1788\t2030\t2315101",
		"chr1\t2040\t2190\t2315102",
		"chr2\t500\t750\t2315103",
	}
	lines := fileio.Read(out)
	if len(lines) != len(expected) {
		t.Fatalf("expected %d bed lines, got %d", len(expected), len(lines))
	}
	for i := range expected {
		if strings.TrimRight(lines[i], "\n") != expected[i] {
			t.Errorf("bed line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}
