package xref

import (
	"os"
	"testing"

	"github.com/vertgenlab/gonomics/fileio"
)

func TestCrossReference(t *testing.T) {
	files := CrossReference("testdata/probes.bed", "testdata/exon_data.txt", false)
	defer func() {
		for _, f := range files {
			os.Remove(f)
		}
	}()

	if len(files) != 2 || files[0] != "exon_data_GroupA.bedGraph" || files[1] != "exon_data_GroupB.bedGraph" {
		t.Fatal("problem with output file naming", files)
	}

	checkLines(t, files[0], []string{
		`track type=bedGraph name="GroupA" description="BedGraph format"`,
		"visibility=full color=2,100,0 altColor=0,100,200 priority=20",
		"chr1\t1788\t2030\t1.5",
		"chr1\t2040\t2190\t0.5",
	})
	checkLines(t, files[1], []string{
		`track type=bedGraph name="GroupB" description="BedGraph format"`,
		"visibility=full color=2,100,0 altColor=0,100,200 priority=20",
		"chr1\t1788\t2030\t2.5",
		"chr1\t2040\t2190\t1.0",
	})
}

func checkLines(t *testing.T, file string, expected []string) {
	t.Helper()
	lines := fileio.Read(file)
	if len(lines) != len(expected) {
		t.Fatalf("%s: expected %d lines, got %d", file, len(expected), len(lines))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("%s line %d:\nexpected %q\ngot      %q", file, i, expected[i], lines[i])
		}
	}
}
