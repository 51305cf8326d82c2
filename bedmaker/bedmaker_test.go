package bedmaker

import (
	"os"
	"testing"

	"github.com/vertgenlab/gonomics/fileio"
)

func TestMakeBed(t *testing.T) {
	out := "testdata/regions.bed"
	err := MakeBed("testdata/regions.txt", out)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(out)

	expected := []string{
		`track name="regions" description="regions" visibility=pack itemRgb="On"`,
		"chr1\t100\t200\tTX1_fc2.5\t0.0005\t+\t100\t200\t255,0,0",
		"chr2\t300\t400\tTX2_fc1.2\t0.01\t-\t300\t400\t205,0,0",
		"chr3\t500\t600\tTX3_fc0.8\t0.5\t+\t500\t600\t139,0,0",
	}
	checkLines(t, out, expected)
}

func TestMakeUnexplainedBed(t *testing.T) {
	out := "testdata/unexplained.bed"
	err := MakeUnexplainedBed("testdata/unexplained.txt", out)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(out)

	expected := []string{
		`track name="unexplained" description="unexplained" visibility=pack itemRgb="On"`,
		"chr1\t1000\t1350\tS01_350bp\t450\t+\t1000\t1350\t0,0,255",
		"chr2\t2000\t2100\tS02_100bp\t1000\t+\t2000\t2100\t139,0,0",
		"chr3\t3000\t3200\tS03_400bp\t250\t+\t3000\t3200\t139,0,0",
	}
	checkLines(t, out, expected)
}

func TestRGB(t *testing.T) {
	if RGB(0.0001) != "255,0,0" {
		t.Error("expected brightest red below 0.001")
	}
	if RGB(0.01) != "205,0,0" {
		t.Error("expected mid red below 0.05")
	}
	if RGB(0.05) != "139,0,0" {
		t.Error("expected dark red at 0.05")
	}
	if RGBUnexplained(301, 301) != "0,0,255" {
		t.Error("expected blue for long well-covered region")
	}
	if RGBUnexplained(300, 500) != "139,0,0" {
		t.Error("expected dark red at length threshold")
	}
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
