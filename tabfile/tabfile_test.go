package tabfile

import (
	"testing"
)

func TestReadWithColumnNames(t *testing.T) {
	data, err := Read("testdata/plain.txt", Options{ColumnNames: []string{"chr", "start", "stop", "name"}})
	if err != nil {
		t.Fatal(err)
	}
	if data.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", data.Len())
	}
	if data.NColumns() != 4 {
		t.Errorf("expected 4 columns, got %d", data.NColumns())
	}
	if data.Line(0).GetName("chr") != "chr1" || data.Line(0).GetName("name") != "A" {
		t.Error("problem with named column access", data.Line(0).String())
	}
	if data.Line(1).Get(1) != "300" {
		t.Error("problem with indexed access", data.Line(1).String())
	}
	// comment line skipped but line numbers track the file
	if data.Line(0).Lineno() != 2 {
		t.Error("expected first data line at L2, got", data.Line(0).Lineno())
	}
}

func TestReadFirstLineIsHeader(t *testing.T) {
	data, err := Read("testdata/header.txt", Options{FirstLineIsHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	header := data.Header()
	if len(header) != 4 || header[0] != "chr" || header[3] != "value" {
		t.Fatal("problem taking header from first line", header)
	}
	if data.Len() != 2 {
		t.Fatalf("expected 2 data lines, got %d", data.Len())
	}
	if data.Line(1).GetName("value") != "2.5" {
		t.Error("problem with named access after header parse", data.Line(1).String())
	}
}

func TestSkipFirstLine(t *testing.T) {
	data, err := Read("testdata/header.txt", Options{SkipFirstLine: true})
	if err != nil {
		t.Fatal(err)
	}
	if data.Len() != 2 {
		t.Fatalf("expected 2 lines after skip, got %d", data.Len())
	}
	if data.NColumns() != 0 {
		t.Error("expected no named columns, got", data.Header())
	}
}

func TestTransformAndCompute(t *testing.T) {
	data, err := Read("testdata/header.txt", Options{FirstLineIsHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	err = data.Transform("chr", func(l *Line) string { return "x" + l.GetName("chr") })
	if err != nil {
		t.Fatal(err)
	}
	if data.Line(0).GetName("chr") != "xchr1" {
		t.Error("problem with Transform", data.Line(0).String())
	}
	data.Compute("doubled", func(l *Line) string { return l.GetName("value") + l.GetName("value") })
	if data.Line(1).GetName("doubled") != "2.52.5" {
		t.Error("problem with Compute", data.Line(1).String())
	}
	if data.NColumns() != 5 {
		t.Error("expected computed column in header, got", data.Header())
	}
}

func TestSubset(t *testing.T) {
	data, err := Read("testdata/header.txt", Options{FirstLineIsHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := data.Line(0).Subset(0, 1, 2, 1); got != "chr1\t100\t200\t100" {
		t.Errorf("problem with Subset: %q", got)
	}
	if got := data.Line(0).SubsetName("chr", "start", "stop", "start"); got != "chr1\t100\t200\t100" {
		t.Errorf("problem with SubsetName: %q", got)
	}
}

func TestShortLineIsError(t *testing.T) {
	_, err := Read("testdata/plain.txt", Options{ColumnNames: []string{"a", "b", "c", "d", "e"}})
	if err == nil {
		t.Error("expected error for lines shorter than the header")
	}
}
