package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const sampleFasta = ">Seq1 first\nACGT\n>Seq2\nTTTT\nCCCC\n>Seq3\nAA\n"

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errBuf bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

func TestRoot_NoCommandFails(t *testing.T) {
	_, _, err := runCLI(t)
	if err == nil {
		t.Fatal("expected an error when no command is given")
	}
	if !strings.Contains(err.Error(), "you must specify a command") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "seqtools") {
		t.Errorf("version output %q does not mention seqtools", out)
	}
}

func TestCount(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	out, _, err := runCLI(t, "count", "--in", in)
	if err != nil {
		t.Fatal(err)
	}
	if out != "3 sequences\n" {
		t.Errorf("count output = %q", out)
	}
}

func TestCount_GzippedInput(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(sampleFasta)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	in := writeInput(t, "in.fasta.gz", buf.Bytes())

	out, _, err := runCLI(t, "count", "--in", in)
	if err != nil {
		t.Fatal(err)
	}
	if out != "3 sequences\n" {
		t.Errorf("count output = %q", out)
	}
}

func TestLength_PerRecord(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	out, _, err := runCLI(t, "length", "--in", in)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Seq1\t4\nSeq2\t8\nSeq3\t2\n" {
		t.Errorf("length output = %q", out)
	}
}

func TestLength_Summary(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	out, _, err := runCLI(t, "length", "--summary", "--in", in)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Min:\t2", "Max:\t8", "Median:\t4"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q missing %q", out, want)
		}
	}
}

func TestLength_HistogramGoesToStderr(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	out, errOut, err := runCLI(t, "length", "--summary", "--histogram", "--in", in)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("expected no stdout, got %q", out)
	}
	if !strings.Contains(errOut, "|") || !strings.Contains(errOut, "Min: 2") {
		t.Errorf("histogram output = %q", errOut)
	}
}

func TestIds(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	out, _, err := runCLI(t, "ids", "--in", in)
	if err != nil {
		t.Fatal(err)
	}
	if out != "Seq1\nSeq2\nSeq3\n" {
		t.Errorf("ids output = %q", out)
	}
}

func TestFreqs(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(">S\nAACG\n"))
	out, _, err := runCLI(t, "freqs", "--in", in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "A\t2\t50.00 %") {
		t.Errorf("freqs output = %q", out)
	}
}

func TestConvert_FastaToFastq(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(">Seq1\nACGT\n"))
	outPath := filepath.Join(t.TempDir(), "out.fastq")

	_, _, err := runCLI(t, "convert", "--to", "fastq", "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "@Seq1\nACGT\n+\nIIII\n" {
		t.Errorf("converted output = %q", data)
	}
}

func TestSelect_ByID(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	outPath := filepath.Join(t.TempDir(), "out.fasta")

	_, _, err := runCLI(t, "select", "Seq3", "Seq1", "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ">Seq1 first\nACGT\n>Seq3\nAA\n" {
		t.Errorf("selected output = %q", data)
	}
}

func TestSelect_ByIndex(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	outPath := filepath.Join(t.TempDir(), "out.fasta")

	_, _, err := runCLI(t, "select", "--use-indices", "1", "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ">Seq2\nTTTTCCCC\n" {
		t.Errorf("selected output = %q", data)
	}
}

func TestSelect_IdsFile(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(sampleFasta))
	idsPath := writeInput(t, "ids.txt", []byte("# keep\nSeq2\n\nSeq3\n"))
	outPath := filepath.Join(t.TempDir(), "out.fasta")

	_, _, err := runCLI(t, "select", "--ids-file", idsPath, "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ">Seq2\nTTTTCCCC\n>Seq3\nAA\n" {
		t.Errorf("selected output = %q", data)
	}
}

func TestRename(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(">Old1\nAC\n>Keep\nGT\n"))
	outPath := filepath.Join(t.TempDir(), "out.fasta")

	_, _, err := runCLI(t, "rename", "Old1=New1", "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ">New1\nAC\n>Keep\nGT\n" {
		t.Errorf("renamed output = %q", data)
	}
}

func TestAddID_Everywhere(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(">A\nAC\n>B\nGT\n"))
	outPath := filepath.Join(t.TempDir(), "out.fasta")

	_, _, err := runCLI(t, "add-id", "--prefix", "sample1_", "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ">sample1_A\nAC\n>sample1_B\nGT\n" {
		t.Errorf("add-id output = %q", data)
	}
}

func TestAddID_OnlySelected(t *testing.T) {
	in := writeInput(t, "in.fasta", []byte(">A\nAC\n>B\nGT\n"))
	outPath := filepath.Join(t.TempDir(), "out.fasta")

	_, _, err := runCLI(t, "add-id", "--prefix", "x_", "B", "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != ">A\nAC\n>x_B\nGT\n" {
		t.Errorf("add-id output = %q", data)
	}
}

func TestSelect_PreservesFastqFraming(t *testing.T) {
	in := writeInput(t, "in.fastq", []byte("@R1\nAC\n+\nII\n@R2\nGT\n+\nJJ\n"))
	outPath := filepath.Join(t.TempDir(), "out.fastq")

	_, _, err := runCLI(t, "select", "R2", "--in", in, "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "@R2\nGT\n+\nJJ\n" {
		t.Errorf("selected output = %q", data)
	}
}

func TestRandom_FixedLength(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.fasta")

	_, errOut, err := runCLI(t, "random", "--num", "4", "--len", "10", "--std", "0", "--out", outPath)
	if err != nil {
		t.Fatal(err)
	}
	if errOut != "" {
		t.Errorf("expected no stderr with --std 0, got %q", errOut)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d: %q", len(lines), data)
	}
	if lines[0] != ">S0" || lines[6] != ">S3" {
		t.Errorf("unexpected ids: %q, %q", lines[0], lines[6])
	}
	if len(lines[1]) != 10 {
		t.Errorf("sequence length = %d, want 10", len(lines[1]))
	}
}

func TestCount_TruncatedFastqFails(t *testing.T) {
	in := writeInput(t, "in.fastq", []byte("@R1\nACGT\n+\n"))
	_, _, err := runCLI(t, "count", "--in", in)
	if err == nil {
		t.Fatal("expected a truncation error")
	}
	if !strings.Contains(err.Error(), "record=1") {
		t.Errorf("error %q does not carry the record position", err)
	}
}

func TestCount_MissingInputFile(t *testing.T) {
	_, _, err := runCLI(t, "count", "--in", filepath.Join(t.TempDir(), "nope.fasta"))
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
