// Package idfile reads the newline-delimited list files accepted by the
// select, rename and add-id commands.
package idfile

import (
	"bufio"
	"os"
	"strings"

	"github.com/aalvaropc/seqtools/internal/domain"
)

// ReadIDs loads one identifier per line. Blank lines and '#' comment lines
// are skipped.
func ReadIDs(path string) ([]string, error) {
	lines, err := readLines(path, "idfile.read_ids")
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadRenames loads one OLD=NEW (or OLD<TAB>NEW) pair per line into idx.
func ReadRenames(path string, idx *domain.Index) error {
	lines, err := readLines(path, "idfile.read_renames")
	if err != nil {
		return err
	}
	for _, line := range lines {
		old, replacement, perr := domain.ParseRenamePair(line)
		if perr != nil {
			return &domain.OpError{Op: "idfile.read_renames", Kind: domain.KindIO, Err: perr}
		}
		if aerr := idx.AddRename(old, replacement); aerr != nil {
			return &domain.OpError{Op: "idfile.read_renames", Kind: domain.KindIO, Err: aerr}
		}
	}
	return nil
}

func readLines(path, op string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindIO, Err: err}
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindIO, Err: err}
	}
	return out, nil
}
