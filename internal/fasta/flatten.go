// Package fasta prepares the input genome for the alignment
// collaborator: flattening the (possibly gzipped) input to a plain file
// with light structural validation.
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalid marks a structurally broken FASTA input.
var ErrInvalid = errors.New("invalid FASTA")

// Flatten copies the FASTA at src into dir as a plain file suitable for
// the alignment tool, validating structure on the way: every record
// needs a non-empty header and at least one sequence line, and sequence
// lines may not contain gap characters. "-" reads stdin; gzip input is
// detected by its magic bytes and decompressed transparently, from files
// and stdin alike. It returns the flat file's path and the number of
// records.
func Flatten(src, dir string) (string, int, error) {
	var raw io.Reader = os.Stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return "", 0, err
		}
		defer func() { _ = f.Close() }()
		raw = f
	}

	br := bufio.NewReader(raw)
	in := io.Reader(br)
	if sig, err := br.Peek(2); err == nil && sig[0] == 0x1f && sig[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return "", 0, fmt.Errorf("decompressing %s: %w", src, err)
		}
		defer func() { _ = gz.Close() }()
		in = gz
	}

	dst := filepath.Join(dir, "genome.fa")
	out, err := os.Create(dst)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = out.Close() }()
	w := bufio.NewWriter(out)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	nSeq := 0
	seqLines := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if nSeq > 0 && seqLines == 0 {
				return "", 0, fmt.Errorf("%w: record without sequence in %s", ErrInvalid, src)
			}
			if len(strings.TrimSpace(line[1:])) == 0 {
				return "", 0, fmt.Errorf("%w: empty record header in %s", ErrInvalid, src)
			}
			nSeq++
			seqLines = 0
		} else {
			if nSeq == 0 {
				return "", 0, fmt.Errorf("%w: sequence before first header in %s", ErrInvalid, src)
			}
			if strings.ContainsAny(line, "- ") {
				return "", 0, fmt.Errorf("%w: gap or blank inside sequence in %s", ErrInvalid, src)
			}
			seqLines++
		}
		if _, err := w.WriteString(line); err != nil {
			return "", 0, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return "", 0, err
		}
	}
	if err := sc.Err(); err != nil {
		return "", 0, err
	}
	if nSeq == 0 {
		return "", 0, fmt.Errorf("%w: no records in %s", ErrInvalid, src)
	}
	if seqLines == 0 {
		return "", 0, fmt.Errorf("%w: record without sequence in %s", ErrInvalid, src)
	}
	if err := w.Flush(); err != nil {
		return "", 0, err
	}
	return dst, nSeq, nil
}
