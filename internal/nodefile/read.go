// Package nodefile reads and writes unitig graphs in the node record
// format: a FASTQ-like record per fragment whose header lists both end
// ids and their arcs, and whose quality line is the per-base coverage
package nodefile

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/avilella/fermi/internal/unitig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// progressEvery is how often, in records, read progress is logged
const progressEvery = 100000

// lineReader reads lines and counts them
type lineReader struct {
	br *bufio.Reader
	n  int
}

// next returns the next line without its line ending. io.EOF is returned
// only when there is nothing left
func (lr *lineReader) next() ([]byte, error) {
	line, err := lr.br.ReadBytes('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil {
		return nil, err
	}
	lr.n++
	return bytes.TrimRight(line, "\r\n"), nil
}

// Read parses every node record from r into fragments, in file order
func Read(r io.Reader, log logrus.FieldLogger) ([]unitig.Fragment, error) {
	lr := &lineReader{br: bufio.NewReaderSize(r, 1<<16)}
	var frags []unitig.Fragment
	bases := 0

	for {
		header, err := lr.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to read node file")
		}
		if len(bytes.TrimSpace(header)) == 0 {
			continue
		}

		var block [3][]byte // sequence, separator, coverage
		for i := range block {
			if block[i], err = lr.next(); err == io.EOF {
				return nil, errors.Errorf("line %d: truncated record %d", lr.n, len(frags)+1)
			} else if err != nil {
				return nil, errors.Wrap(err, "failed to read node file")
			}
		}

		f, err := parseRecord(header, block[0], block[1], block[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: record %d", lr.n-3, len(frags)+1)
		}
		frags = append(frags, f)
		bases += f.Len

		if len(frags)%progressEvery == 0 {
			log.WithField("action", "read_nodes").
				Infof("read %d nodes in %d bp", len(frags), bases)
		}
	}

	log.WithField("action", "read_nodes").
		Infof("in total: %d nodes in %d bp", len(frags), bases)
	return frags, nil
}

// parseRecord builds a fragment from the four lines of a record
func parseRecord(header, seq, sep, cov []byte) (unitig.Fragment, error) {
	var f unitig.Fragment

	if header[0] != '@' {
		return f, errors.Errorf("header %q does not start with '@'", header)
	}
	if len(sep) == 0 || sep[0] != '+' {
		return f, errors.Errorf("separator %q does not start with '+'", sep)
	}
	if len(seq) == 0 {
		return f, errors.New("empty sequence")
	}
	if len(cov) != len(seq) {
		return f, errors.Errorf("%d coverage values for %d bases", len(cov), len(seq))
	}

	fields := strings.Fields(string(header[1:]))
	if len(fields) < 3 {
		return f, errors.Errorf("header %q needs a name and two ends", header)
	}
	for e := 0; e < 2; e++ {
		id, arcs, err := parseEnd(fields[1+e])
		if err != nil {
			return f, err
		}
		f.Ends[e], f.Nei[e] = id, arcs
	}

	sum := 0
	for i, c := range cov {
		if c < 33 || c > 126 {
			return f, errors.Errorf("coverage byte %d at base %d is outside [33, 126]", c, i)
		}
		sum += int(c) - 33
	}

	f.Len = len(seq)
	f.Seq = unitig.Encode(seq)
	f.Cov = append([]byte(nil), cov...)
	f.AvgCov = float64(sum) / float64(f.Len)
	return f, nil
}

// parseEnd parses one end field, "<tip>><tip>:<overlap>,..." or "<tip>>."
func parseEnd(field string) (uint64, []unitig.Arc, error) {
	tip, list, ok := strings.Cut(field, ">")
	if !ok {
		return 0, nil, errors.Errorf("end %q is missing '>'", field)
	}

	id, err := strconv.ParseUint(tip, 10, 64)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "end %q has a bad tip id", field)
	}
	if list == "." || list == "" {
		return id, nil, nil
	}

	var arcs []unitig.Arc
	for _, entry := range strings.Split(list, ",") {
		target, overlap, ok := strings.Cut(entry, ":")
		if !ok {
			return 0, nil, errors.Errorf("arc %q in end %q is missing ':'", entry, field)
		}
		t, err := strconv.ParseUint(target, 10, 64)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "arc %q has a bad tip id", entry)
		}
		o, err := strconv.ParseUint(overlap, 10, 32)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "arc %q has a bad overlap", entry)
		}
		arcs = append(arcs, unitig.Arc{Tip: t, Overlap: uint32(o)})
	}

	return id, arcs, nil
}
