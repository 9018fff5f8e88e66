package nodefile

import (
	"bufio"
	"io"
	"strconv"

	"github.com/avilella/fermi/internal/unitig"
	"github.com/pkg/errors"
)

// Write writes a record for every active fragment. The record's name is
// the fragment's handle; tombstoned fragments are skipped
func Write(w io.Writer, frags []unitig.Fragment) error {
	bw := bufio.NewWriterSize(w, 1<<16)
	var buf []byte

	for h := range frags {
		f := &frags[h]
		if f.Len <= 0 {
			continue
		}

		buf = appendRecord(buf[:0], h, f)
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "failed to write node file")
		}
	}

	return errors.Wrap(bw.Flush(), "failed to write node file")
}

// appendRecord appends the four lines of a fragment's record to buf
func appendRecord(buf []byte, h int, f *unitig.Fragment) []byte {
	buf = append(buf, '@')
	buf = strconv.AppendInt(buf, int64(h), 10)

	for e := 0; e < 2; e++ {
		buf = append(buf, '\t')
		buf = strconv.AppendUint(buf, f.Ends[e], 10)
		buf = append(buf, '>')
		if len(f.Nei[e]) == 0 {
			buf = append(buf, '.')
			continue
		}
		for i, a := range f.Nei[e] {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendUint(buf, a.Tip, 10)
			buf = append(buf, ':')
			buf = strconv.AppendUint(buf, uint64(a.Overlap), 10)
		}
	}

	buf = append(buf, '\n')
	buf = append(buf, unitig.Decode(f.Seq[:f.Len])...)
	buf = append(buf, "\n+\n"...)
	buf = append(buf, f.Cov[:f.Len]...)
	return append(buf, '\n')
}
