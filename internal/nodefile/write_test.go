package nodefile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/avilella/fermi/internal/unitig"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoNodes = "@0\t10>.\t11>20:3,30:2\n" +
	"ACGTAC\n" +
	"+\n" +
	"!#%')+\n" +
	"@1\t20>11:3\t21>.\n" +
	"GGNT\n" +
	"+\n" +
	"$$$~\n"

func TestWrite(t *testing.T) {
	log, _ := test.NewNullLogger()
	frags, err := Read(strings.NewReader(twoNodes), log)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, frags))
	assert.Equal(t, twoNodes, out.String())
}

func TestWrite_skipsTombstones(t *testing.T) {
	log, _ := test.NewNullLogger()
	frags, err := Read(strings.NewReader(twoNodes), log)
	require.NoError(t, err)

	frags[0].Len = -1
	frags = append(frags, unitig.Fragment{Len: -1, Ends: [2]uint64{5, 6}})

	var out bytes.Buffer
	require.NoError(t, Write(&out, frags))
	assert.Equal(t, "@1\t20>11:3\t21>.\nGGNT\n+\n$$$~\n", out.String(), "handles are kept as names")
}

func TestWrite_roundTrip(t *testing.T) {
	log, _ := test.NewNullLogger()
	frags := []unitig.Fragment{
		{
			Len:  5,
			Ends: [2]uint64{1, 2},
			Nei:  [2][]unitig.Arc{nil, {{Tip: 3, Overlap: 2}}},
			Seq:  unitig.Encode([]byte("ACGTT")),
			Cov:  []byte("+++++"),
		},
		{
			Len:  3,
			Ends: [2]uint64{3, 4},
			Nei:  [2][]unitig.Arc{{{Tip: 2, Overlap: 2}}, nil},
			Seq:  unitig.Encode([]byte("TTA")),
			Cov:  []byte("5!~"),
		},
	}

	var out bytes.Buffer
	require.NoError(t, Write(&out, frags))

	got, err := Read(&out, log)
	require.NoError(t, err)
	require.Len(t, got, len(frags))
	for i := range frags {
		frags[i].AvgCov = got[i].AvgCov
	}
	assert.Equal(t, frags, got)
	assert.InDelta(t, 10.0, got[0].AvgCov, 1e-9)
	assert.InDelta(t, (20.0+0+93)/3, got[1].AvgCov, 1e-9)
}

func Test_simplifyFile(t *testing.T) {
	in := "@0\t1>.\t2>3:2\nACGTAC\n+\n&&&&&&\n" +
		"@1\t4>5:2\t3>2:2\nATCCGT\n+\n&&&&&&\n" +
		"@2\t5>4:2\t6>.\nATTTGC\n+\n&&&&&&\n"

	log, _ := test.NewNullLogger()
	frags, err := Read(strings.NewReader(in), log)
	require.NoError(t, err)

	g := unitig.New(frags, log)
	_, err = g.Simplify(0, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, g.Frags))
	assert.Equal(t, "@0\t6>.\t1>.\nGCAAATCCGTACGT\n+\n&&&&++&&++&&&&\n", out.String())
}
