// Package clean is for the `fermi clean` command: reading a unitig graph,
// removing tips, merging unambiguous paths and writing the result
package clean

import (
	"os"
	"time"

	"github.com/avilella/fermi/config"
	"github.com/avilella/fermi/internal/nodefile"
	"github.com/avilella/fermi/internal/unitig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Flags are the parsed `fermi clean` flags that aren't settings
type Flags struct {
	// the node file to read, "-" for stdin
	in string

	// the node file to write, "-" for stdout
	out string

	// the JSON file to write a run summary to (optional)
	summary string
}

// Cmd is the cobra hook for `fermi clean`
func Cmd(cmd *cobra.Command, args []string) error {
	fs, err := parseCmdFlags(cmd, args)
	if err != nil {
		return err
	}

	conf, err := config.New()
	if err != nil {
		return err
	}

	log := NewLogger(conf.Verbosity, os.Stderr)
	s, err := Run(conf, fs.in, fs.out, log)
	if err != nil {
		return err
	}

	if fs.summary != "" {
		return s.writeJSON(fs.summary)
	}
	return nil
}

// parseCmdFlags gathers the in and out paths from a cobra cmd object.
// The input may also be the first positional argument
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, error) {
	var err error
	fs := &Flags{}

	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		return nil, errors.Wrap(err, "failed to parse in flag")
	}
	if len(args) > 0 {
		if fs.in != "-" && fs.in != "" {
			return nil, errors.New("input given as both an argument and --in")
		}
		fs.in = args[0]
	}
	if fs.in == "" {
		fs.in = "-"
	}

	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		return nil, errors.Wrap(err, "failed to parse out flag")
	}
	if fs.summary, err = cmd.Flags().GetString("summary"); err != nil {
		return nil, errors.Wrap(err, "failed to parse summary flag")
	}

	return fs, nil
}

// Run reads the node file at in, simplifies it with the thresholds in
// conf and writes the cleaned graph to out
func Run(conf *config.Config, in, out string, log logrus.FieldLogger) (*Summary, error) {
	start := time.Now()

	frags, err := nodefile.ReadFile(in, log)
	if err != nil {
		return nil, err
	}

	g := unitig.New(frags, log)
	inFrags, inBases := g.Count()

	st, err := g.Simplify(conf.Clean.MinCoverage, conf.Clean.MinLength)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clean %s", in)
	}

	if err = nodefile.WriteFile(out, g.Frags); err != nil {
		return nil, err
	}

	s := &Summary{
		In:              in,
		Out:             out,
		Execution:       time.Since(start).Seconds(),
		MinCoverage:     conf.Clean.MinCoverage,
		MinLength:       conf.Clean.MinLength,
		InputFragments:  inFrags,
		InputBases:      inBases,
		OutputFragments: st.Active,
		OutputBases:     st.Bases,
		Tips:            st.Tips,
		Merges:          st.Merges,
		Dangling:        st.Dangling,
		Duplicated:      st.Duplicated,
	}
	s.stamp(start)

	return s, nil
}
