package cmd

import (
	"github.com/avilella/fermi/config"
	"github.com/avilella/fermi/internal/clean"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cleanCmd is for removing tips from a unitig graph and merging its unambiguous paths
var cleanCmd = &cobra.Command{
	Use:                        "clean [nodes]",
	Short:                      "Remove tips and merge unambiguous paths in a unitig graph",
	RunE:                       clean.Cmd,
	Args:                       cobra.MaximumNArgs(1),
	SilenceUsage:               true,
	SuggestionsMinimumDistance: 2,
	Long: `
Clean a unitig graph. Unitigs with no neighbor on one of their ends (tips) are
removed if their average coverage is below --min-cov or if they are shorter
than --min-len. Every unitig is then merged with its neighbors for as long as
the join between them is unambiguous.

The input and output are node files: a FASTQ-like record per unitig, with both
end ids and their overlaps in the header and coverage in the quality line.
Gzip and zstd input is detected automatically; outputs ending in .gz or .zst
are compressed.`,
	Example: `  fermi clean nodes.fq -o cleaned.fq
  fermi clean -i nodes.fq.gz -c 2.5 -l 100 -o cleaned.fq.zst --summary clean.json
  cat nodes.fq | fermi clean > cleaned.fq`,
	Aliases: []string{"simplify"},
}

// set flags
func init() {
	cleanCmd.Flags().StringP("in", "i", "-", "input node file, '-' for stdin")
	cleanCmd.Flags().StringP("out", "o", "-", "output node file, '-' for stdout")
	cleanCmd.Flags().String("summary", "", "write a summary of the run <JSON>")
	cleanCmd.Flags().Float64P("min-cov", "c", config.DefaultMinCoverage, "remove tips with an average coverage below this")
	cleanCmd.Flags().IntP("min-len", "l", config.DefaultMinLength, "remove tips shorter than this")

	viper.BindPFlag("clean.min-cov", cleanCmd.Flags().Lookup("min-cov"))
	viper.BindPFlag("clean.min-len", cleanCmd.Flags().Lookup("min-len"))

	RootCmd.AddCommand(cleanCmd)
}
