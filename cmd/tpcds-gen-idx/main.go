// Command tpcds-gen-idx compiles a TPC-DS tree-text distribution source
// (dists.dst and its #include chain) into the compact binary .idx
// encoding internal/dist's loader reads at runtime, and can round-trip
// an existing .idx back for comparison.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/starschema/benchgen/internal/dist"
	"github.com/starschema/benchgen/internal/obs"
)

type flags struct {
	input   string
	output  string
	compare string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "tpcds-gen-idx",
		Short:         "Compile a TPC-DS tree-text distribution source into a binary .idx",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	pf := cmd.Flags()
	pf.StringVar(&f.input, "input", "", "path to the tree-text dists.dst source (required)")
	pf.StringVar(&f.output, "output", "", "path to write the compiled .idx to (required)")
	pf.StringVar(&f.compare, "compare", "", "optional existing .idx to diff the freshly compiled one against")
	pf.BoolVar(&f.verbose, "verbose", false, "enable debug-level, human-readable logging")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func run(f *flags) error {
	logger, err := obs.New(obs.Config{Verbose: f.verbose})
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync() //nolint:errcheck
	log := logger.With(zap.String("input", f.input), zap.String("output", f.output))

	fsys := afero.NewOsFs()
	store, err := dist.ParseTpcdsTree(fsys, f.input)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", f.input)
	}

	dists := store.All()
	log.Info("parsed tree-text source", zap.Int("distribution_count", len(dists)))

	encoded, err := dist.EncodeTpcdsIdx(dists)
	if err != nil {
		return errors.Wrap(err, "encoding .idx")
	}

	if f.compare != "" {
		if err := compareAgainst(f.compare, encoded, log); err != nil {
			return err
		}
	}

	if err := afero.WriteFile(fsys, f.output, encoded, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", f.output)
	}
	log.Info("wrote .idx", zap.Int("bytes", len(encoded)))
	return nil
}

// compareAgainst decodes both the freshly compiled bytes and the existing
// file at path, and reports any distribution whose entry count differs -
// a cheap sanity check that a re-compile didn't silently drop a table.
func compareAgainst(path string, freshBytes []byte, log *zap.Logger) error {
	existingBytes, err := afero.ReadFile(afero.NewOsFs(), path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	existing, err := dist.DecodeTpcdsIdx(existingBytes)
	if err != nil {
		return errors.Wrapf(err, "decoding existing %s", path)
	}
	fresh, err := dist.DecodeTpcdsIdx(freshBytes)
	if err != nil {
		return errors.Wrap(err, "decoding freshly compiled .idx")
	}

	var mismatches int
	for _, d := range fresh.All() {
		prior := existing.Find(d.Name)
		if prior == nil {
			log.Warn("distribution not present in existing .idx", zap.String("name", d.Name))
			mismatches++
			continue
		}
		if prior.Size() != d.Size() {
			log.Warn("distribution entry count differs",
				zap.String("name", d.Name), zap.Int("existing", prior.Size()), zap.Int("fresh", d.Size()))
			mismatches++
		}
	}
	if mismatches > 0 {
		return errors.Errorf("%d distribution(s) differ from %s", mismatches, path)
	}
	log.Info("matches existing .idx", zap.String("compare", path))
	return nil
}
