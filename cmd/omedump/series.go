package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/keithschulze/omemeta"
)

var (
	seriesJSON   bool
	seriesStrict bool
)

var seriesCmd = &cobra.Command{
	Use:   "series [patterns...]",
	Short: "Print per-series metadata",
	Long: `Print the per-series metadata of one or more image files. Arguments are
doublestar glob patterns ('**' matches across directories), so whole
acquisition directories can be inspected in one call.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		paths, err := expandPatterns(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error expanding patterns: %v\n", err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			fmt.Fprintln(os.Stderr, "No files matched")
			os.Exit(1)
		}

		failed := false
		for _, path := range paths {
			if err := dumpSeries(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func expandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Not a pattern (or nothing matched): treat it as a literal
			// path and let Read report the failure.
			matches = []string{pattern}
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func readOpts() []omemeta.Option {
	var opts []omemeta.Option
	if bftools != "" {
		opts = append(opts, omemeta.WithExtractor(omemeta.NewBioFormatsExtractor(bftools)))
	}
	if seriesStrict {
		opts = append(opts, omemeta.WithStrictSeries())
	}
	return opts
}

func dumpSeries(path string) error {
	reader, err := omemeta.Read(path, readOpts()...)
	if err != nil {
		return err
	}

	if seriesJSON {
		snapshot, err := reader.Snapshot()
		if err != nil {
			return err
		}
		out := make(map[string]map[string]any, len(snapshot))
		for id, series := range snapshot {
			out[id] = series.AsMap()
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Printf("%s: %d series\n", path, reader.Len())
		all, err := reader.ReadAll()
		if err != nil {
			return err
		}
		for _, s := range all {
			fmt.Printf("  %-12s %-24s %5dx%-5d z=%d c=%d t=%d %s voxel %gx%g %s\n",
				s.ID, s.Name, s.SizeX, s.SizeY, s.SizeZ, s.SizeC, s.SizeT,
				s.PixelType, s.VoxelSizeX, s.VoxelSizeY, s.VoxelUnitX)
		}
	}

	for _, w := range reader.Warnings() {
		slog.Warn("mapping issue", "path", path, "warning", w.String())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().BoolVar(&seriesJSON, "json", false, "Output in JSON format")
	seriesCmd.Flags().BoolVar(&seriesStrict, "strict", false, "Fail on series with missing required fields instead of skipping them")
}
