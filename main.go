package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(assetsDir string) *cobra.Command {
	return &cobra.Command{
		Use:   "gazounomawarinifuchiwotsukeru [asset]",
		Short: "Draw a black selection outline around the opaque parts of an asset",
		Long: `Reads <assets>/<asset>.png, paints every transparent pixel that touches an
opaque one (up, down, left or right) in opaque black and writes the result to
<assets>/<asset>_selected.png. The asset defaults to "` + defaultAsset + `".`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			asset := defaultAsset
			if len(args) > 0 {
				asset = args[0]
			}

			out, err := generate(assetsDir, asset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated file: %q\n", out)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(defaultAssetsDir).Execute(); err != nil {
		os.Exit(1)
	}
}
