package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"layersync/core/config"
	"layersync/core/layer"
	"layersync/core/logger"

	"github.com/spf13/cobra"
)

var (
	inspectFile     string
	inspectScene    string
	inspectLayer    string
	inspectViewport string
)

// inspectCmd prints the layer trees and bases of a document.
var inspectCmd = &cobra.Command{
	Use:   "inspect [document]",
	Short: "Print the layer trees and bases of a scene document",
	Long: `Load and sync a scene document, then print every view layer's node tree
with indexes (as used by the HTTP API) and its bases.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFile, "file", "", "Read a local document instead of the bucket")
	inspectCmd.Flags().StringVar(&inspectScene, "scene", "", "Only print this scene")
	inspectCmd.Flags().StringVar(&inspectLayer, "layer", "", "Only print this view layer")
	inspectCmd.Flags().StringVar(&inspectViewport, "viewport", "", "Evaluate base visibility in this viewport")

	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	src, err := openSource(cfg, args, inspectFile)
	if err != nil {
		return err
	}
	doc, err := src.load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", src, err)
	}
	ldb, err := doc.Build(layer.NewEngineFromConfig(cfg.Sync, l))
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", src, err)
	}

	var vp *layer.Viewport
	if inspectViewport != "" {
		for _, candidate := range ldb.Viewports {
			if candidate.Name == inspectViewport {
				vp = candidate
			}
		}
		if vp == nil {
			return fmt.Errorf("viewport %q not found", inspectViewport)
		}
	}

	out := cmd.OutOrStdout()
	for _, sc := range ldb.Scenes {
		if inspectScene != "" && sc.Name != inspectScene {
			continue
		}
		for _, vl := range sc.ViewLayers {
			if inspectLayer != "" && vl.Name != inspectLayer {
				continue
			}
			fmt.Fprintf(out, "\n=== %s / %s ===\n", sc.Name, vl.Name)
			printTree(out, vl)
			fmt.Fprintln(out)
			printBases(out, vl, vp)
		}
	}
	return nil
}

// printBases writes a table of the view layer's bases.
func printBases(w io.Writer, vl *layer.ViewLayer, vp *layer.Viewport) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OBJECT\tTYPE\tVISIBLE\tSELECTED\tSELECTABLE\tHOLDOUT\tLOCAL")
	for _, b := range vl.Bases() {
		name := b.Object.Name
		if b == vl.ActiveBase() {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%016b\n",
			name,
			b.Object.Type,
			yesNo(layer.BaseIsVisible(vp, b)),
			yesNo(b.Has(layer.BaseSelected)),
			yesNo(b.Has(layer.BaseSelectable)),
			yesNo(b.Has(layer.BaseHoldout)),
			b.LocalCollectionsBits,
		)
	}
	_ = tw.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
