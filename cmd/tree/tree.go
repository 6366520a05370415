package main

import (
	"context"
	"flag"
	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/willbeason/growing-tree/pkg/animation"
	"github.com/willbeason/growing-tree/pkg/schedule"
	"github.com/willbeason/growing-tree/pkg/surface/window"
	"image/color"
	"os"
)

func mainCmd() *cobra.Command {
	var treeFlags *animation.Flags

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow random fractal trees in a window, forever",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, treeFlags)
		},
	}

	cmd.Flags().Int("width", 1280, "window width in pixels")
	cmd.Flags().Int("height", 800, "window height in pixels")
	treeFlags = animation.AddFlags(cmd.Flags())
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

func runCmd(cmd *cobra.Command, treeFlags *animation.Flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	// glog reads its settings from the standard flag set, which cobra has
	// already filled in.
	_ = flag.CommandLine.Parse(nil)

	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	height, err := cmd.Flags().GetInt("height")
	if err != nil {
		return err
	}

	cfg, err := treeFlags.Config(float64(width), float64(height))
	if err != nil {
		return err
	}

	clock := schedule.NewClock()
	canvas := window.NewCanvas(width, height)

	session, err := animation.NewSession(cfg, canvas, clock, treeFlags.Rand())
	if err != nil {
		return err
	}
	err = session.Start()
	if err != nil {
		return err
	}
	glog.Infof("growing trees in a %dx%d window", width, height)

	ebiten.SetWindowTitle("Growing Tree")
	ebiten.SetWindowSize(width, height)

	return ebiten.RunGame(window.NewGame(canvas, clock, color.Black))
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	glog.Flush()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
