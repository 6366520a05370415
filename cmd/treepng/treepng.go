package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/willbeason/growing-tree/pkg/animation"
	"github.com/willbeason/growing-tree/pkg/schedule"
	"github.com/willbeason/growing-tree/pkg/surface/raster"
	"image/color"
	"os"
	"path/filepath"
	"time"
)

func mainCmd() *cobra.Command {
	var treeFlags *animation.Flags

	cmd := &cobra.Command{
		Use:   "treepng",
		Short: "Grow random fractal trees offscreen and save each finished tree as a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, treeFlags)
		},
	}

	cmd.Flags().Int("width", 2560, "image width in pixels")
	cmd.Flags().Int("height", 1440, "image height in pixels")
	cmd.Flags().Int("trees", 1, "number of trees to grow")
	cmd.Flags().String("out", "out", "directory to write images to")
	treeFlags = animation.AddFlags(cmd.Flags())
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

func runCmd(cmd *cobra.Command, treeFlags *animation.Flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true
	_ = flag.CommandLine.Parse(nil)

	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	height, err := cmd.Flags().GetInt("height")
	if err != nil {
		return err
	}
	trees, err := cmd.Flags().GetInt("trees")
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	cfg, err := treeFlags.Config(float64(width), float64(height))
	if err != nil {
		return err
	}

	err = os.MkdirAll(outDir, os.ModePerm)
	if err != nil {
		return err
	}

	clock := schedule.NewClock()
	canvas := raster.New(width, height, color.Black)

	session, err := animation.NewSession(cfg, canvas, clock, treeFlags.Rand())
	if err != nil {
		return err
	}

	prefix := time.Now().Format("20060102150405")
	done := 0
	var writeErr error
	session.OnTreeDone = func(cycle int) {
		done++
		path := filepath.Join(outDir, fmt.Sprintf("%s-%03d.png", prefix, cycle))
		if err := writePNG(path, canvas); err != nil {
			writeErr = err
			return
		}
		glog.Infof("wrote tree %d (depth %d, %d branches) to %s",
			cycle, session.Depth(), session.Levels().Count(), path)
	}

	err = session.Start()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for done < trees && writeErr == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		clock.Advance(cfg.TickInterval)
	}
	session.Stop()

	return writeErr
}

func writePNG(path string, canvas *raster.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = canvas.WritePNG(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
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
