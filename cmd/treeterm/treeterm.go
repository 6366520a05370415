package main

import (
	"context"
	"flag"
	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/willbeason/growing-tree/pkg/animation"
	"github.com/willbeason/growing-tree/pkg/schedule"
	"github.com/willbeason/growing-tree/pkg/surface/terminal"
	"os"
	"os/signal"
	"time"
)

const (
	// A terminal cell stands for a block of this many surface units, so
	// trees keep the proportions they have in a window.
	cellWidth  = 8
	cellHeight = 16
)

func mainCmd() *cobra.Command {
	var treeFlags *animation.Flags

	cmd := &cobra.Command{
		Use:   "treeterm",
		Short: "Grow random fractal trees in the terminal until Esc or Ctrl-C",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, treeFlags)
		},
	}

	cmd.Flags().Int("fps", 30, "screen refreshes per second")
	treeFlags = animation.AddFlags(cmd.Flags())
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

func runCmd(cmd *cobra.Command, treeFlags *animation.Flags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true
	_ = flag.CommandLine.Parse(nil)

	fps, err := cmd.Flags().GetInt("fps")
	if err != nil {
		return err
	}
	if fps < 1 {
		fps = 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	width, height := float64(cols*cellWidth), float64(rows*cellHeight)

	cfg, err := treeFlags.Config(width, height)
	if err != nil {
		return err
	}

	clock := schedule.NewClock()
	canvas := terminal.New(screen, width, height)

	session, err := animation.NewSession(cfg, canvas, clock, treeFlags.Rand())
	if err != nil {
		return err
	}
	err = session.Start()
	if err != nil {
		return err
	}
	glog.Infof("growing trees on a %dx%d terminal", cols, rows)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	err = schedule.Run(ctx, clock, time.Second/time.Duration(fps), screen.Show)
	session.Stop()
	return err
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
