// Package cmd implements the gooey CLI commands.
//
// The root command dispatches to demo (interactive terminal host), render
// (headless frame capture) and version.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-gooey/gooey/cmd/gooey/internal/config"
	"github.com/go-gooey/gooey/cmd/gooey/internal/logging"
	"github.com/go-gooey/gooey/pkg/animation"
	"github.com/go-gooey/gooey/pkg/scene"
	"github.com/go-gooey/gooey/pkg/widgets"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gooey",
		Short: "Retained-mode widget tree with frame-driven animations",
		Long: `gooey presents a scene of boxes and collections, advancing its
animations once per frame.

Settings are read from gooey.yaml (or $GOOEY_CONFIG), GOOEY_* environment
variables and flags, in increasing priority.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("scene", "", "scene file (default: built-in demo)")
	root.PersistentFlags().Int("fps", 0, "frames per second")
	root.PersistentFlags().String("log", "", "log file (default: user cache dir)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log stack traces")

	root.AddCommand(newDemoCmd(), newRenderCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// session is the state shared by commands that present a scene.
type session struct {
	cfg   *config.Config
	log   *logging.Logger
	scene *scene.Scene
	tree  *widgets.Manager
	anims *animation.Manager
	ids   map[string]widgets.ID
}

// open loads settings, starts logging and builds the configured scene.
func open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	lg, err := logging.Open(cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	lg.Install(cfg.Log.Verbose)
	lg.Printf("gooey %s %s: config=%q scene=%q", Version, cmd.Name(), cfg.File, cfg.Scene.Path)

	s := &session{cfg: cfg, log: lg}
	if cfg.Scene.Path == "" {
		s.scene = scene.Default()
	} else if s.scene, err = scene.LoadFile(cfg.Scene.Path); err != nil {
		lg.Close()
		return nil, err
	}

	s.tree = widgets.NewManager()
	s.anims = animation.NewManager()
	if s.ids, err = s.scene.Build(s.tree, s.anims); err != nil {
		lg.Close()
		return nil, err
	}
	lg.Printf("built %d widgets, %d animations", s.tree.Len()-1, s.anims.Len())
	return s, nil
}

func (s *session) Close() error {
	s.log.Printf("session end")
	return s.log.Close()
}
