package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-gooey/gooey/pkg/terminal"
	"github.com/go-gooey/gooey/pkg/widgets"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Present a scene in the terminal",
		Long: `Present a scene full-screen in the terminal, one half-block cell per
two pixels. Press q or esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			s.tree.OnKey(func(k widgets.Key) {
				s.log.Printf("key %q", rune(k))
			})
			s.tree.OnMouse(func(ev widgets.MouseEvent) {
				if ev.Kind == widgets.Click {
					s.log.Printf("click at %d,%d", ev.X, ev.Y)
				}
			})

			m := terminal.NewModel(s.tree, s.anims,
				terminal.WithFPS(s.cfg.Frame.FPS),
				terminal.WithBackground(s.scene.BackgroundColor()),
				terminal.WithTitle(s.scene.Source()),
			)
			err = terminal.Run(cmd.Context(), m)
			s.log.Printf("presented %d frames", m.Frames())
			return err
		},
	}
}
