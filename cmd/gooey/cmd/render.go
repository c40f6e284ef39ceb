package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-gooey/gooey/pkg/errors"
	"github.com/go-gooey/gooey/pkg/raster"
)

func newRenderCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "render",
		Short: "Render frames of a scene to image files",
		Long: `Run a scene headless at the configured frame rate and write one image
per frame, named frame-0001.png and so on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := s.render(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", n, s.cfg.Render.Out)
			return err
		},
	}
	c.Flags().Int("frames", 0, "number of frames to write")
	c.Flags().String("out", "", "output directory")
	c.Flags().String("format", "", "image format: png or bmp")
	c.Flags().Int("width", 0, "canvas width in pixels")
	c.Flags().Int("height", 0, "canvas height in pixels")
	c.Flags().Int("scale", 0, "integer upscale factor for written images")
	return c
}

// render runs the frame sequence once per interval: advance animations,
// clear, paint, encode. It stops early if ctx is cancelled.
func (s *session) render(ctx context.Context) (int, error) {
	rc := s.cfg.Render
	format, err := raster.ParseFormat(rc.Format)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(rc.Out, 0o755); err != nil {
		return 0, err
	}

	canvas := raster.NewCanvas(s.cfg.Frame.Width, s.cfg.Frame.Height)
	bg := s.scene.BackgroundColor()
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.Frame.FPS))
	defer ticker.Stop()

	for i := 1; i <= rc.Frames; i++ {
		select {
		case <-ctx.Done():
			return i - 1, ctx.Err()
		case <-ticker.C:
		}

		s.anims.Run()
		canvas.Clear(bg)
		s.tree.Paint(canvas)

		var img image.Image = canvas.Image()
		if rc.Scale > 1 {
			img = raster.Scale(img, s.cfg.Frame.Width*rc.Scale, s.cfg.Frame.Height*rc.Scale)
		}
		path := filepath.Join(rc.Out, fmt.Sprintf("frame-%04d%s", i, format.Ext()))
		if err := writeImage(path, img, format); err != nil {
			errors.Report(&errors.GooeyError{Op: "cmd.render", Kind: errors.KindRender, Err: err})
			return i - 1, err
		}
	}
	return rc.Frames, nil
}

func writeImage(path string, img image.Image, format raster.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := raster.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
