package scene

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gooey/gooey/pkg/animation"
	"github.com/go-gooey/gooey/pkg/errors"
	"github.com/go-gooey/gooey/pkg/rendering"
	"github.com/go-gooey/gooey/pkg/script"
	"github.com/go-gooey/gooey/pkg/widgets"
)

// Build adds the scene's widgets to the root of tree and registers its
// animations with anims. It returns the ids of named widgets.
//
// Build validates first and changes nothing if the scene is invalid. A
// script that fails to compile is reported and skipped; the rest of the
// scene is still built.
func (s *Scene) Build(tree *widgets.Manager, anims *animation.Manager) (map[string]widgets.ID, error) {
	if err := s.Validate(); err != nil {
		return nil, sceneError("scene.Build", err)
	}

	ids := make(map[string]widgets.ID)
	for i := range s.Widgets {
		tree.Add(s.buildWidget(tree, &s.Widgets[i], ids))
	}
	for i := range s.Animations {
		a := &s.Animations[i]
		st, err := s.stepper(tree, ids[a.Target], a)
		if err != nil {
			errors.Report(&errors.GooeyError{
				Op:   fmt.Sprintf("scene.Build(animations[%d])", i),
				Kind: errors.KindScript,
				Err:  err,
			})
			continue
		}
		anims.Add(st, time.Duration(a.DelayMS)*time.Millisecond)
	}
	return ids, nil
}

func (s *Scene) buildWidget(tree *widgets.Manager, w *WidgetSpec, ids map[string]widgets.ID) widgets.Widget {
	var out widgets.Widget
	switch w.Kind {
	case KindCollection:
		c := tree.NewCollection()
		c.Common().X, c.Common().Y = w.X, w.Y
		// Children go in before the collection joins its parent so the
		// parent sees the final extent.
		for i := range w.Children {
			c.Add(s.buildWidget(tree, &w.Children[i], ids))
		}
		out = c
	default:
		out = widgets.NewBox(tree, w.X, w.Y, w.W, w.H, border(w.Border), mustColor(w.Background, rendering.ColorTransparent))
	}
	if w.Name != "" {
		ids[w.Name] = widgets.IDOf(out)
	}
	return out
}

func border(b *BorderSpec) widgets.Border {
	if b == nil {
		return widgets.Border{}
	}
	if b.Upper != "" || b.Lower != "" {
		base := mustColor(b.Color, rendering.ColorTransparent)
		return widgets.DualBorder(b.Thickness, mustColor(b.Upper, base), mustColor(b.Lower, base))
	}
	return widgets.UniformBorder(b.Thickness, mustColor(b.Color, rendering.ColorTransparent))
}

// mustColor parses a validated color, falling back to def for "".
func mustColor(s string, def rendering.Color) rendering.Color {
	if s == "" {
		return def
	}
	c, err := rendering.ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

func (s *Scene) stepper(tree *widgets.Manager, target widgets.ID, a *AnimationSpec) (animation.Stepper, error) {
	interval := time.Duration(a.DelayMS) * time.Millisecond
	curve, _ := animation.CurveByName(a.Curve)

	switch a.Kind {
	case KindSlide:
		return &Slide{
			Tree: tree, Target: target,
			DX: a.DX, DY: a.DY,
			Steps: a.Steps, Interval: interval, Curve: curve, Repeat: a.Repeat,
		}, nil
	case KindPulse:
		return &Pulse{
			Tree: tree, Target: target,
			From: mustColor(a.From, rendering.ColorBlack), To: mustColor(a.To, rendering.ColorBlack),
			Steps: a.Steps, Interval: interval, Curve: curve, Repeat: a.Repeat,
		}, nil
	case KindScript:
		if a.Script != "" {
			return script.New(tree, target, a.Target+".lua", a.Script)
		}
		path := a.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		return script.LoadFile(tree, target, path)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, a.Kind)
}
