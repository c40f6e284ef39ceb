// Package scene describes widget trees and their animations in YAML.
//
// A scene file lists widgets and the animations that drive them:
//
//	background: "#101820"
//	widgets:
//	  - name: panel
//	    kind: collection
//	    x: 4
//	    y: 4
//	    children:
//	      - name: button
//	        kind: box
//	        w: 20
//	        h: 8
//	        border: {thickness: 1, upper: white, lower: gray}
//	        background: silver
//	animations:
//	  - target: button
//	    kind: slide
//	    delay_ms: 33
//	    steps: 30
//	    dx: 12
//	    curve: ease-in-out
//	    repeat: true
//
// Collections take their size from their children, so w and h are only
// meaningful on boxes. Animation kinds are slide, pulse and script; a
// script animation carries Lua source inline (script) or by path (file,
// relative to the scene file).
package scene

import (
	"bytes"
	_ "embed"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-gooey/gooey/pkg/animation"
	"github.com/go-gooey/gooey/pkg/errors"
	"github.com/go-gooey/gooey/pkg/rendering"
)

// Widget kinds.
const (
	KindBox        = "box"
	KindCollection = "collection"
)

// Animation kinds.
const (
	KindSlide  = "slide"
	KindPulse  = "pulse"
	KindScript = "script"
)

var (
	ErrUnknownKind   = stderrors.New("unknown kind")
	ErrDuplicateName = stderrors.New("duplicate widget name")
	ErrUnknownTarget = stderrors.New("unknown animation target")
	ErrNotPositive   = stderrors.New("must be positive")
	ErrNegative      = stderrors.New("must not be negative")
	ErrMissingScript = stderrors.New("script animation needs script or file")
	ErrNotABox       = stderrors.New("pulse target must be a box")
	ErrChildren      = stderrors.New("only a collection can have children")
)

//go:embed default.yaml
var defaultScene []byte

// Scene is a decoded scene file.
type Scene struct {
	Background string          `yaml:"background,omitempty"`
	Widgets    []WidgetSpec    `yaml:"widgets"`
	Animations []AnimationSpec `yaml:"animations,omitempty"`

	source string
	dir    string
}

// WidgetSpec describes one box or collection.
type WidgetSpec struct {
	Name       string       `yaml:"name,omitempty"`
	Kind       string       `yaml:"kind"`
	X          int          `yaml:"x,omitempty"`
	Y          int          `yaml:"y,omitempty"`
	W          int          `yaml:"w,omitempty"`
	H          int          `yaml:"h,omitempty"`
	Border     *BorderSpec  `yaml:"border,omitempty"`
	Background string       `yaml:"background,omitempty"`
	Children   []WidgetSpec `yaml:"children,omitempty"`
}

// BorderSpec describes a box border. Color paints every edge; Upper and
// Lower paint a bevel and take precedence over Color.
type BorderSpec struct {
	Thickness int    `yaml:"thickness"`
	Color     string `yaml:"color,omitempty"`
	Upper     string `yaml:"upper,omitempty"`
	Lower     string `yaml:"lower,omitempty"`
}

// AnimationSpec describes one animation. Which fields apply depends on Kind.
type AnimationSpec struct {
	Target  string `yaml:"target"`
	Kind    string `yaml:"kind"`
	DelayMS int    `yaml:"delay_ms"`
	Repeat  bool   `yaml:"repeat,omitempty"`

	// slide and pulse
	Steps int    `yaml:"steps,omitempty"`
	Curve string `yaml:"curve,omitempty"`

	// slide
	DX int `yaml:"dx,omitempty"`
	DY int `yaml:"dy,omitempty"`

	// pulse
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	// script
	Script string `yaml:"script,omitempty"`
	File   string `yaml:"file,omitempty"`
}

// Load decodes and validates a scene. source names the document in errors.
func Load(r io.Reader, source string) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, sceneError("scene.Load",
			&errors.ParseError{Source: source, Field: "document", Got: "yaml", Err: err})
	}
	s.source = source
	if err := s.Validate(); err != nil {
		return nil, sceneError("scene.Load", err)
	}
	return &s, nil
}

// sceneError tags err as an invalid scene. The ParseErrors it carries stay
// reachable through errors.As.
func sceneError(op string, err error) error {
	return &errors.GooeyError{Op: op, Kind: errors.KindScene, Err: err}
}

// LoadFile reads a scene from path. Script files are resolved relative to
// the scene's directory.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Load(bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Default returns the built-in demo scene.
func Default() *Scene {
	s, err := Load(bytes.NewReader(defaultScene), "default.yaml")
	if err != nil {
		panic(err)
	}
	return s
}

// Source returns the name the scene was loaded from.
func (s *Scene) Source() string {
	return s.source
}

// BackgroundColor returns the scene background, or black if unset.
func (s *Scene) BackgroundColor() rendering.Color {
	if s.Background == "" {
		return rendering.ColorBlack
	}
	c, err := rendering.ParseColor(s.Background)
	if err != nil {
		return rendering.ColorBlack
	}
	return c
}

// Validate checks kinds, names, colors and animation parameters. All
// problems are returned, joined.
func (s *Scene) Validate() error {
	v := validator{source: s.source, names: map[string]string{}}
	if s.Background != "" {
		v.color("background", s.Background)
	}
	for i := range s.Widgets {
		v.widget(fmt.Sprintf("widgets[%d]", i), &s.Widgets[i])
	}
	for i := range s.Animations {
		v.animation(fmt.Sprintf("animations[%d]", i), &s.Animations[i])
	}
	return stderrors.Join(v.errs...)
}

type validator struct {
	source string
	// names maps widget names to their kind.
	names map[string]string
	errs  []error
}

func (v *validator) fail(field string, got any, err error) {
	v.errs = append(v.errs, &errors.ParseError{Source: v.source, Field: field, Got: got, Err: err})
}

func (v *validator) color(field, s string) {
	if _, err := rendering.ParseColor(s); err != nil {
		v.fail(field, s, err)
	}
}

func (v *validator) widget(path string, w *WidgetSpec) {
	if w.Name != "" {
		if _, dup := v.names[w.Name]; dup {
			v.fail(path+".name", w.Name, ErrDuplicateName)
		}
		v.names[w.Name] = w.Kind
	}
	switch w.Kind {
	case KindBox:
		if w.W < 0 {
			v.fail(path+".w", w.W, ErrNegative)
		}
		if w.H < 0 {
			v.fail(path+".h", w.H, ErrNegative)
		}
		if w.Background != "" {
			v.color(path+".background", w.Background)
		}
		if len(w.Children) > 0 {
			v.fail(path+".children", len(w.Children), ErrChildren)
		}
		if b := w.Border; b != nil {
			if b.Thickness < 0 {
				v.fail(path+".border.thickness", b.Thickness, ErrNegative)
			}
			for _, f := range [...]struct{ name, c string }{
				{"color", b.Color}, {"upper", b.Upper}, {"lower", b.Lower},
			} {
				if f.c != "" {
					v.color(path+".border."+f.name, f.c)
				}
			}
		}
	case KindCollection:
		for i := range w.Children {
			v.widget(fmt.Sprintf("%s.children[%d]", path, i), &w.Children[i])
		}
	default:
		v.fail(path+".kind", w.Kind, ErrUnknownKind)
	}
}

func (v *validator) animation(path string, a *AnimationSpec) {
	kind, ok := v.names[a.Target]
	if !ok {
		v.fail(path+".target", a.Target, ErrUnknownTarget)
	}
	if a.DelayMS <= 0 {
		v.fail(path+".delay_ms", a.DelayMS, ErrNotPositive)
	}
	switch a.Kind {
	case KindSlide, KindPulse:
		if a.Steps <= 0 {
			v.fail(path+".steps", a.Steps, ErrNotPositive)
		}
		if _, ok := animation.CurveByName(a.Curve); !ok {
			v.fail(path+".curve", a.Curve, ErrUnknownKind)
		}
		if a.Kind == KindPulse {
			if ok && kind != KindBox {
				v.fail(path+".target", a.Target, ErrNotABox)
			}
			v.color(path+".from", a.From)
			v.color(path+".to", a.To)
		}
	case KindScript:
		if a.Script == "" && a.File == "" {
			v.fail(path, a.Target, ErrMissingScript)
		}
	default:
		v.fail(path+".kind", a.Kind, ErrUnknownKind)
	}
}
