package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/render/raster"
	"github.com/go-theft-auto/gridtable/scene"
)

// Key identifies a viewer key binding.
type Key int

// Keys the viewer forwards to KeyFunc.
const (
	KeyNone Key = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyG
	KeyB
	KeyD
	KeyR
)

// KeyFunc handles a key press. Returning true marks the scene as changed.
type KeyFunc func(key Key, shift bool) bool

// ViewerConfig configures a Viewer window.
type ViewerConfig struct {
	Title         string
	Width, Height int
	Raster        []raster.Option
	Style         scene.Style
	OnKey         KeyFunc
}

// Viewer owns a GLFW window and presents a scene root in it until the window closes.
//
// GLFW requires every call to happen on the main OS thread; callers must
// runtime.LockOSThread from an init function, as cmd/gridtable and example do.
type Viewer struct {
	window   *glfw.Window
	renderer *Renderer
	cfg      ViewerConfig
	style    scene.Style
	changed  bool
}

// NewViewer initializes GLFW and GL and opens the window.
func NewViewer(cfg ViewerConfig) (*Viewer, error) {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "gridtable"
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	renderer, err := NewRenderer(w, h, cfg.Raster...)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	v := &Viewer{window: window, renderer: renderer, cfg: cfg, style: cfg.Style}
	window.SetKeyCallback(v.keyCallback)
	return v, nil
}

// Measurer returns the text measurer labels shown in this viewer should use.
func (v *Viewer) Measurer() scene.TextMeasurer {
	return v.renderer.Measurer()
}

// Style returns the draw style used for the next frame.
func (v *Viewer) Style() scene.Style { return v.style }

// SetStyle replaces the draw style. Key handlers use it to toggle grid decorations.
func (v *Viewer) SetStyle(s scene.Style) { v.style = s }

// Run presents root every frame until the window is closed or Escape is pressed.
func (v *Viewer) Run(root gridtable.Node) error {
	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)

	for !v.window.ShouldClose() {
		glfw.PollEvents()

		w, h := v.window.GetFramebufferSize()
		v.renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if v.changed {
			if t, ok := root.(*gridtable.Table); ok {
				t.Relayout()
			}
			v.changed = false
		}

		style := v.style
		style.Viewport = gridtable.Rect{W: float32(w), H: float32(h)}
		dl.Clear()
		scene.DrawStyled(dl, root, style)
		if err := v.renderer.Render(dl); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		v.window.SwapBuffers()
	}
	return nil
}

// Close releases GL resources, destroys the window and terminates GLFW.
func (v *Viewer) Close() {
	v.renderer.Delete()
	v.window.Destroy()
	glfw.Terminate()
}

func (v *Viewer) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	k := glfwKeyToKey(key)
	if k == KeyNone {
		return
	}
	if k == KeyEscape {
		w.SetShouldClose(true)
		return
	}
	if v.cfg.OnKey != nil && v.cfg.OnKey(k, mods&glfw.ModShift != 0) {
		slog.Debug("viewer scene changed", "key", int(k))
		v.changed = true
	}
}

// glfwKeyToKey maps GLFW keys to viewer keys.
func glfwKeyToKey(key glfw.Key) Key {
	switch key {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyLeft:
		return KeyLeft
	case glfw.KeyRight:
		return KeyRight
	case glfw.KeyUp:
		return KeyUp
	case glfw.KeyDown:
		return KeyDown
	case glfw.KeyG:
		return KeyG
	case glfw.KeyB:
		return KeyB
	case glfw.KeyD:
		return KeyD
	case glfw.KeyR:
		return KeyR
	default:
		return KeyNone
	}
}
