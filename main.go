package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/unixpickle/essentials"

	"orbitals/animator"
	"orbitals/config"
	"orbitals/scene"
)

func main() {
	runtime.LockOSThread()

	flags, err := NewFlags()
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		flag.Usage()
		return
	}

	log.Println("Loading configuration...")
	cfg, err := config.Load(flags.Config())
	if err != nil {
		essentials.Die(err)
	}
	flags.Apply(&cfg)
	essentials.Must(cfg.Validate())

	vertexShaderSource, fragmentShaderSource, err := loadShaders(flags.Frag())
	essentials.Must(err)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	renderWidth := cfg.Window.Width
	renderHeight := int(1. / cfg.AspectRatio() * float64(renderWidth))
	windowWidth := mode.Width
	windowHeight := mode.Height
	if cfg.Window.Windowed {
		windowWidth = renderWidth
		windowHeight = renderHeight
		monitor = nil
	}
	window, err := glfw.CreateWindow(windowWidth, windowHeight, cfg.Window.Title, monitor, nil)
	if err != nil {
		panic(err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic(err)
	}

	log.Println("Building scene...")
	sc, err := scene.Build(cfg, float32(renderWidth)/float32(renderHeight))
	if err != nil {
		essentials.Die(err)
	}
	if sc.Model != nil {
		log.Printf("Loading model %s...", cfg.Model.Path)
	}

	anim := animator.New(cfg.Animator(), animator.SystemClock{}, sc.ModelSpin(cfg.Spin))
	anim.OnResize(window.GetSize())
	// The offscreen render is stretched over the whole window, so the
	// projection follows the window's aspect ratio, not the render's.
	sc.Camera.Resize(window.GetSize())

	// glfw delivers these from PollEvents, on this thread.
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		anim.OnPointerMove(xpos, ypos)
	})
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		anim.OnResize(width, height)
		sc.Camera.Resize(width, height)
	})

	r := newRenderer(vertexShaderSource, fragmentShaderSource, renderWidth, renderHeight)

	log.Printf("Rendering at %dx%d with %s damping", renderWidth, renderHeight, anim.Controller().Policy())
	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		sc.Apply(anim.Step())
		r.render(sc)
		r.blit(window.GetFramebufferSize())

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
