package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-avatar/common"
	"github.com/Carmen-Shannon/oxy-avatar/engine"
	"github.com/Carmen-Shannon/oxy-avatar/engine/camera"
	"github.com/Carmen-Shannon/oxy-avatar/engine/config"
	"github.com/Carmen-Shannon/oxy-avatar/engine/gpu"
	"github.com/Carmen-Shannon/oxy-avatar/engine/stage"
	"github.com/Carmen-Shannon/oxy-avatar/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounding sphere of a standing, roughly 1.8 m tall avatar.
var (
	avatarCenter = mgl32.Vec3{0, 0.9, 0}
	avatarRadius = float32(0.9)
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run owns every GPU resource so deferred releases run before main exits.
func run(args []string) error {
	flags := flag.NewFlagSet("avatar-camera", flag.ContinueOnError)
	configPath := flags.String("config", "avatar-camera.toml", "settings file (.toml, .yaml or .yml)")
	writeConfig := flags.String("write-config", "", "write the effective settings to this path and exit")
	title := flags.String("title", "", "window title override")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("[Config] %w", err)
	}
	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			return fmt.Errorf("[Config] %w", err)
		}
		log.Printf("[Config] wrote %s", *writeConfig)
		return nil
	}
	registry, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("[Config] %w", err)
	}

	// ── Engine + Window ─────────────────────────────────────────────────
	win := window.NewWindow(append(cfg.WindowOptions(),
		window.WithTitle(common.Coalesce(*title, cfg.Window.Title)),
	)...)
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithFrameLimit(cfg.Engine.FrameLimit),
	)

	// ── GPU ─────────────────────────────────────────────────────────────
	presentMode := gpu.PresentModeVSync
	if !cfg.Engine.VSync {
		presentMode = gpu.PresentModeUncapped
	}
	device, err := gpu.NewDevice(win.SurfaceDescriptor(), gpu.WithPresentMode(presentMode))
	if err != nil {
		return fmt.Errorf("[GPU] %w", err)
	}
	defer device.Release()
	if err := device.ConfigureSurface(win.Width(), win.Height()); err != nil {
		return fmt.Errorf("[GPU] %w", err)
	}

	var uniform camera.GPUCameraUniform
	uniformBuffer, err := device.CreateUniformBuffer("Camera Uniform", uint64(uniform.Size()))
	if err != nil {
		return fmt.Errorf("[GPU] %w", err)
	}
	defer uniformBuffer.Release()

	scene, err := stage.New(device, uniformBuffer, stage.WithAvatarBounds(avatarCenter, avatarRadius))
	if err != nil {
		return fmt.Errorf("[GPU] %w", err)
	}
	defer scene.Release()

	// ── Camera ──────────────────────────────────────────────────────────
	target := camera.NewGPUTarget(
		camera.WithAspect(win.Aspect()),
		camera.WithNear(0.01),
		camera.WithFar(100),
		camera.WithBuffer(uniformBuffer, 0),
	)
	controller := camera.NewCameraController(target, win, cfg.ControllerOptions(registry)...)

	// ── Input Handling ──────────────────────────────────────────────────
	bindings := newKeyBindings(controller, log.Default())
	win.SetKeyDownCallback(bindings.keyDown)
	win.SetKeyUpCallback(bindings.keyUp)
	framing := newFramingMonitor(target, avatarCenter, avatarRadius, log.Default())

	eng.SetResizeCallback(func(width, height int) {
		if err := device.ConfigureSurface(width, height); err != nil {
			log.Printf("[GPU] resize to %dx%d: %v", width, height, err)
		}
		target.SetAspect(win.Aspect())
	})

	eng.SetFrameCallback(func(deltaTime, now float64) {
		controller.Tick(deltaTime, now)
		target.Flush(device.Queue())
		framing.check()

		if err := device.BeginFrame(); err != nil {
			return
		}
		scene.Draw()
		device.EndFrame()
		device.Present()
	})

	printHelp(controller.Modes())
	log.Println("[Engine] starting avatar camera")
	eng.Run()
	return nil
}

func printHelp(modes []string) {
	fmt.Println("Avatar Camera")
	fmt.Println("  Left drag = orbit    Scroll = zoom")
	for i, id := range modes {
		if i >= 9 {
			break
		}
		fmt.Printf("  %d = %s\n", i+1, id)
	}
	fmt.Println("  Shift+digit = snap   R = reset   A = auto-rotate")
	fmt.Println("  Space = cancel transition   I = camera info   Esc = quit")
}
