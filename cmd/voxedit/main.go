package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"runtime"

	"voxedit/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

var configPath = flag.String("config", "voxedit.toml", "path to the editor configuration")

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)
	closer.Bind(func() { slog.Info("voxedit stopped") })

	closer.Checked(func() error { return run(ctx, *configPath) }, true)
}

func run(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	setupLogging(cfg)
	if err != nil {
		slog.Warn("using default config", "err", err)
	}
	config.Apply(cfg)

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	components, err := setupEditor(window, cfg)
	if err != nil {
		return err
	}
	defer components.Renderer.Dispose()

	reloads, err := config.Watch(ctx, path)
	if err != nil {
		slog.Warn("config hot reload disabled", "err", err)
	}

	slog.Info("voxedit started", "mesh_count", cfg.MeshCount, "render_mode", cfg.RenderMode, "config", path)
	NewEditorLoop(window, components, reloads).Run()
	return nil
}

func setupLogging(cfg config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
