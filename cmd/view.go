package cmd

import (
	"github.com/urfave/cli"

	"github.com/Carmen-Shannon/oxy-rt/engine"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/renderer"
	"github.com/Carmen-Shannon/oxy-rt/engine/window"
)

// View opens the interactive viewer.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx.String("config"))
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}
	if err := applyViewFlags(cfg, ctx.Int("width"), ctx.Int("height"), ctx.String("mode"), ctx.Bool("profile"), ctx.Bool("software")); err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight),
	)

	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(renderer.ParsePresentMode(cfg.Renderer.PresentMode)),
		renderer.WithClearColor(cfg.Renderer.ClearColor),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.Software),
	)
	if err != nil {
		_ = win.Close()
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	options := []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithConfig(cfg),
		engine.WithRenderer(r),
		engine.WithRenderFrameLimit(ctx.Float64("fps-limit")),
		engine.WithAssetDir(assetDir(ctx.String("config"))),
	}
	if ctx.Bool("watch") && ctx.String("config") != "" {
		options = append(options, engine.WithConfigFile(ctx.String("config")))
	}

	eng, err := engine.NewEngine(options...)
	if err != nil {
		r.Release()
		_ = win.Close()
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	logger.Noticef("viewer started in %s mode; press H for controls", eng.Manipulator().Mode())
	eng.Run()
	return nil
}

// applyViewFlags overrides configuration values with command line flags. Zero values keep the configuration.
func applyViewFlags(cfg *config.Config, width, height int, mode string, profile, software bool) error {
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	if mode != "" {
		m, err := camera.ParseMode(mode)
		if err != nil {
			return err
		}
		cfg.Camera.Mode = m.String()
	}
	if profile {
		cfg.Profiling.Enabled = true
	}
	if software {
		cfg.Renderer.Software = true
	}
	return cfg.Validate()
}
