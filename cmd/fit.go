package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/Carmen-Shannon/oxy-rt/engine"
	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/config"
	"github.com/Carmen-Shannon/oxy-rt/engine/loader"
	"github.com/Carmen-Shannon/oxy-rt/engine/scene"
)

// fitRequest is the resolved input of the fit command.
type fitRequest struct {
	min, max mgl32.Vec3
	tight    bool
	aspect   float32
}

// Fit computes the pose that frames the scene (or an explicit box) without opening a window.
func Fit(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx.String("config"))
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	sc, err := engine.BuildScene(cfg.Scene, assetDir(ctx.String("config")), loader.NewLoader(loader.BackendTypeGLTF))
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	req, err := resolveFit(cfg, sc, ctx.String("min"), ctx.String("max"), ctx.Bool("tight"), ctx.Float64("aspect"))
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}

	res, err := computeFit(cfg, req)
	if err != nil {
		logger.Error(err)
		return cli.NewExitError(err.Error(), 1)
	}
	if !res.visible {
		logger.Warningf("fitted box %v - %v is clipped by the near or far plane", req.min, req.max)
	}

	var buf bytes.Buffer
	writeFit(&buf, req, res)
	logger.Noticef("fit result:\n%s", buf.String())
	return nil
}

// resolveFit merges the command line with the scene bounds.
func resolveFit(cfg *config.Config, sc scene.Scene, minFlag, maxFlag string, tight bool, aspect float64) (fitRequest, error) {
	req := fitRequest{tight: tight || cfg.Scene.TightFit}
	req.min, req.max = engine.SceneBounds(sc, cfg.Scene)

	if minFlag != "" {
		v, err := parseVec3(minFlag)
		if err != nil {
			return req, fmt.Errorf("fit: --min: %w", err)
		}
		req.min = v
	}
	if maxFlag != "" {
		v, err := parseVec3(maxFlag)
		if err != nil {
			return req, fmt.Errorf("fit: --max: %w", err)
		}
		req.max = v
	}
	for i := range 3 {
		if req.min[i] > req.max[i] {
			return req, fmt.Errorf("fit: min %v exceeds max %v", req.min, req.max)
		}
	}

	req.aspect = float32(aspect)
	if aspect <= 0 {
		req.aspect = float32(cfg.Window.Width) / float32(cfg.Window.Height)
	}
	return req, nil
}

// fitResult is the camera state after the fit.
type fitResult struct {
	pose    camera.Pose
	view    mgl32.Mat4
	visible bool // every box corner lies inside the frustum
}

// computeFit runs an instant fit on a manipulator built from the configuration and checks the
// box against the resulting frustum.
func computeFit(cfg *config.Config, req fitRequest) (fitResult, error) {
	opts, err := engine.ManipulatorOptions(cfg.Camera, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fitResult{}, err
	}
	m := camera.NewCameraManipulator(opts...)
	m.Fit(req.min, req.max, true, req.tight, req.aspect)

	cam := camera.NewCamera(
		camera.WithAspect(req.aspect),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithManipulator(m),
	)
	tolerance := req.max.Sub(req.min).Len() * 1e-3
	return fitResult{
		pose:    m.Camera(),
		view:    m.Matrix(),
		visible: cam.Frustum().ContainsBox(req.min, req.max, tolerance),
	}, nil
}

func writeFit(w io.Writer, req fitRequest, res fitResult) {
	pose, view := res.pose, res.view
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"box", fmt.Sprintf("%s - %s", fmtVec3(req.min), fmtVec3(req.max))})
	table.Append([]string{"tight", fmt.Sprintf("%t", req.tight)})
	table.Append([]string{"aspect", fmt.Sprintf("%.4f", req.aspect)})
	table.Append([]string{"eye", fmtVec3(pose.Eye)})
	table.Append([]string{"center", fmtVec3(pose.Center)})
	table.Append([]string{"up", fmtVec3(pose.Up)})
	table.Append([]string{"fov", fmt.Sprintf("%.2f", pose.Fov)})
	table.Append([]string{"distance", fmt.Sprintf("%.4f", pose.Distance())})
	table.Append([]string{"visible", fmt.Sprintf("%t", res.visible)})
	for r := range 4 {
		row := view.Row(r)
		table.Append([]string{fmt.Sprintf("view[%d]", r), fmt.Sprintf("% .4f % .4f % .4f % .4f", row[0], row[1], row[2], row[3])})
	}
	table.Render()
}

func fmtVec3(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}
