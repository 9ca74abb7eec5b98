package cmd

import (
	"bytes"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/Carmen-Shannon/oxy-rt/engine/camera"
	"github.com/Carmen-Shannon/oxy-rt/engine/input"
)

// Bindings prints the mouse and keyboard controls.
func Bindings(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	writeBindings(&buf)
	logger.Noticef("camera controls:\n%s", buf.String())
	return nil
}

func writeBindings(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Input", "Gesture", "Motion"})
	appendBindings(table, "mouse", camera.Bindings())
	appendBindings(table, "keyboard", input.KeyBindings())
	table.Render()
}

func appendBindings(table *tablewriter.Table, kind string, bindings []camera.Binding) {
	for _, b := range bindings {
		table.Append([]string{kind, b.Gesture, b.Motion})
	}
}
