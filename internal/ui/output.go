package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cli/go-gh/v2/pkg/jsonpretty"
	"github.com/cli/go-gh/v2/pkg/term"
)

// Output is where rendered results go, with the terminal facts renderers need
type Output struct {
	Out      io.Writer
	Width    int
	Colorize bool
}

// NewTerminalOutput inspects the process's stdout through go-gh
func NewTerminalOutput() Output {
	t := term.FromEnv()
	width, _, err := t.Size()
	if err != nil || width <= 0 {
		width = defaultTerminalWidth
	}
	return Output{
		Out:      t.Out(),
		Width:    width,
		Colorize: t.IsColorEnabled(),
	}
}

// RenderJSON pretty-prints v with two-space indentation
func RenderJSON(w io.Writer, v any, colorize bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return jsonpretty.Format(w, bytes.NewReader(data), "  ", colorize)
}
