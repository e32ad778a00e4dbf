// Package report writes ranked lines in the supported output formats.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/anagrank/internal/model"
)

// Renderer writes reports in one output format
type Renderer struct {
	format string
	limit  int
}

// NewRenderer creates a renderer. limit <= 0 renders every line.
func NewRenderer(format string, limit int) (*Renderer, error) {
	switch format {
	case "", model.FormatText:
		format = model.FormatText
	case model.FormatJSON, model.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
	return &Renderer{format: format, limit: limit}, nil
}

// Render writes the report to w
func (r *Renderer) Render(w io.Writer, rep *model.Report) error {
	out := *rep
	if r.limit > 0 && len(out.Lines) > r.limit {
		out.Lines = out.Lines[:r.limit]
	}

	switch r.format {
	case model.FormatJSON:
		return r.renderJSON(w, &out)
	case model.FormatYAML:
		return r.renderYAML(w, &out)
	default:
		return r.renderText(w, out.Lines)
	}
}

// renderText prints `<text> | weight = <n>`, one line per ranked line.
// Text already ends in a space, so the separator follows a double space.
func (r *Renderer) renderText(w io.Writer, lines []model.RankedLine) error {
	bw := bufio.NewWriter(w)
	var num []byte
	for _, l := range lines {
		num = strconv.AppendInt(num[:0], int64(l.Weight), 10)
		_, _ = bw.WriteString(l.Text)
		_, _ = bw.WriteString(" | weight = ")
		_, _ = bw.Write(num)
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (r *Renderer) renderJSON(w io.Writer, rep *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode JSON report: %w", err)
	}
	return nil
}

func (r *Renderer) renderYAML(w io.Writer, rep *model.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode YAML report: %w", err)
	}
	return nil
}
