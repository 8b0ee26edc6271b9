package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/calsigns/internal/host"
	"github.com/ppiankov/calsigns/internal/worker"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	unknownSign = "unknown"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	signStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// batchRow is the serialized form of a batch result
type batchRow struct {
	Input   string                `json:"input" yaml:"input"`
	Date    string                `json:"date,omitempty" yaml:"date,omitempty"`
	Systems []worker.SystemResult `json:"systems,omitempty" yaml:"systems,omitempty"`
	Error   string                `json:"error,omitempty" yaml:"error,omitempty"`
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

func formatAttributes(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + attrs[k]
	}
	return strings.Join(parts, ", ")
}

// renderStates writes entity states in the requested format
func renderStates(w io.Writer, format, title string, states []host.State) error {
	if format != formatText {
		return encode(w, format, states)
	}

	fmt.Fprintln(w, headerStyle.Render(title))
	for _, st := range states {
		line := fmt.Sprintf("  %-32s %s", st.Name, signStyle.Render(st.ValueOr(unknownSign)))
		if attrs := formatAttributes(st.Attributes); attrs != "" {
			line += "  " + dimStyle.Render(attrs)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// renderBatch writes batch results in input order
func renderBatch(w io.Writer, format string, results []*worker.DateResult) error {
	rows := make([]batchRow, len(results))
	for i, r := range results {
		rows[i] = batchRow{Input: r.Input, Systems: r.Systems}
		if r.Error != nil {
			rows[i].Error = r.Error.Error()
		} else {
			rows[i].Date = r.Date.String()
		}
	}

	if format != formatText {
		return encode(w, format, rows)
	}

	for _, row := range rows {
		if row.Error != "" {
			fmt.Fprintf(w, "%s  %s\n", headerStyle.Render(row.Input), errStyle.Render(row.Error))
			continue
		}
		fmt.Fprintln(w, headerStyle.Render(row.Input))
		for _, s := range row.Systems {
			sign := unknownSign
			if s.Matched {
				sign = s.Result.Sign
			}
			line := fmt.Sprintf("  %-32s %s", s.System, signStyle.Render(sign))
			if attrs := formatAttributes(s.Result.Attributes); attrs != "" {
				line += "  " + dimStyle.Render(attrs)
			}
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

// systemInfo describes one registered system for the systems command
type systemInfo struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Entries int      `json:"entries" yaml:"entries"`
	Options []string `json:"options" yaml:"options"`
}

func renderSystems(w io.Writer, format string, infos []systemInfo) error {
	if format != formatText {
		return encode(w, format, infos)
	}

	for _, s := range infos {
		fmt.Fprintf(w, "%s  %s\n", headerStyle.Render(s.ID), dimStyle.Render(fmt.Sprintf("%s, %d entries", s.Name, s.Entries)))
		fmt.Fprintf(w, "  %s\n", strings.Join(s.Options, ", "))
	}
	return nil
}
