package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// HealthReport is the rendered result of the health command.
type HealthReport struct {
	Status     string            `json:"status" yaml:"status"`
	Components []ComponentHealth `json:"components" yaml:"components"`
}

// ComponentHealth is one checked component.
type ComponentHealth struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewHealthReport builds a report from registry results, sorted by name.
func NewHealthReport(results map[string]error) HealthReport {
	report := HealthReport{Status: "ok", Components: make([]ComponentHealth, 0, len(results))}
	for name, err := range results {
		c := ComponentHealth{Name: name, Status: "ok"}
		if err != nil {
			c.Status = "unhealthy"
			c.Error = err.Error()
			report.Status = "unhealthy"
		}
		report.Components = append(report.Components, c)
	}
	sort.Slice(report.Components, func(i, j int) bool {
		return report.Components[i].Name < report.Components[j].Name
	})
	return report
}

// Render writes v to w in the given format. Tables are supported for ToDo
// items and health reports.
func Render(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return renderTable(w, v)
	default:
		return domain.NewFieldError("output", "must be one of: json, yaml, table")
	}
}

func renderTable(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	switch val := v.(type) {
	case *ports.ToDoItem:
		writeItems(tw, []ports.ToDoItem{*val})
	case []ports.ToDoItem:
		writeItems(tw, val)
	case HealthReport:
		_, _ = fmt.Fprintln(tw, "COMPONENT\tSTATUS\tERROR")
		for _, c := range val.Components {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Status, dash(c.Error))
		}
	default:
		return fmt.Errorf("no table layout for %T", v)
	}

	return tw.Flush()
}

func writeItems(w io.Writer, items []ports.ToDoItem) {
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tCOMPLETE\tDUE\tCOMPLETED ON\tDESCRIPTION")
	for _, it := range items {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID,
			it.Title,
			strconv.FormatBool(it.IsComplete),
			dash(it.DueDate),
			dash(it.CompletedOn),
			dash(it.Description),
		)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
