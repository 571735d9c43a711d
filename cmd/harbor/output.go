package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E3A5F"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#15803D"))
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func field(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(label+":"), value)
}
