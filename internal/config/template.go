package config

import (
	"fmt"
	"io"
)

// WriteEnvTemplate writes a .env skeleton covering every recognized setting,
// grouped by consumer. Required settings are left blank with a note; optional
// ones are pre-filled with their documented default.
func WriteEnvTemplate(w io.Writer) error {
	var current Consumer
	for _, s := range Settings() {
		if s.Consumer != current {
			if current != "" {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			current = s.Consumer
			if _, err := fmt.Fprintf(w, "# --- %s ---\n", current); err != nil {
				return err
			}
		}
		if s.Requirement != "" {
			if _, err := fmt.Fprintf(w, "# %s\n", s.Requirement); err != nil {
				return err
			}
		}
		value := s.Default
		if value == "!DEBUG" {
			// Dynamic default, resolved at load time.
			value = ""
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", s.Name, value); err != nil {
			return err
		}
	}
	return nil
}
