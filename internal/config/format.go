package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
)

// RedactedValue replaces secret values in any rendered output.
const RedactedValue = "[REDACTED]"

// Attribute is one resolved setting prepared for display.
type Attribute struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Source   Source   `json:"source"`
	Consumer Consumer `json:"consumer"`
	Secret   bool     `json:"secret,omitempty"`
}

// Attributes returns every recognized setting with its effective value and
// source. Secret values are redacted; the raw values stay on Config itself.
func (c *Config) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(settings))
	for _, s := range Settings() {
		val := s.Value(c)
		if s.Secret && val != "" {
			val = RedactedValue
		}
		attrs = append(attrs, Attribute{
			Name:     s.Name,
			Value:    val,
			Source:   c.Source(s.Name),
			Consumer: s.Consumer,
			Secret:   s.Secret,
		})
	}
	return attrs
}

// FormatText renders the resolved settings as an aligned table.
func (c *Config) FormatText() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE\tSOURCE\tCONSUMER")
	for _, a := range c.Attributes() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Name, a.Value, a.Source, a.Consumer)
	}
	_ = w.Flush()
	return b.String()
}

// FormatJSON renders the resolved settings as indented JSON.
func (c *Config) FormatJSON() (string, error) {
	out, err := json.MarshalIndent(c.Attributes(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
