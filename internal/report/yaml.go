package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes the report as YAML using the JSON schema
func WriteYAML(w io.Writer, r *Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(buildOutput(r)); err != nil {
		return err
	}
	return encoder.Close()
}
