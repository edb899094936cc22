package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"shape-exporter/internal/model"
)

// Format selects the descriptor body encoding.
type Format string

const (
	FormatLegacy Format = "legacy"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatLegacy, FormatJSON, FormatYAML}

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatLegacy, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatLegacy, nil
	default:
		return "", fmt.Errorf("unknown descriptor format %q (want one of %v)", s, Formats)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}

	return ".json"
}

type renderFunc func(w io.Writer, class string, members []model.Member) error

func (f Format) renderer() renderFunc {
	switch f {
	case FormatJSON:
		return renderJSON
	case FormatYAML:
		return renderYAML
	default:
		return renderLegacy
	}
}

// renderLegacy writes the near-JSON body byte for byte.
func renderLegacy(w io.Writer, class string, members []model.Member) error {
	var b strings.Builder

	b.WriteString(`{class:"` + class + "\",\n ")
	b.WriteString("fields:\n {\n")

	for i, m := range members {
		b.WriteString("  " + m.Name + `:"` + m.Type + `"`)
		if i < len(members)-1 {
			b.WriteString(",\n")
		}
	}

	b.WriteString("\n }\n")
	b.WriteString("}")

	_, err := io.WriteString(w, b.String())

	return err
}

func renderJSON(w io.Writer, class string, members []model.Member) error {
	var b strings.Builder

	b.WriteString("{\n  \"class\": " + quoteJSON(class) + ",\n")

	if len(members) == 0 {
		b.WriteString("  \"fields\": {}\n}\n")
	} else {
		b.WriteString("  \"fields\": {\n")

		for i, m := range members {
			b.WriteString("    " + quoteJSON(m.Name) + ": " + quoteJSON(m.Type))
			if i < len(members)-1 {
				b.WriteString(",")
			}

			b.WriteString("\n")
		}

		b.WriteString("  }\n}\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func quoteJSON(s string) string {
	// Marshalling a string cannot fail.
	out, _ := json.Marshal(s)
	return string(out)
}

func renderYAML(w io.Writer, class string, members []model.Member) error {
	fields := &yaml.Node{Kind: yaml.MappingNode}
	for _, m := range members {
		fields.Content = append(fields.Content, plainScalar(m.Name), quotedScalar(m.Type))
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			plainScalar("class"), quotedScalar(class),
			plainScalar("fields"), fields,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return enc.Close()
}

func plainScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quotedScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}
