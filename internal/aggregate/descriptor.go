package aggregate

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/inful/sitepipe/internal/gitrepo"
)

// DefaultDescriptorName is the component descriptor filename spec.md §6
// expects at the root of every matched ref, absent a project override.
const DefaultDescriptorName = "antora.yml"

// ComponentDescriptor is the component descriptor's extracted fields, per
// spec.md §6: name and version are required, version is coerced to string
// regardless of its YAML scalar type.
type ComponentDescriptor struct {
	Name      string
	Version   string
	Title     string
	StartPage string
	Nav       []string
}

type rawDescriptor struct {
	Name      string      `yaml:"name"`
	Version   scalarField `yaml:"version"`
	Title     string      `yaml:"title"`
	StartPage string      `yaml:"start_page"`
	Nav       []string    `yaml:"nav"`
}

// scalarField decodes a YAML scalar of any kind (string, int, float, bool)
// into its string representation, for the descriptor's "version" field
// which authors commonly write unquoted (e.g. `version: 2.0`).
type scalarField string

func (s *scalarField) UnmarshalYAML(node *yaml.Node) error {
	*s = scalarField(node.Value)
	return nil
}

// ParseDescriptor locates the descriptor file at the walked root (a file
// whose path, with no directory component, equals descriptorName) and
// decodes it. Per spec.md §4.4 step 6, exactly one must be present and it
// must declare a name and a version.
func ParseDescriptor(files []gitrepo.RawFile, descriptorName string) (ComponentDescriptor, error) {
	if descriptorName == "" {
		descriptorName = DefaultDescriptorName
	}

	var found *gitrepo.RawFile
	for i := range files {
		if path.Dir(files[i].Path) == "." && path.Base(files[i].Path) == descriptorName {
			if found != nil {
				return ComponentDescriptor{}, badDescriptor(fmt.Sprintf("multiple %s files at walked root", descriptorName))
			}
			found = &files[i]
		}
	}
	if found == nil {
		return ComponentDescriptor{}, badDescriptor(fmt.Sprintf("no %s at walked root", descriptorName))
	}

	var raw rawDescriptor
	if err := yaml.Unmarshal(found.Contents, &raw); err != nil {
		return ComponentDescriptor{}, badDescriptor("malformed component descriptor: " + err.Error())
	}
	if raw.Name == "" {
		return ComponentDescriptor{}, badDescriptor("component descriptor missing name")
	}
	if raw.Version == "" {
		return ComponentDescriptor{}, badDescriptor("component descriptor missing version")
	}

	return ComponentDescriptor{
		Name:      raw.Name,
		Version:   string(raw.Version),
		Title:     raw.Title,
		StartPage: raw.StartPage,
		Nav:       raw.Nav,
	}, nil
}
