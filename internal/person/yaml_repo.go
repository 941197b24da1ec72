package person

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLRepo reads the catalog from a YAML file keyed by category:
//
//	entrepreneur:
//	  - name: "Some Name"
//	    book: "Some Title"
//	    company: "Some Co"
//
// Category order and person order within a category follow the document.
type YAMLRepo struct {
	path string
}

func NewYAMLRepo(path string) *YAMLRepo {
	return &YAMLRepo{path: path}
}

func (r *YAMLRepo) List(ctx context.Context) ([]Person, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}
	return parseCatalog(raw)
}

// parseCatalog decodes the category map while preserving document order,
// which a plain map[string][]Person would lose.
func parseCatalog(raw []byte) ([]Person, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse catalog: top level must be a category map")
	}

	var persons []Person
	for i := 0; i+1 < len(root.Content); i += 2 {
		category := root.Content[i].Value
		entries := root.Content[i+1]
		if entries.Kind != yaml.SequenceNode {
			continue
		}
		for _, entry := range entries.Content {
			var p Person
			if err := entry.Decode(&p); err != nil {
				return nil, fmt.Errorf("parse catalog entry in %q: %w", category, err)
			}
			p.Category = category
			p.FirstName = firstName(p.Name)
			persons = append(persons, p)
		}
	}
	return persons, nil
}
