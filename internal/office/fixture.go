package office

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rooms.yaml
var defaultRoomsYAML []byte

type roomRecord struct {
	Name      string   `yaml:"name"`
	Capacity  int      `yaml:"capacity"`
	Amenities []string `yaml:"amenities"`
}

type categoryRecord struct {
	Name  string       `yaml:"name"`
	Rooms []roomRecord `yaml:"rooms"`
}

type layoutDocument struct {
	Floor      int              `yaml:"floor"`
	Categories []categoryRecord `yaml:"categories"`
}

// ParseLayoutYAML decodes a room fixture document into a Layout. Rooms must
// have unique names and positive capacities.
func ParseLayoutYAML(data []byte) (*Layout, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("office: fixture payload is empty")
	}
	var doc layoutDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("office: decode fixture: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("office: fixture declares no categories")
	}
	layout := &Layout{
		Floor: doc.Floor,
		rooms: make(map[string]*Room),
	}
	for _, cat := range doc.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("office: category without a name")
		}
		category := Category{Name: cat.Name}
		for _, rec := range cat.Rooms {
			if rec.Name == "" {
				return nil, fmt.Errorf("office: %s: room without a name", cat.Name)
			}
			if rec.Capacity <= 0 {
				return nil, fmt.Errorf("office: room %s: capacity must be positive, got %d", rec.Name, rec.Capacity)
			}
			if _, dup := layout.rooms[rec.Name]; dup {
				return nil, fmt.Errorf("office: duplicate room name %q", rec.Name)
			}
			layout.rooms[rec.Name] = &Room{
				Name:      rec.Name,
				Capacity:  rec.Capacity,
				Amenities: rec.Amenities,
			}
			category.Rooms = append(category.Rooms, rec.Name)
		}
		layout.categories = append(layout.categories, category)
	}
	return layout, nil
}

// Default materializes the embedded 14th-floor fixture.
func Default() *Layout {
	l, err := ParseLayoutYAML(defaultRoomsYAML)
	if err != nil {
		panic(fmt.Sprintf("office: embedded fixture invalid: %v", err))
	}
	return l
}
