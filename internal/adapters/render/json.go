package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/cairn/internal/core/domain"
)

type jsonGraph struct {
	Root     string        `json:"root"`
	Packages []jsonPackage `json:"packages"`
}

type jsonPackage struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Source       string   `json:"source"`
	Commit       string   `json:"commit,omitempty"`
	Dependencies []string `json:"dependencies"`
}

// writeJSON writes packages in discovery order.
func writeJSON(w io.Writer, g *domain.Graph) error {
	out := jsonGraph{Packages: make([]jsonPackage, 0, g.Len())}
	if root := g.Root(); root != nil {
		out.Root = root.Name()
	}
	for p := range g.Packages() {
		out.Packages = append(out.Packages, jsonPackage{
			Name:         p.Name(),
			Version:      p.ID.Version,
			Source:       p.ID.Source.String(),
			Commit:       p.Manifest.Commit,
			Dependencies: g.Dependencies(p.Name()),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
