package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered job in the output manifest.
type ManifestEntry struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Preview   string `json:"preview,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Triangles int    `json:"triangles"`
	Drawn     int    `json:"drawn"`
	Skipped   int    `json:"skipped"`
	Pixels    int    `json:"pixels"`
}

// WriteManifest writes the successful results as a JSON array to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:      r.Name,
			Image:     r.Output,
			Preview:   r.Preview,
			Width:     r.Width,
			Height:    r.Height,
			Triangles: r.Stats.Triangles,
			Drawn:     r.Stats.Drawn,
			Skipped:   r.Stats.SkippedBox + r.Stats.SkippedArea + r.Stats.SkippedDomain,
			Pixels:    r.Stats.Pixels,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
