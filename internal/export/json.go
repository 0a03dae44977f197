package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/mitosim/internal/content"
	"github.com/san-kum/mitosim/internal/mitosis"
)

type CountData struct {
	Value int    `json:"value"`
	After *int   `json:"after,omitempty"`
	Label string `json:"label"`
}

type StatsRow struct {
	Composition string    `json:"composition"`
	Total       int       `json:"total"`
	Phase       string    `json:"phase"`
	Title       string    `json:"title"`
	Chromosomes CountData `json:"chromosomes"`
	DNA         CountData `json:"dna"`
	Chromatids  CountData `json:"chromatids"`
}

type StatsData struct {
	Lang string     `json:"lang"`
	Rows []StatsRow `json:"rows"`
}

func countData(c mitosis.Count, lang content.Lang) CountData {
	d := CountData{Value: c.Value, Label: c.Format(lang.PerCell())}
	if c.Transition {
		after := c.After
		d.After = &after
	}
	return d
}

// StatsTable computes one row per composition and phase, in the given order.
func StatsTable(comps []mitosis.Composition, phases []mitosis.Phase, lang content.Lang) (*StatsData, error) {
	data := &StatsData{Lang: string(lang), Rows: make([]StatsRow, 0, len(comps)*len(phases))}
	for _, c := range comps {
		for _, p := range phases {
			stats, err := mitosis.ComputeStats(c, p)
			if err != nil {
				return nil, err
			}
			title, err := content.Title(p, lang)
			if err != nil {
				return nil, err
			}
			data.Rows = append(data.Rows, StatsRow{
				Composition: string(c),
				Total:       c.Total(),
				Phase:       string(p),
				Title:       title,
				Chromosomes: countData(stats.Chromosomes, lang),
				DNA:         countData(stats.DNA, lang),
				Chromatids:  countData(stats.Chromatids, lang),
			})
		}
	}
	return data, nil
}

func EncodeJSON(w io.Writer, data *StatsData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

func WriteStatsJSON(path string, data *StatsData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeJSON(file, data)
}
