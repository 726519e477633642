package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/shmsim/internal/storage"
)

type RunData struct {
	Meta         storage.RunMetadata `json:"meta"`
	Times        []float64           `json:"times"`
	Position     []float64           `json:"position"`
	Velocity     []float64           `json:"velocity"`
	Acceleration []float64           `json:"acceleration"`
	Kinetic      []float64           `json:"kinetic,omitempty"`
	Potential    []float64           `json:"potential,omitempty"`
	Total        []float64           `json:"total,omitempty"`
}

func WriteJSON(w io.Writer, meta *storage.RunMetadata, run *storage.Run) error {
	data := RunData{
		Meta:         *meta,
		Times:        run.Times,
		Position:     run.Position,
		Velocity:     run.Velocity,
		Acceleration: run.Acceleration,
		Kinetic:      run.Kinetic,
		Potential:    run.Potential,
		Total:        run.Total,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func WriteJSONFile(path string, meta *storage.RunMetadata, run *storage.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, run)
}
