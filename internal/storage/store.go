package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/shmsim/internal/oscillator"
	"github.com/san-kum/shmsim/internal/series"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Spring          float64   `json:"spring"`
	Mass            float64   `json:"mass"`
	InitPos         float64   `json:"init_pos"`
	InitVel         float64   `json:"init_vel"`
	Steps           int       `json:"steps"`
	Duration        float64   `json:"duration"`
	StepSize        float64   `json:"step_size"`
	Damping         float64   `json:"damping"`
	DriveAmp        float64   `json:"drive_amp"`
	DriveFreq       float64   `json:"drive_freq"`
	Amplitude       float64   `json:"amplitude"`
	MaxVelocity     float64   `json:"max_velocity"`
	MaxAcceleration float64   `json:"max_acceleration"`
	DecayCutoff     float64   `json:"decay_cutoff"`
}

// Run holds a trajectory read back from disk.
type Run struct {
	Times        series.Series
	Position     series.Series
	Velocity     series.Series
	Acceleration series.Series
	Kinetic      series.Series
	Potential    series.Series
	Total        series.Series
}

// Save writes one completed run: metadata.json plus trajectory.csv. Energy
// columns are included only when the model has computed them.
func (s *Store) Save(m *oscillator.Model) (string, error) {
	runID := fmt.Sprintf("shm_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Timestamp:       time.Now(),
		Spring:          m.Spring(),
		Mass:            m.Mass(),
		InitPos:         m.InitialPosition(),
		InitVel:         m.InitialVelocity(),
		Steps:           m.Steps(),
		Duration:        m.Duration(),
		StepSize:        m.StepSize(),
		Damping:         m.Damping(),
		DriveAmp:        m.DriveAmplitude(),
		DriveFreq:       m.DriveFrequency(),
		Amplitude:       m.Amplitude(),
		MaxVelocity:     m.MaxVelocity(),
		MaxAcceleration: m.MaxAcceleration(),
		DecayCutoff:     m.DecayCutoff(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	times := m.Times()
	x := m.Position()
	v := m.Velocity()
	a := m.Acceleration()
	ke := m.Kinetic()
	pe := m.Potential()
	te := m.Total()
	hasEnergy := len(te) == len(times)

	header := []string{"time", "x", "v", "a"}
	if hasEnergy {
		header = append(header, "ke", "pe", "te")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range times {
		row := []string{
			strconv.FormatFloat(times[i], 'f', 6, 64),
			strconv.FormatFloat(x[i], 'f', 6, 64),
			strconv.FormatFloat(v[i], 'f', 6, 64),
			strconv.FormatFloat(a[i], 'f', 6, 64),
		}
		if hasEnergy {
			row = append(row,
				strconv.FormatFloat(ke[i], 'f', 6, 64),
				strconv.FormatFloat(pe[i], 'f', 6, 64),
				strconv.FormatFloat(te[i], 'f', 6, 64),
			)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadRun(runID string) (*Run, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return &Run{}, nil
	}

	hasEnergy := len(records[0]) >= 7
	run := &Run{}

	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}

		vals := make([]float64, 0, len(record))
		ok := true
		for _, field := range record {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, f)
		}
		if !ok {
			continue
		}

		run.Times = append(run.Times, vals[0])
		run.Position = append(run.Position, vals[1])
		run.Velocity = append(run.Velocity, vals[2])
		run.Acceleration = append(run.Acceleration, vals[3])
		if hasEnergy && len(vals) >= 7 {
			run.Kinetic = append(run.Kinetic, vals[4])
			run.Potential = append(run.Potential, vals[5])
			run.Total = append(run.Total, vals[6])
		}
	}

	return run, nil
}
