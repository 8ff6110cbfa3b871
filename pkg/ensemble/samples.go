package ensemble

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/orbitkit/rvorbit/pkg/orbit"
	"github.com/orbitkit/rvorbit/pkg/units"
)

// LoadSamplesCSV reads orbital element samples from a CSV file with a header
// row and columns P_day, K_kms, e, phi0_rad, omega_rad. Malformed rows are
// skipped with a warning; rows that fail element validation are skipped the
// same way.
func LoadSamplesCSV(filename string) ([]orbit.Elements, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("insufficient data in file")
	}

	// Skip header row
	var samples []orbit.Elements
	for i, record := range records[1:] {
		if len(record) < 5 {
			log.Printf("Warning: skipping incomplete record %d", i+1)
			continue
		}

		el, err := parseSampleRecord(record)
		if err != nil {
			log.Printf("Warning: failed to parse record %d: %v", i+1, err)
			continue
		}

		samples = append(samples, el)
	}

	return samples, nil
}

// parseSampleRecord parses a single element sample from CSV.
func parseSampleRecord(record []string) (orbit.Elements, error) {
	fields := make([]float64, 5)
	names := []string{"period", "semi-amplitude", "eccentricity", "phi0", "omega"}
	for i := range fields {
		v, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			return orbit.Elements{}, fmt.Errorf("invalid %s: %w", names[i], err)
		}
		fields[i] = v
	}

	return orbit.NewElements(
		units.Days(fields[0]),
		units.KilometersPerSec(fields[1]),
		fields[2],
		units.Radians(fields[3]),
		units.Radians(fields[4]),
	)
}
