// Package replay provides the file-based input boundary of the decision
// engine: loading and saving snapshot sequences as CSV, generating
// synthetic flight profiles, and playing sequences back at a paced,
// configurable rate.
//
// The core never depends on this package; it is one of the input
// adapters feeding snapshots into an Evaluator.
package replay

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/unklstewy/flight-director/pkg/flight"
)

// csvHeader defines the replay file column order.
var csvHeader = []string{
	"velocity_mps",
	"altitude_m",
	"angle_of_attack_deg",
	"flap_angle_deg",
	"bank_angle_deg",
	"thrust_n",
	"vertical_speed_mps",
	"target_altitude_m",
}

// Load reads a snapshot sequence from a CSV replay file. The first row
// must be the header; blank lines are skipped.
func Load(path string) ([]flight.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a snapshot sequence from CSV data.
func Read(r io.Reader) ([]flight.Snapshot, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read replay header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("column %d: expected %q, got %q", i, name, header[i])
		}
	}

	var snapshots []flight.Snapshot
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		values := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", line, csvHeader[i], err)
			}
			values[i] = v
		}

		snapshots = append(snapshots, flight.Snapshot{
			VelocityMps:      values[0],
			AltitudeM:        values[1],
			AngleOfAttackDeg: values[2],
			FlapAngleDeg:     values[3],
			BankAngleDeg:     values[4],
			ThrustN:          values[5],
			VerticalSpeedMps: values[6],
			TargetAltitudeM:  values[7],
		})
	}

	if len(snapshots) == 0 {
		return nil, fmt.Errorf("replay file contains no snapshots")
	}

	return snapshots, nil
}

// Save writes a snapshot sequence to a CSV replay file.
func Save(path string, snapshots []flight.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}

	if err := Write(f, snapshots); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write serializes a snapshot sequence as CSV.
func Write(w io.Writer, snapshots []flight.Snapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write replay header: %w", err)
	}

	for _, s := range snapshots {
		record := []string{
			formatFloat(s.VelocityMps),
			formatFloat(s.AltitudeM),
			formatFloat(s.AngleOfAttackDeg),
			formatFloat(s.FlapAngleDeg),
			formatFloat(s.BankAngleDeg),
			formatFloat(s.ThrustN),
			formatFloat(s.VerticalSpeedMps),
			formatFloat(s.TargetAltitudeM),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
