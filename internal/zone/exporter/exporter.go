// Package exporter serializes the post-mutation zone to durable,
// human-reviewable artifacts: a structured JSON snapshot for diffing, a
// zone-file-style text rendering, and a separate extract of the
// manually-managed email/verification records.
package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"mwhitfielddev/zonekeeper/internal/zone/domain"
)

const (
	snapshotFile = "zone-snapshot.json"
	zoneFile     = "zone.txt"
	manualFile   = "manual-records.json"
)

// Snapshot is the structured on-disk form of a zone export.
type Snapshot struct {
	ZoneID     string          `json:"zone_id"`
	ExportedAt time.Time       `json:"exported_at"`
	Records    []domain.Record `json:"records"`
}

// Result reports where an export landed and what it contained.
type Result struct {
	SnapshotPath string
	ZoneFilePath string
	ManualPath   string
	Records      int
	Manual       int
}

// Export re-fetches the full zone through the reader and writes all
// export artifacts under dir, creating it if needed.
func Export(ctx context.Context, reader domain.ZoneReader, zoneID, dir string) (*Result, error) {
	records, err := reader.ListRecords(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("exporter: failed to re-fetch zone %s: %w", zoneID, err)
	}
	return Write(records, zoneID, dir)
}

// Write serializes an already-fetched record set under dir.
func Write(records []domain.Record, zoneID, dir string) (*Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("exporter: failed to create %s: %w", dir, err)
	}

	// Stable order makes successive snapshots diffable.
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Type < sorted[j].Type
	})

	res := &Result{
		SnapshotPath: filepath.Join(dir, snapshotFile),
		ZoneFilePath: filepath.Join(dir, zoneFile),
		ManualPath:   filepath.Join(dir, manualFile),
		Records:      len(sorted),
	}

	snap := Snapshot{
		ZoneID:     zoneID,
		ExportedAt: time.Now().UTC(),
		Records:    sorted,
	}
	if err := writeJSON(res.SnapshotPath, snap); err != nil {
		return nil, err
	}

	if err := writeZoneFile(res.ZoneFilePath, sorted); err != nil {
		return nil, err
	}

	manual := manualRecords(sorted)
	res.Manual = len(manual)
	if err := writeJSON(res.ManualPath, manual); err != nil {
		return nil, err
	}

	return res, nil
}

// manualRecords extracts the email/verification subset (MX and TXT)
// that operators manage by hand.
func manualRecords(records []domain.Record) []domain.Record {
	out := make([]domain.Record, 0)
	for _, r := range records {
		if r.Type == domain.RecordTypeMX || r.Type == domain.RecordTypeTXT {
			out = append(out, r)
		}
	}
	return out
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("exporter: failed to marshal %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("exporter: failed to write %s: %w", path, err)
	}
	return nil
}

// writeZoneFile renders records in a zone-file-style layout: name,
// TTL, type, then either the alias target or the literal values.
func writeZoneFile(path string, records []domain.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("exporter: failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := tabwriter.NewWriter(f, 0, 0, 2, ' ', 0)
	for _, r := range records {
		value := r.AliasTarget
		if value != "" {
			value = "ALIAS " + value
		} else {
			value = strings.Join(r.Values, " ")
		}

		ttl := ""
		if r.TTL > 0 {
			ttl = fmt.Sprintf("%d", r.TTL)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, ttl, r.Type, value)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("exporter: failed to write %s: %w", path, err)
	}
	return nil
}
