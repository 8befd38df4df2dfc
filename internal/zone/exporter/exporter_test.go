package exporter

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/google/go-cmp/cmp"
)

type stubReader struct {
	records []domain.Record
	err     error
}

func (s *stubReader) ListRecords(ctx context.Context, zoneID string) ([]domain.Record, error) {
	return s.records, s.err
}

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Name: "www.example.org.", Type: domain.RecordTypeA, AliasTarget: "d111.cloudfront.net."},
		{Name: "example.org.", Type: domain.RecordTypeNS, Values: []string{"ns-1.awsdns.org."}, TTL: 172800},
		{Name: "example.org.", Type: domain.RecordTypeMX, Values: []string{"10 mail.example.org."}, TTL: 300},
		{Name: "example.org.", Type: domain.RecordTypeTXT, Values: []string{`"v=spf1 -all"`}, TTL: 300},
	}
}

func TestExportWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	reader := &stubReader{records: sampleRecords()}

	res, err := Export(context.Background(), reader, "Z123", dir)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if res.Records != 4 {
		t.Errorf("Records = %d, want 4", res.Records)
	}
	if res.Manual != 2 {
		t.Errorf("Manual = %d, want 2", res.Manual)
	}

	for _, p := range []string{res.SnapshotPath, res.ZoneFilePath, res.ManualPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("artifact %s missing: %v", p, err)
		}
	}

	data, err := os.ReadFile(res.SnapshotPath)
	if err != nil {
		t.Fatal(err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if snap.ZoneID != "Z123" {
		t.Errorf("snapshot zone = %s, want Z123", snap.ZoneID)
	}
	if len(snap.Records) != 4 {
		t.Errorf("snapshot record count = %d, want 4", len(snap.Records))
	}
}

func TestWriteSortsRecords(t *testing.T) {
	dir := t.TempDir()

	res, err := Write(sampleRecords(), "Z123", dir)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(res.SnapshotPath)
	if err != nil {
		t.Fatal(err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, r := range snap.Records {
		got = append(got, r.Name+"/"+string(r.Type))
	}
	want := []string{
		"example.org./MX",
		"example.org./NS",
		"example.org./TXT",
		"www.example.org./A",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteManualSubset(t *testing.T) {
	dir := t.TempDir()

	res, err := Write(sampleRecords(), "Z123", dir)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(res.ManualPath)
	if err != nil {
		t.Fatal(err)
	}
	var manual []domain.Record
	if err := json.Unmarshal(data, &manual); err != nil {
		t.Fatal(err)
	}

	if len(manual) != 2 {
		t.Fatalf("manual record count = %d, want 2", len(manual))
	}
	for _, r := range manual {
		if r.Type != domain.RecordTypeMX && r.Type != domain.RecordTypeTXT {
			t.Errorf("unexpected type %s in manual extract", r.Type)
		}
	}
}

func TestWriteZoneFileRendersAliases(t *testing.T) {
	dir := t.TempDir()

	if _, err := Write(sampleRecords(), "Z123", dir); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "zone.txt"))
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.Contains(text, "ALIAS d111.cloudfront.net.") {
		t.Errorf("zone file missing alias rendering:\n%s", text)
	}
	if !strings.Contains(text, "172800") {
		t.Errorf("zone file missing TTL:\n%s", text)
	}
}

func TestExportReaderFailure(t *testing.T) {
	readErr := errors.New("zone unavailable")
	reader := &stubReader{err: readErr}

	_, err := Export(context.Background(), reader, "Z123", t.TempDir())
	if !errors.Is(err, readErr) {
		t.Errorf("Export error = %v, want wrapped %v", err, readErr)
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	if _, err := Write(sampleRecords(), "Z123", dir); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("export directory not created: %v", err)
	}
}
