package backup

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
)

func sampleData() model.BackupData {
	return model.BackupData{
		Sessions: []model.StudySession{
			{
				ID:       "2025-03-01T10:00:00.000Z-a1b2c3d4",
				Date:     "2025-03-01T10:00:00.000Z",
				Duration: 45,
				Notes:    "ripasso di analisi",
				PerformanceMetrics: model.PerformanceMetrics{
					Stress: 2, Tiredness: 3, Happiness: 4, Productivity: 5,
				},
			},
			{
				ID:       "2025-03-02T09:30:00.000Z-e5f6a7b8",
				Date:     "2025-03-02T09:30:00.000Z",
				Duration: 52.5,
				PerformanceMetrics: model.PerformanceMetrics{
					Stress: 4, Tiredness: 4, Happiness: 2, Productivity: 3,
				},
			},
		},
		Profiles: []model.TimerProfile{
			model.DefaultProfile(),
			{ID: "sprint", Name: "Sprint", StudyTime: 25 * 60, BreakTime: 5 * 60},
		},
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC)
	if got := Filename(now); got != "focus-flow-backup-2025-03-07.json" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestRoundTripPreservesCollections(t *testing.T) {
	data := sampleData()
	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	parsed, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("parse backup: %v", err)
	}
	if !reflect.DeepEqual(parsed, data) {
		t.Fatalf("round trip diverged:\nwant %+v\ngot  %+v", data, parsed)
	}

	var second bytes.Buffer
	if err := Write(&second, parsed); err != nil {
		t.Fatalf("rewrite backup: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), second.Bytes()) {
		t.Fatalf("re-export is not byte-identical")
	}
}

func TestWriteUsesTwoSpaceIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleData()); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"sessions\"") {
		t.Fatalf("expected 2-space indentation, got:\n%s", buf.String())
	}
}

func TestParseRejectsMissingProfiles(t *testing.T) {
	_, err := Parse([]byte(`{"sessions": []}`))
	if err == nil {
		t.Fatalf("expected error for missing profiles array")
	}
	if !strings.Contains(err.Error(), "profiles") {
		t.Fatalf("error must name the missing field: %v", err)
	}
}

func TestParseRejectsNonArrayField(t *testing.T) {
	_, err := Parse([]byte(`{"sessions": {}, "profiles": []}`))
	if err == nil {
		t.Fatalf("expected error for non-array sessions field")
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"sessions": [`)); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestParseAcceptsEmptyArrays(t *testing.T) {
	data, err := Parse([]byte(`{"sessions": [], "profiles": []}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(data.Sessions) != 0 || len(data.Profiles) != 0 {
		t.Fatalf("expected empty collections, got %+v", data)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)
	path, err := WriteFile(dir, sampleData(), now)
	if err != nil {
		t.Fatalf("write file: %v", err)
	}
	if !strings.HasSuffix(path, "focus-flow-backup-2025-03-07.json") {
		t.Fatalf("unexpected path: %s", path)
	}
	parsed, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if len(parsed.Sessions) != 2 || len(parsed.Profiles) != 2 {
		t.Fatalf("unexpected parsed sizes: %+v", parsed)
	}
}
