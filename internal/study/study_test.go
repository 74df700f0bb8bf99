package study

import (
	"testing"
	"time"

	"github.com/treykane/cli-studies/internal/errors"
)

func TestLoadBuiltInCatalogue(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalogue: %v", err)
	}
	if c.Len() != 6 {
		t.Fatalf("expected 6 studies, got %d", c.Len())
	}

	records := c.Records()
	wantIDs := []string{"1", "2", "3", "4", "5", "6"}
	for i, id := range wantIDs {
		if records[i].ID != id {
			t.Fatalf("record %d: expected id %q, got %q", i, id, records[i].ID)
		}
	}

	ct, ok := c.Lookup("3")
	if !ok {
		t.Fatal("expected study 3 to exist")
	}
	if ct.Modality != ModalityCT {
		t.Fatalf("expected CT, got %q", ct.Modality)
	}
	if want := time.Date(2023, 4, 3, 0, 0, 0, 0, time.UTC); !ct.StudyDate.Equal(want) {
		t.Fatalf("expected study date %v, got %v", want, ct.StudyDate)
	}
	if ct.DateString() != "2023-04-03" {
		t.Fatalf("unexpected date string %q", ct.DateString())
	}

	sr, _ := c.Lookup("1")
	if sr.Description != `CT\MR\CR\US\D...` {
		t.Fatalf("expected literal backslashes in description, got %q", sr.Description)
	}

	if got := len(c.Series("3")); got != 6 {
		t.Fatalf("expected 6 series, got %d", got)
	}
	if c.Series("missing") != nil {
		t.Fatal("expected no series for unknown study")
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalogue: %v", err)
	}
	records := c.Records()
	records[0].PatientName = "changed"

	again, _ := c.Lookup(records[0].ID)
	if again.PatientName == "changed" {
		t.Fatal("mutating Records() result must not affect the collection")
	}
}

func TestNewCollectionRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCollection([]Record{{ID: "a"}, {ID: "b"}, {ID: "a"}}, nil)
	if !errors.Is(err, errors.ErrCodeDuplicateStudy) {
		t.Fatalf("expected DUPLICATE_STUDY, got %v", err)
	}
}

func TestNewCollectionRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		code   errors.Code
	}{
		{name: "missing id", record: Record{}, code: errors.ErrCodeInvalidCatalogue},
		{name: "negative instances", record: Record{ID: "x", InstanceCount: -1}, code: errors.ErrCodeInvalidCatalogue},
		{name: "unknown modality", record: Record{ID: "x", Modality: "XR"}, code: errors.ErrCodeUnknownModality},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollection([]Record{tt.record}, nil)
			if !errors.Is(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestParseRejectsBadFixtures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{name: "bad yaml", doc: "studies: [", code: errors.ErrCodeInvalidCatalogue},
		{
			name: "bad date",
			doc:  "studies:\n  - {id: \"1\", study_date: \"2023-02-30\", modality: CT}\n",
			code: errors.ErrCodeInvalidCatalogue,
		},
		{
			name: "bad modality",
			doc:  "studies:\n  - {id: \"1\", study_date: \"2023-02-01\", modality: ct}\n",
			code: errors.ErrCodeUnknownModality,
		},
		{
			name: "bad series modality",
			doc:  "series:\n  - {number: 1, modality: ZZ}\n",
			code: errors.ErrCodeUnknownModality,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); !errors.Is(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestParseModality(t *testing.T) {
	tests := []struct {
		input   string
		want    Modality
		wantErr bool
	}{
		{input: "", want: ""},
		{input: "CT", want: ModalityCT},
		{input: " SPECT ", want: ModalitySPECT},
		{input: "ct", wantErr: true},
		{input: "AN_SR", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseModality(tt.input)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeUnknownModality) {
				t.Fatalf("ParseModality(%q): expected UNKNOWN_MODALITY, got %v", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseModality(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestModalitiesReturnsCopy(t *testing.T) {
	list := Modalities()
	list[0] = "ZZ"
	if Modalities()[0] != ModalityCT {
		t.Fatal("Modalities() must return a copy")
	}
}
