package study

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/treykane/cli-studies/internal/errors"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

type catalogueFile struct {
	Studies []catalogueStudy  `yaml:"studies"`
	Series  []catalogueSeries `yaml:"series"`
}

type catalogueStudy struct {
	ID              string `yaml:"id"`
	PatientName     string `yaml:"patient_name"`
	MRN             string `yaml:"mrn"`
	StudyDate       string `yaml:"study_date"`
	Description     string `yaml:"description"`
	Modality        string `yaml:"modality"`
	AccessionNumber string `yaml:"accession_number"`
	Instances       int    `yaml:"instances"`
}

type catalogueSeries struct {
	Number      int    `yaml:"number"`
	Description string `yaml:"description"`
	Modality    string `yaml:"modality"`
	Instances   int    `yaml:"instances"`
}

// Load returns the built-in mock catalogue.
func Load() (*Collection, error) {
	return Parse(catalogueYAML)
}

// Parse decodes and validates a catalogue document.
func Parse(data []byte) (*Collection, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalogue, err, "decode catalogue")
	}

	records := make([]Record, 0, len(file.Studies))
	for i, s := range file.Studies {
		rec, err := s.record()
		if err != nil {
			return nil, fmt.Errorf("study %d: %w", i+1, err)
		}
		records = append(records, rec)
	}

	series := make([]Series, 0, len(file.Series))
	for i, s := range file.Series {
		modality, err := ParseModality(s.Modality)
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i+1, err)
		}
		series = append(series, Series{
			Number:        s.Number,
			Description:   s.Description,
			Modality:      modality,
			InstanceCount: s.Instances,
		})
	}

	return NewCollection(records, series)
}

func (s catalogueStudy) record() (Record, error) {
	date, err := ParseDate(s.StudyDate)
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeInvalidCatalogue, err, "study_date %q", s.StudyDate)
	}
	modality, err := ParseModality(s.Modality)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:              s.ID,
		PatientName:     s.PatientName,
		MRN:             s.MRN,
		StudyDate:       date,
		Description:     s.Description,
		Modality:        modality,
		AccessionNumber: s.AccessionNumber,
		InstanceCount:   s.Instances,
	}, nil
}

// NewCollection builds a collection from records in display order. IDs must
// be unique and non-empty, and instance counts non-negative.
func NewCollection(records []Record, series []Series) (*Collection, error) {
	c := &Collection{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
		series:  append([]Series(nil), series...),
	}
	for _, r := range records {
		if r.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidCatalogue, "study without id")
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateStudy, "duplicate study id %q", r.ID)
		}
		if r.InstanceCount < 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalogue, "study %q has negative instance count", r.ID)
		}
		if r.Modality != "" && !r.Modality.Valid() {
			return nil, errors.New(errors.ErrCodeUnknownModality, "study %q has unknown modality %q", r.ID, r.Modality)
		}
		c.index[r.ID] = len(c.records)
		c.records = append(c.records, r)
	}
	return c, nil
}
