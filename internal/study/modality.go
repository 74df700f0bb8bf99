package study

import (
	"strings"

	"github.com/treykane/cli-studies/internal/errors"
)

// Modality is the closed set of imaging device codes a study can carry.
type Modality string

const (
	ModalityCT    Modality = "CT"
	ModalityMR    Modality = "MR"
	ModalityUS    Modality = "US"
	ModalityCR    Modality = "CR"
	ModalityDR    Modality = "DR"
	ModalityNM    Modality = "NM"
	ModalityPT    Modality = "PT"
	ModalitySPECT Modality = "SPECT"
	ModalityXA    Modality = "XA"
	ModalityRF    Modality = "RF"
	ModalityDX    Modality = "DX"
	ModalitySR    Modality = "SR"
)

var modalities = []Modality{
	ModalityCT,
	ModalityMR,
	ModalityUS,
	ModalityCR,
	ModalityDR,
	ModalityNM,
	ModalityPT,
	ModalitySPECT,
	ModalityXA,
	ModalityRF,
	ModalityDX,
	ModalitySR,
}

// Modalities returns the closed modality set in menu order.
func Modalities() []Modality {
	return append([]Modality(nil), modalities...)
}

// ParseModality validates a modality code. Codes are upper-case and matched
// exactly after trimming; the empty string parses to the empty Modality.
func ParseModality(value string) (Modality, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	for _, m := range modalities {
		if string(m) == value {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnknownModality, "unknown modality %q", value)
}

// Valid reports whether m is one of the known codes.
func (m Modality) Valid() bool {
	for _, known := range modalities {
		if m == known {
			return true
		}
	}
	return false
}

func (m Modality) String() string {
	return string(m)
}
