package entities

import "strings"

// Canonical skip reasons offered by the client, plus an escape hatch that
// carries free text.
const (
	SkipRecentRainfall   = "Recent rainfall"
	SkipWateredManually  = "Already watered manually"
	SkipEquipmentDown    = "Equipment unavailable"
	SkipMoistureAdequate = "Soil moisture adequate"
	SkipOtherReason      = "Other reason"
)

var canonicalSkipReasons = map[string]bool{
	SkipRecentRainfall:   true,
	SkipWateredManually:  true,
	SkipEquipmentDown:    true,
	SkipMoistureAdequate: true,
}

type SkipReasonKind string

const (
	SkipKindCanonical SkipReasonKind = "canonical"
	SkipKindCustom    SkipReasonKind = "custom"
)

// SkipReason is a tagged variant: one of the canonical reasons, or free text
// entered behind "Other reason".
type SkipReason struct {
	Kind  SkipReasonKind `json:"kind"`
	Value string         `json:"value,omitempty"`
	Text  string         `json:"text,omitempty"`
}

// ParseSkipReason validates a reason choice plus optional free text.
// An empty reason and "Other reason" without text are both rejected.
func ParseSkipReason(value, text string) (SkipReason, error) {
	value = strings.TrimSpace(value)
	text = strings.TrimSpace(text)
	switch {
	case value == "":
		return SkipReason{}, &ValidationError{Msg: "skip reason is required"}
	case value == SkipOtherReason:
		if text == "" {
			return SkipReason{}, &ValidationError{Msg: `skip reason "Other reason" requires text`}
		}
		return SkipReason{Kind: SkipKindCustom, Text: text}, nil
	case canonicalSkipReasons[value]:
		return SkipReason{Kind: SkipKindCanonical, Value: value}, nil
	default:
		return SkipReason{}, &ValidationError{Msg: "unknown skip reason: " + value}
	}
}

func (r SkipReason) Validate() error {
	switch r.Kind {
	case SkipKindCanonical:
		if !canonicalSkipReasons[r.Value] {
			return &ValidationError{Msg: "unknown skip reason: " + r.Value}
		}
	case SkipKindCustom:
		if strings.TrimSpace(r.Text) == "" {
			return &ValidationError{Msg: "custom skip reason requires text"}
		}
	default:
		return &ValidationError{Msg: "skip reason is required"}
	}
	return nil
}

// Note returns the string recorded into execution details.
func (r SkipReason) Note() string {
	if r.Kind == SkipKindCustom {
		return r.Text
	}
	return r.Value
}
