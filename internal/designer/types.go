package designer

import (
	"encoding/json"

	"github.com/jamesliupenn/vehicle-simulator/internal/config"
)

// generateRequest is the designer service wire format for one
// generation call.
type generateRequest struct {
	Model               string                     `json:"model"`
	Provider            string                     `json:"provider"`
	InferenceParameters config.InferenceParameters `json:"inference_parameters"`
	Category            string                     `json:"category"`
	Subcategory         string                     `json:"subcategory"`
	NumSamples          int                        `json:"num_samples"`
}

// generatedValue decodes one element of the response array. The
// service returns either bare strings or structured records carrying a
// "value" field; both shapes are accepted.
type generatedValue struct {
	Value string
}

func (v *generatedValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Value = s
		return nil
	}

	var record struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	v.Value = record.Value
	return nil
}
