package domain

// PitchInfo is the key information extracted from an informal loan request.
type PitchInfo struct {
	LoanAmount   string `json:"loan_amount,omitempty"`
	Purpose      string `json:"purpose,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
}

// PitchResult pairs the original text with its professional rendering.
type PitchResult struct {
	OriginalText      string    `json:"original_text"`
	ProfessionalPitch string    `json:"professional_pitch"`
	ExtractedInfo     PitchInfo `json:"extracted_info"`
}
