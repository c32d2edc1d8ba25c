package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"negotiation-agent/domain"
)

// PitchService turns informal loan requests into professional investor
// pitches. It is stateless and independent of the negotiation loop.
type PitchService struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewPitchService(model string, maxTokens int) *PitchService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	return &PitchService{
		apiKey:    apiKey,
		apiURL:    "https://api.openai.com/v1/chat/completions",
		model:     model,
		maxTokens: maxTokens,
		enabled:   enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GeneratePitch converts an informal loan request into a professional pitch,
// extracting amount, purpose and business type when mentioned.
func (s *PitchService) GeneratePitch(userText string) (domain.PitchResult, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return domain.PitchResult{}, errors.New("input text cannot be empty")
	}

	if !s.enabled {
		return s.generateFallbackPitch(userText), nil
	}

	prompt := fmt.Sprintf(`You are a financial advisor converting informal loan requests into professional pitches.
Take the informal text and convert it into a professional pitch.
Extract key information like loan amount, purpose, and business type.
Respond with ONLY the JSON object, no markdown, no code blocks, no additional text.

Input: %q

Respond with this exact JSON structure:
{
    "professional_pitch": "The professional version here",
    "extracted_info": {
        "loan_amount": "amount if mentioned",
        "purpose": "purpose if mentioned",
        "business_type": "type of business if mentioned"
    }
}`, userText)

	raw, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling AI service for pitch generation: %v", err)
		return s.generateFallbackPitch(userText), nil
	}

	parsed, err := parsePitchJSON(raw)
	if err != nil {
		log.Printf("Error parsing pitch response: %v", err)
		return s.generateFallbackPitch(userText), nil
	}

	return domain.PitchResult{
		OriginalText:      userText,
		ProfessionalPitch: parsed.ProfessionalPitch,
		ExtractedInfo:     parsed.ExtractedInfo,
	}, nil
}

func (s *PitchService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "You are a financial advisor who rewrites informal loan requests as concise, professional investor pitches. You always answer with a single JSON object and nothing else.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: s.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}

type pitchPayload struct {
	ProfessionalPitch string           `json:"professional_pitch"`
	ExtractedInfo     domain.PitchInfo `json:"extracted_info"`
}

// parsePitchJSON tolerates markdown fences and surrounding prose around the
// JSON object the model was asked for.
func parsePitchJSON(raw string) (pitchPayload, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return pitchPayload{}, errors.New("response contains no JSON object")
	}

	var payload pitchPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return pitchPayload{}, err
	}
	if payload.ProfessionalPitch == "" {
		return pitchPayload{}, errors.New("response missing professional_pitch")
	}
	return payload, nil
}

var amountPattern = regexp.MustCompile(`(?i)(\$\s*\d[\d,]*(?:\.\d+)?[km]?|\d[\d,]*(?:\.\d+)?\s*(?:dollars|bucks|usd|k)\b)`)

// generateFallbackPitch produces a deterministic pitch when the AI backend is
// unavailable.
func (s *PitchService) generateFallbackPitch(userText string) domain.PitchResult {
	info := domain.PitchInfo{}
	if m := amountPattern.FindString(userText); m != "" {
		info.LoanAmount = strings.TrimSpace(m)
	}

	pitch := fmt.Sprintf(
		"We are seeking financing for the following opportunity: %s. We would welcome a discussion of terms with interested investors.",
		strings.TrimRight(userText, ".!? "))

	return domain.PitchResult{
		OriginalText:      userText,
		ProfessionalPitch: pitch,
		ExtractedInfo:     info,
	}
}
