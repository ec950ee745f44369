package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
)

// GeminiService implements the adapter.AdviceService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise summarizes the recent logs and asks the model for short, practical
// advice for the shopkeeper.
func (s *GeminiService) Advise(ctx context.Context, income []*entity.IncomeEntry, expenses []*entity.Expense, language string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	prompt := s.buildPrompt(income, expenses, language)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(income []*entity.IncomeEntry, expenses []*entity.Expense, language string) string {
	var sb strings.Builder

	sb.WriteString("You are a friendly business advisor for a small telecom and photocopy shop in Bangladesh. ")
	sb.WriteString("The shop earns from photocopying, printing, online applications, and mobile banking agent services.\n\n")

	if language == "bn" {
		sb.WriteString("Answer in Bengali (Bangla).\n\n")
	} else {
		sb.WriteString("Answer in English.\n\n")
	}

	sb.WriteString("Recent income entries:\n")
	for _, e := range income {
		sb.WriteString(fmt.Sprintf("- %s: %s on %s\n", e.Category, e.Amount.String(), e.Day.String()))
	}

	sb.WriteString("\nRecent expenses:\n")
	for _, e := range expenses {
		sb.WriteString(fmt.Sprintf("- %s: %s on %s\n", e.Name, e.Amount.String(), e.Day.String()))
	}

	sb.WriteString("\nIn 3 to 5 short sentences, point out the strongest income source, any worrying spending, and one practical suggestion to increase profit. Keep the tone encouraging and simple.")

	return sb.String()
}

// extractText flattens the first candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return strings.TrimSpace(sb.String())
}

// Ensure implementation satisfies the interface.
var _ adapter.AdviceService = (*GeminiService)(nil)
