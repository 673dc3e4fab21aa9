package advice

import (
	"context"
	"fmt"
	"strings"

	"styleforage/config"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// systemInstruction pins the collaborator to the brand voice.
const systemInstruction = `You are a high-end personal fashion stylist for 'Style Forage'.
Your tone is encouraging, chic, sophisticated, yet accessible.
Keep answers concise (under 100 words) and actionable.
Focus on timeless style, color theory, and body positivity.`

// TextGenerator is the minimal surface of the generative collaborator.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	modelName := config.AppConfig.GeminiModel
	if modelName == "" {
		modelName = "models/gemini-1.5-flash"
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	return &GeminiClient{model: model}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
