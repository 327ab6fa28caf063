package genai

//go:generate go run go.uber.org/mock/mockgen -source=./genai.go -destination=./mocks/genai_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"tripdesk/config"

	gen "github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type clientImpl struct {
	model *gen.GenerativeModel
}

func New(cfg *config.Config) Client {
	ctx := context.Background()

	client, err := gen.NewClient(ctx, option.WithAPIKey(cfg.External.Gemini.APIKey))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}

	log.Info().Str("model", cfg.External.Gemini.Model).Msg("Gemini client initialized")

	return &clientImpl{model: client.GenerativeModel(cfg.External.Gemini.Model)}
}

func (c *clientImpl) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, gen.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder

	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(gen.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return sb.String(), nil
}
