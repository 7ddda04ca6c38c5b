// Package openai generates structured job-description content through
// the OpenAI chat-completions API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openaiSDK "github.com/sashabaranov/go-openai"

	"github.com/sheepai/hrms-backend-go/internal/config"
	"github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
)

const systemPromptTemplate = `You are an expert HR consultant drafting legally structured Job Descriptions for Indian companies.

Company Name: %s
LLPIN: %s

Return STRICT JSON only in the following structure:

{
    "job_summary": "",
    "key_responsibilities": ["", "", ""],
    "required_skills": ["", "", ""],
    "preferred_skills": ["", "", ""],
    "qualifications": "",
    "compensation_note": "",
    "compliance_note": ""
}

Guidelines:
- Professional tone
- Suitable for a growing startup
- Indian compliance context
- No markdown
- No explanations outside JSON`

type generatorImpl struct {
	client *openaiSDK.Client
	model  string
	apiKey string

	companyName string
	llpin       string
}

// NewGenerator creates the OpenAI-backed content generator. A missing API
// key fails the first Generate call, not construction.
func NewGenerator(cfg config.OpenAIConfig, company config.CompanyConfig) jobdesc.Generator {
	return &generatorImpl{
		client:      openaiSDK.NewClient(cfg.APIKey),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		companyName: company.Name,
		llpin:       company.LLPIN,
	}
}

func (g *generatorImpl) Generate(ctx context.Context, req jobdesc.GenerateJDRequest) (jobdesc.Content, error) {
	if g.apiKey == "" {
		return jobdesc.Content{}, jobdesc.ErrGeneratorNotConfigured
	}

	resp, err := g.client.CreateChatCompletion(ctx, openaiSDK.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.7,
		ResponseFormat: &openaiSDK.ChatCompletionResponseFormat{
			Type: openaiSDK.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openaiSDK.ChatCompletionMessage{
			{
				Role:    openaiSDK.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPromptTemplate, g.companyName, g.llpin),
			},
			{
				Role:    openaiSDK.ChatMessageRoleUser,
				Content: userPrompt(req),
			},
		},
	})
	if err != nil {
		return jobdesc.Content{}, fmt.Errorf("content generation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return jobdesc.Content{}, fmt.Errorf("%w: empty completion", jobdesc.ErrInvalidContent)
	}

	raw := stripFences(resp.Choices[0].Message.Content)

	var content jobdesc.Content
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		slog.Error("Content generator returned non-JSON output", "role", req.Role, "error", err)
		return jobdesc.Content{}, fmt.Errorf("%w: %v", jobdesc.ErrInvalidContent, err)
	}
	return content, nil
}

func userPrompt(req jobdesc.GenerateJDRequest) string {
	return fmt.Sprintf(`Role: %s
Department: %s
Location: %s
Experience Required: %s
Employment Type: %s
Reports To: %s
Company Overview: %s`,
		req.Role, req.Department, req.Location, req.Experience,
		req.EmploymentType, req.ReportsTo, req.CompanyOverview)
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// in one despite the instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
