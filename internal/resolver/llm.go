package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
)

const systemPrompt = `You are the admission coordinator of a hospital. ` +
	`Given a patient and candidate lists of sections, doctors and nurses, ` +
	`pick exactly one section, one doctor and one nurse for the patient. ` +
	`You must always pick from the provided candidates, never invent ids, ` +
	`and never return null or empty ids even under resource scarcity. ` +
	`Respond with a single JSON object and nothing else: ` +
	`{"sectionId": "...", "doctorId": "...", "nurseId": "...", "reasoning": "..."}`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// LLMResolver asks an OpenAI-compatible chat completions endpoint to make the
// assignment. The model is trusted with the decision; the transport and the
// response schema are not.
type LLMResolver struct {
	httpClient *resty.Client
	model      string
}

func NewLLMResolver(baseURL, apiKey, model string, timeout time.Duration) *LLMResolver {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &LLMResolver{
		httpClient: client,
		model:      model,
	}
}

func (r *LLMResolver) Resolve(ctx context.Context, req Request) (*domain.AssignmentResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not serialize assignment request: %w", err)
	}

	body := chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payload)},
		},
		Temperature: 0.2,
	}

	slog.Info("Calling assignment resolver",
		"model", r.model,
		"patient", req.Patient.Name,
		"sections", len(req.Sections),
		"doctors", len(req.Doctors),
		"nurses", len(req.Nurses))

	var response chatResponse
	resp, err := r.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&response).
		SetError(&response).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("resolver call failed: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if response.Error != nil {
			msg = response.Error.Message
		}
		return nil, fmt.Errorf("resolver returned %s", msg)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("resolver returned no choices")
	}

	assignment, err := parseAssignment(response.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	slog.Info("Resolver assignment received",
		"sectionID", assignment.SectionID,
		"doctorID", assignment.DoctorID,
		"nurseID", assignment.NurseID)

	return assignment, nil
}

// parseAssignment decodes the model's reply, tolerating a markdown code
// fence around the JSON object.
func parseAssignment(content string) (*domain.AssignmentResponse, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var assignment domain.AssignmentResponse
	if err := json.Unmarshal([]byte(content), &assignment); err != nil {
		return nil, fmt.Errorf("unparsable resolver reply: %w", err)
	}
	return &assignment, nil
}
