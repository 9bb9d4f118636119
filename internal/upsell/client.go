package upsell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const systemPrompt = "You are a helpful restaurant upselling assistant. Always respond with valid JSON arrays."

// GatewayClient talks to an OpenAI-compatible chat completions
// endpoint (the AI gateway fronting the Gemini model).
type GatewayClient struct {
	apiKey string
	model  string
	apiURL string
	http   *http.Client
}

func NewGatewayClient() *GatewayClient {
	return &GatewayClient{
		apiKey: os.Getenv("AI_GATEWAY_API_KEY"),
		model:  os.Getenv("AI_GATEWAY_MODEL"),
		apiURL: os.Getenv("AI_GATEWAY_URL"),
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GatewayClient) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing AI_GATEWAY_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing AI_GATEWAY_MODEL")
	}
	if g.apiURL == "" {
		return "", errors.New("missing AI_GATEWAY_URL")
	}

	payload := map[string]any{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrQuotaExhausted
	default:
		return "", fmt.Errorf("ai gateway error (%d): %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("empty ai gateway response")
	}

	return result.Choices[0].Message.Content, nil
}
