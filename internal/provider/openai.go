package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const openAIModel = "gpt-4"

// ChatCompletionClient talks to the OpenAI chat-completions endpoint. The
// prompt instruction becomes the system message, the input the user message.
type ChatCompletionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewChatCompletionClient(baseURL, apiKey string) *ChatCompletionClient {
	return &ChatCompletionClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   openAIModel,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *ChatCompletionClient) Model() string {
	return c.model
}

func (c *ChatCompletionClient) Generate(ctx context.Context, prompt Prompt) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if prompt.Instruction != "" {
		messages = append(messages, chatMessage{Role: "system", Content: prompt.Instruction})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt.Input})

	jsonData, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", classifyTransportError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d, body: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}

	content := result.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty message content", ErrMalformedResponse)
	}

	return content, nil
}
