// README: ChatCompletion-family adapter (OpenAI-compatible HTTP endpoint).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// chatEndpoint is a variable so tests and OpenAI-compatible backends can
// point the adapter elsewhere.
var chatEndpoint = "https://api.openai.com/v1/chat/completions"

// httpClient carries no Timeout of its own; the per-attempt context passed
// via NewRequestWithContext is the single cancellation authority.
var httpClient = &http.Client{}

// chatSystemPrompt pins the output contract. This is a normalization aid,
// not a guarantee; Extract still has to repair what comes back.
const chatSystemPrompt = "You are a travel planning assistant. Respond with valid JSON only. No markdown, no explanation, no text outside the JSON."

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// callChatCompletion posts a system+user message pair to the chat endpoint
// and returns the first choice's content.
func callChatCompletion(ctx context.Context, apiKey, modelID, prompt string) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model: modelID,
		Messages: []chatMessage{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   8192,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", errors.New("request timed out")
		}
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.New(chatErrMsg(resp.StatusCode, body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", errors.New("empty choices in response")
	}
	return cr.Choices[0].Message.Content, nil
}

// chatErrMsg extracts error.message from a non-2xx body, falling back to
// "HTTP <status>".
func chatErrMsg(status int, body []byte) string {
	var eb chatErrorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
		return eb.Error.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}
