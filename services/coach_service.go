package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const coachSystemPrompt = "You are an expert fitness and nutrition coach. Provide concise, helpful advice in 2-3 sentences. Be encouraging and professional."

// CoachService proxies the Hugging Face router's OpenAI-style
// chat-completions endpoint to answer fitness questions.
type CoachService struct {
	baseURL string
	token   string
	model   string
	client  *http.Client
}

func NewCoachService() *CoachService {
	return &CoachService{
		baseURL: "https://router.huggingface.co/v1",
		token:   os.Getenv("HUGGINGFACE_TOKEN"),
		model:   "deepseek-ai/DeepSeek-V3.2:novita",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Ask sends the user's question with the coach system prompt and returns
// the model's reply text.
func (s *CoachService) Ask(question string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: coachSystemPrompt},
			{Role: "user", Content: question},
		},
		Temperature: 0.7,
		MaxTokens:   150,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(body))
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode hf response error: %w", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty completion from hf")
	}
	return out.Choices[0].Message.Content, nil
}
