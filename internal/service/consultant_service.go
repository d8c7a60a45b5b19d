package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// consultantSystemInstruction keeps the widget on-brand and on-topic.
const consultantSystemInstruction = `You are the Lead Strategy Consultant for Web Prime AI (WebPrimeAI.in).

Our Services:
1. Website Design & Development: Custom UI/UX, mobile-first, performance-driven. Best for brands wanting more leads/sales.
2. UGC Ads (User-Generated Content): Authentic creator-style video ads for Reels/Shorts/TikTok. Best for brands running paid social.
3. AI QR Screen Solutions: Smart engagement systems that turn offline scans into online action. Best for retail, events, and outdoor ads.

Brand Messaging: "Build Smarter. Engage Better. Convert Faster."
Approach: No buzzwords, just results. Design meets intelligence.

Contact Info:
- Email: hello@webprimai.in
- Phone / WhatsApp: +91 95992 03951
- Locations: Specializing in high-impact solutions for modern businesses.

Your Goal: Be a helpful, conversion-focused strategist. Help users understand how our services solve their business problems (e.g., low conversion, high ad fatigue, offline engagement gaps). Encourage them to book a free consultation or demo.`

// FallbackReply is what the widget shows when the model call fails for
// any reason. The chat must never be left hanging on an error.
const FallbackReply = "I encountered an error while processing your request. Let's try again in a moment."

// ErrConsultantKeyMissing means no API key is configured.
var ErrConsultantKeyMissing = errors.New("consultant api key is not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type generateContentRequest struct {
	Contents          []geminiContent  `json:"contents"`
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ConsultantService proxies chat widget prompts to the hosted text
// generation endpoint. It is the only component that performs network
// I/O; everything else in the application is synchronous and local.
type ConsultantService struct {
	apiKey  string
	model   string
	baseURL string
	http    httpDoer
}

// NewConsultantService constructs a client. An empty apiKey is allowed;
// calls will then fail with ErrConsultantKeyMissing and the handler
// substitutes the fallback reply.
func NewConsultantService(apiKey string) *ConsultantService {
	return &ConsultantService{
		apiKey:  strings.TrimSpace(apiKey),
		model:   "gemini-3-flash-preview",
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

// SetHTTPClient swaps the transport, mainly for tests.
func (c *ConsultantService) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.http = &http.Client{Timeout: 20 * time.Second}
		return
	}
	c.http = client
}

// SetBaseURL overrides the API endpoint, mainly for tests.
func (c *ConsultantService) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// GenerateReply sends one prompt with the fixed system instruction and
// returns the model's text.
func (c *ConsultantService) GenerateReply(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrConsultantKeyMissing
	}

	payload := generateContentRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: consultantSystemInstruction}}},
		GenerationConfig:  generationConfig{Temperature: 0.7},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := strings.TrimSpace(parsed.Error.Message)
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("generation endpoint error: %s", msg)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generation endpoint returned no candidates")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("generation endpoint returned empty text")
	}
	return text, nil
}
