// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
)

var rewritePromptTmpl = template.Must(template.New("rewrite").Parse(`You are an editor improving web copy for readability and search.

An automated content check flagged the passages below with this feedback:
{{.Feedback}}
{{if .Keyword}}
The focus keyphrase of the page is "{{.Keyword}}". Keep it where it already appears, and do not add it more often.
{{end}}
Rewrite each passage so it no longer triggers the feedback. Keep the meaning, keep the tone, and write in {{if .Language}}{{.Language}}{{else}}the language of the passage{{end}}. Return plain text without markup.

Respond with a JSON object containing a "rewrites" array of strings, one per passage, in the same order. Do not include any text outside the JSON object.

Example response:
{"rewrites": ["First rewritten passage.", "Second rewritten passage."]}

Passages:
{{range $i, $f := .Fragments}}{{$i}}. {{$f}}
{{end}}`))

// claudeAPIURL is the Claude API endpoint. Package-level var for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

const defaultModel = "claude-sonnet-4-5"

// ClaudeBackend calls the Claude Messages API.
type ClaudeBackend struct {
	APIKey string
	Model  string
	Client *http.Client
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Rewrite sends one batch of fragments and parses the JSON reply.
func (c *ClaudeBackend) Rewrite(ctx context.Context, r Request) (Response, error) {
	prompt, err := renderPrompt(r)
	if err != nil {
		return Response{}, fmt.Errorf("rendering prompt: %w", err)
	}

	model := c.Model
	if model == "" {
		model = defaultModel
	}
	bodyBytes, err := json.Marshal(claudeRequest{
		Model:     model,
		MaxTokens: 2048,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Response{}, fmt.Errorf("Claude API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return Response{}, fmt.Errorf("decoding Claude response: %w", err)
	}
	for _, block := range cResp.Content {
		if block.Type != "text" {
			continue
		}
		var out Response
		if err := json.Unmarshal([]byte(stripFences(block.Text)), &out); err != nil {
			return Response{}, fmt.Errorf("parsing AI response JSON: %w", err)
		}
		return out, nil
	}
	return Response{}, errors.New("no text content in Claude API response")
}

func renderPrompt(r Request) (string, error) {
	var buf bytes.Buffer
	if err := rewritePromptTmpl.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// stripFences removes a Markdown code fence around a JSON reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
