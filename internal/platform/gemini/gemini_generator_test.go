package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/limud/internal/config"
	"github.com/phrazzld/limud/internal/generation"
	"github.com/phrazzld/limud/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels records calls and returns a canned response.
type fakeModels struct {
	calls   int
	model   string
	prompt  string
	temp    *float32
	resp    *genai.GenerateContentResponse
	respErr error
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if cfg != nil {
		f.temp = cfg.Temperature
	}
	return f.resp, f.respErr
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content, FinishReason: genai.FinishReasonStop}},
	}
}

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey: "test-api-key",
		ModelName:    "gemini-1.5-flash",
		Temperature:  0.7,
	}
}

func TestGenerateReturnsTextVerbatim(t *testing.T) {
	l, _ := logger.NewTestLogger()
	fake := &fakeModels{resp: textResponse("Shalom! ", "What shall we learn today?")}
	g := newGenerator(l, fake, testConfig())

	out, err := g.Generate(context.Background(), "Greet the student")

	require.NoError(t, err)
	assert.Equal(t, "Shalom! What shall we learn today?", out)
	assert.Equal(t, 1, fake.calls, "exactly one remote call per Generate")
	assert.Equal(t, "gemini-1.5-flash", fake.model)
	assert.Equal(t, "Greet the student", fake.prompt)
	require.NotNil(t, fake.temp)
	assert.InDelta(t, 0.7, *fake.temp, 0.0001)
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name     string
		fake     *fakeModels
		prompt   string
		sentinel error
		calls    int
	}{
		{
			name:     "transport error is not retried",
			fake:     &fakeModels{respErr: errors.New("connection reset")},
			prompt:   "p",
			sentinel: generation.ErrGenerationFailed,
			calls:    1,
		},
		{
			name:     "nil response",
			fake:     &fakeModels{},
			prompt:   "p",
			sentinel: generation.ErrInvalidResponse,
			calls:    1,
		},
		{
			name:     "no candidates",
			fake:     &fakeModels{resp: &genai.GenerateContentResponse{}},
			prompt:   "p",
			sentinel: generation.ErrInvalidResponse,
			calls:    1,
		},
		{
			name: "safety block",
			fake: &fakeModels{resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}},
			prompt:   "p",
			sentinel: generation.ErrContentBlocked,
			calls:    1,
		},
		{
			name:     "empty text",
			fake:     &fakeModels{resp: textResponse("")},
			prompt:   "p",
			sentinel: generation.ErrInvalidResponse,
			calls:    1,
		},
		{
			name:     "empty prompt never reaches the service",
			fake:     &fakeModels{resp: textResponse("x")},
			prompt:   "   ",
			sentinel: generation.ErrEmptyPrompt,
			calls:    0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, _ := logger.NewTestLogger()
			g := newGenerator(l, tc.fake, testConfig())

			out, err := g.Generate(context.Background(), tc.prompt)

			require.Error(t, err)
			assert.Empty(t, out)
			assert.ErrorIs(t, err, tc.sentinel)
			var genErr *generation.Error
			assert.ErrorAs(t, err, &genErr)
			assert.Equal(t, tc.calls, tc.fake.calls)
		})
	}
}

func TestGenerateWithoutClient(t *testing.T) {
	var g *Generator
	_, err := g.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrClientUnavailable)

	_, err = (&Generator{}).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrClientUnavailable)
}

func TestNewGeneratorValidation(t *testing.T) {
	l, _ := logger.NewTestLogger()

	tests := []struct {
		name   string
		mutate func(*config.LLMConfig)
	}{
		{"empty key", func(c *config.LLMConfig) { c.GeminiAPIKey = "" }},
		{"blank key", func(c *config.LLMConfig) { c.GeminiAPIKey = "  " }},
		{"empty model", func(c *config.LLMConfig) { c.ModelName = "" }},
		{"bad temperature", func(c *config.LLMConfig) { c.Temperature = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)

			g, err := NewGenerator(context.Background(), l, cfg)

			assert.Nil(t, g)
			assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		})
	}

	_, err := NewGenerator(context.Background(), nil, testConfig())
	assert.Error(t, err)
}

func TestNewGeneratorBindsModel(t *testing.T) {
	l, _ := logger.NewTestLogger()

	g, err := NewGenerator(context.Background(), l, testConfig())

	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", g.Model())
}
