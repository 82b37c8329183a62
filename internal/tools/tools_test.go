package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/limud/internal/platform/logger"
	"github.com/phrazzld/limud/internal/testutils"
	"github.com/phrazzld/limud/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu(t *testing.T) {
	menu := tools.Menu()

	ids := make([]tools.ID, len(menu))
	for i, e := range menu {
		ids[i] = e.ID
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Description)
	}
	assert.Equal(t, []tools.ID{
		tools.IDExplain, tools.IDSummarize, tools.IDQuiz, tools.IDCompare,
		tools.IDGuidedStudy, tools.IDChavruta, tools.IDDocumentQA,
	}, ids)
	assert.False(t, menu[0].Interactive)
	assert.True(t, menu[len(menu)-1].Interactive)
}

func TestPromptShape(t *testing.T) {
	p, err := tools.Prompt(tools.IDQuiz, tools.Request{Topic: " Shabbat ", Count: 3})
	require.NoError(t, err)

	lines := strings.Split(p, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "You are a patient and knowledgeable teacher"))
	assert.True(t, strings.HasPrefix(lines[1], "Current focus: review quiz."))
	assert.Equal(t, "Write 3 quiz questions about Shabbat.", lines[len(lines)-1])

	p, err = tools.Prompt(tools.IDQuiz, tools.Request{Topic: "Shabbat", Count: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, "Write 1 quiz question about Shabbat."))
}

func TestPromptValidation(t *testing.T) {
	tests := []struct {
		name    string
		id      tools.ID
		req     tools.Request
		message string
	}{
		{"explain without topic", tools.IDExplain, tools.Request{Topic: "  "}, "Please enter a topic."},
		{"summarize without passage", tools.IDSummarize, tools.Request{}, "Please paste a passage to summarize."},
		{"quiz count zero", tools.IDQuiz, tools.Request{Topic: "Pesach"}, "Please choose between 1 and 10 questions."},
		{"quiz count too high", tools.IDQuiz, tools.Request{Topic: "Pesach", Count: 11}, "Please choose between 1 and 10 questions."},
		{"compare missing item", tools.IDCompare, tools.Request{First: "Hillel"}, "Please enter two items to compare."},
		{"compare identical items", tools.IDCompare, tools.Request{First: "Hillel", Second: " hillel "}, "Please enter two different items to compare."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tools.Prompt(tc.id, tc.req)

			require.ErrorIs(t, err, tools.ErrInvalidInput)
			var inputErr *tools.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tc.message, inputErr.Message)
		})
	}
}

func TestPromptUnknownAndInteractive(t *testing.T) {
	_, err := tools.Prompt("sing", tools.Request{Topic: "x"})
	assert.ErrorIs(t, err, tools.ErrUnknownTool)

	_, err = tools.Prompt(tools.IDChavruta, tools.Request{Topic: "x"})
	assert.ErrorIs(t, err, tools.ErrNotSingleShot)
}

func TestRunnerRun(t *testing.T) {
	l, _ := logger.NewTestLogger()
	gen := testutils.NewScriptedGenerator().
		Reply("Hillel was lenient, Shammai strict.").
		Fail(errors.New("quota exhausted"))
	r, err := tools.NewRunner(gen, l)
	require.NoError(t, err)
	ctx := context.Background()
	req := tools.Request{First: "Hillel", Second: "Shammai"}

	res, err := r.Run(ctx, tools.IDCompare, req)
	require.NoError(t, err)
	assert.Equal(t, tools.Result{Tool: tools.IDCompare, Text: "Hillel was lenient, Shammai strict."}, res)
	assert.Contains(t, gen.LastPrompt(), "Compare Hillel and Shammai.")

	res, err = r.Run(ctx, tools.IDCompare, req)
	require.NoError(t, err)
	assert.True(t, res.Failed)
	assert.Equal(t, "Error generating content: quota exhausted", res.Text)

	_, err = r.Run(ctx, tools.IDCompare, tools.Request{First: "Hillel", Second: "Hillel"})
	assert.ErrorIs(t, err, tools.ErrInvalidInput)
	assert.Equal(t, 2, gen.Calls(), "invalid input must not reach the gateway")
}

func TestNewRunnerRequiresGenerator(t *testing.T) {
	_, err := tools.NewRunner(nil, nil)
	assert.Error(t, err)
}
