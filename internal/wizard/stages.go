package wizard

import (
	"bytes"
	"fmt"
	"text/template"
)

// stage is one step of the wizard, bound to exactly one prompt template.
type stage struct {
	title string
	tmpl  *template.Template
}

// promptData is passed to every stage template.
type promptData struct {
	Topic string
}

func mustStage(name, title, text string) stage {
	return stage{
		title: title,
		tmpl:  template.Must(template.New(name).Parse(text)),
	}
}

// stageTables is the single place that decides which prompt runs at which stage.
// Readings get a closing practical-lesson stage that themes do not.
var stageTables = map[Kind][]stage{
	KindReading: {
		mustStage("reading-summary", "Summary",
			"Provide a concise summary of the weekly Torah portion {{.Topic}}. "+
				"Cover its main narrative and the key laws or events in a few short paragraphs."),
		mustStage("reading-themes", "Key themes and commentary",
			"For the weekly Torah portion {{.Topic}}, identify three central themes and explain "+
				"how classical commentators such as Rashi, Ramban and Ibn Ezra approached each one."),
		mustStage("reading-questions", "Discussion questions",
			"Write four open-ended discussion questions about the weekly Torah portion {{.Topic}} "+
				"for a pair of study partners, each followed by a one-sentence hint."),
		mustStage("reading-lesson", "Practical lesson",
			"Conclude the study of the weekly Torah portion {{.Topic}} with one practical lesson "+
				"the student can apply this week, explained in a short paragraph."),
	},
	KindTheme: {
		mustStage("theme-overview", "Overview",
			"Give an accessible overview of the Jewish study theme {{.Topic}}: what it means, "+
				"why it matters and where it appears in the tradition."),
		mustStage("theme-sources", "Primary sources",
			"List the primary textual sources (Tanakh, Mishnah, Talmud and later codes) that "+
				"discuss {{.Topic}}, paraphrasing each one briefly."),
		mustStage("theme-questions", "Discussion questions",
			"Write four open-ended discussion questions about {{.Topic}} for a pair of study "+
				"partners, each followed by a one-sentence hint."),
	},
}

// StageTitles returns the stage titles for kind, in order.
func StageTitles(kind Kind) []string {
	table := stageTables[kind]
	titles := make([]string, len(table))
	for i, s := range table {
		titles[i] = s.title
	}
	return titles
}

// StageCount returns how many stages kind has; 0 for an unknown kind.
func StageCount(kind Kind) int {
	return len(stageTables[kind])
}

// prompt renders the template for stage n (1-based) of kind.
func prompt(kind Kind, n int, topic string) (string, error) {
	table := stageTables[kind]
	if n < 1 || n > len(table) {
		return "", fmt.Errorf("stage %d out of range for %s", n, kind)
	}

	var buf bytes.Buffer
	if err := table[n-1].tmpl.Execute(&buf, promptData{Topic: topic}); err != nil {
		return "", fmt.Errorf("failed to execute stage template: %w", err)
	}
	return buf.String(), nil
}
