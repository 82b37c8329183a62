package tools

import (
	"text/template"
)

// ID identifies a menu entry.
type ID string

const (
	IDExplain     ID = "explain"
	IDSummarize   ID = "summarize"
	IDQuiz        ID = "quiz"
	IDCompare     ID = "compare"
	IDGuidedStudy ID = "guided-study"
	IDChavruta    ID = "chavruta"
	IDDocumentQA  ID = "document-qa"
)

// Quiz size bounds.
const (
	MinQuizQuestions = 1
	MaxQuizQuestions = 10
)

// Entry is one line of the menu.
type Entry struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Interactive bool   `json:"interactive"`
}

// persona is the system message shared by every single-shot tool.
const persona = "You are a patient and knowledgeable teacher of Jewish texts and tradition. " +
	"Answer accurately, cite sources by name when you rely on them, " +
	"and adapt your explanation to a motivated adult learner."

// tool is a single-shot tool: its menu entry, its focus line and the request template.
type tool struct {
	entry    Entry
	focus    string
	request  *template.Template
	validate func(Request) string
}

func mustRequest(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

var singleShot = []tool{
	{
		entry: Entry{ID: IDExplain, Name: "Explain a concept",
			Description: "A clear explanation of a concept, term or practice."},
		focus:    "Current focus: explanation. Define the concept, give its sources and one example.",
		request:  mustRequest("explain", "Explain the concept: {{.Topic}}"),
		validate: requireTopic,
	},
	{
		entry: Entry{ID: IDSummarize, Name: "Summarize a passage",
			Description: "A short summary of a passage you paste in."},
		focus:   "Current focus: summary. Keep the summary short and faithful to the passage.",
		request: mustRequest("summarize", "Summarize the following passage:\n{{.Passage}}"),
		validate: func(r Request) string {
			if r.Passage == "" {
				return "Please paste a passage to summarize."
			}
			return ""
		},
	},
	{
		entry: Entry{ID: IDQuiz, Name: "Quiz me",
			Description: "A short quiz on a topic, with answers at the end."},
		focus: "Current focus: review quiz. Write clear questions and list the answers after all questions.",
		request: mustRequest("quiz",
			"Write {{.Count}} quiz question{{if gt .Count 1}}s{{end}} about {{.Topic}}."),
		validate: func(r Request) string {
			if msg := requireTopic(r); msg != "" {
				return msg
			}
			if r.Count < MinQuizQuestions || r.Count > MaxQuizQuestions {
				return "Please choose between 1 and 10 questions."
			}
			return ""
		},
	},
	{
		entry: Entry{ID: IDCompare, Name: "Compare two ideas",
			Description: "Similarities and differences between two concepts or opinions."},
		focus: "Current focus: comparison. Present what the two have in common, then where they differ.",
		request: mustRequest("compare",
			"Compare {{.First}} and {{.Second}}."),
		validate: func(r Request) string {
			if r.First == "" || r.Second == "" {
				return "Please enter two items to compare."
			}
			if equalFold(r.First, r.Second) {
				return "Please enter two different items to compare."
			}
			return ""
		},
	},
}

var interactive = []Entry{
	{ID: IDGuidedStudy, Name: "Guided study",
		Description: "Step through a weekly portion or a theme one stage at a time.", Interactive: true},
	{ID: IDChavruta, Name: "Chavruta",
		Description: "Discuss a topic with a study partner in the voice of a sage.", Interactive: true},
	{ID: IDDocumentQA, Name: "Ask a document",
		Description: "Upload an HTML or PDF file and ask questions about it.", Interactive: true},
}

// Menu returns every entry in display order: single-shot tools first.
func Menu() []Entry {
	out := make([]Entry, 0, len(singleShot)+len(interactive))
	for _, t := range singleShot {
		out = append(out, t.entry)
	}
	return append(out, interactive...)
}

func lookup(id ID) (*tool, error) {
	for i := range singleShot {
		if singleShot[i].entry.ID == id {
			return &singleShot[i], nil
		}
	}
	for _, e := range interactive {
		if e.ID == id {
			return nil, ErrNotSingleShot
		}
	}
	return nil, ErrUnknownTool
}

func requireTopic(r Request) string {
	if r.Topic == "" {
		return "Please enter a topic."
	}
	return ""
}
