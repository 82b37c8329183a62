package chavruta

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// styleDirectives maps each register to the speech style the persona must use.
var styleDirectives = map[Register]string{
	RegisterModern: "Speak in clear, modern and accessible language, " +
		"like a friendly contemporary study partner.",
	RegisterTraditional: "Speak in a period-appropriate, erudite register befitting {{.Persona}}, " +
		"citing verses and sages the way a traditional scholar would.",
}

var instructionTemplate = template.Must(template.New("instruction").Parse(
	"You are {{.Persona}}, acting as a chavruta (study partner) for a student learning about {{.Topic}}. " +
		"{{.Style}} Stay in character, keep each reply to a few short paragraphs, " +
		"and end each reply with a question that moves the discussion forward."))

type instructionData struct {
	Persona string
	Topic   string
	Style   string
}

// buildInstruction renders the hidden system instruction for a session.
func buildInstruction(persona, topic string, register Register) (string, error) {
	styleTmpl, err := template.New("style").Parse(styleDirectives[register])
	if err != nil {
		return "", fmt.Errorf("failed to parse style directive: %w", err)
	}

	var style bytes.Buffer
	if err := styleTmpl.Execute(&style, instructionData{Persona: persona}); err != nil {
		return "", fmt.Errorf("failed to execute style directive: %w", err)
	}

	var buf bytes.Buffer
	data := instructionData{Persona: persona, Topic: topic, Style: style.String()}
	if err := instructionTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instruction template: %w", err)
	}
	return buf.String(), nil
}

// openingPrompt asks for the greeting and first question.
func openingPrompt(instruction, persona, topic string) string {
	return fmt.Sprintf("%s\n\nBegin the session now: greet the student in character as %s "+
		"and ask an opening question about %s.", instruction, persona, topic)
}

// label is the transcript label for a turn.
func label(speaker Speaker, persona string) string {
	if speaker == SpeakerPersona {
		return persona
	}
	return "User"
}

// turnPrompt carries the instruction and the entire transcript so far; the
// history is never summarized or truncated.
func turnPrompt(instruction, persona string, turns []Turn) string {
	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\nConversation so far:\n")
	for _, t := range turns {
		sb.WriteString(label(t.Speaker, persona))
		sb.WriteString(": ")
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nReply as %s to the student's last message, continuing the discussion.", persona)
	return sb.String()
}

// farewell is the closing line shown when a session ends.
func farewell(persona string) string {
	if persona == "" {
		return "The study session has ended."
	}
	return fmt.Sprintf("%s closes the book: thank you for learning together. Until next time!", persona)
}
