package docqa_test

import (
	"strings"
	"testing"

	"paperqa/src/core/docqa"
)

func TestBuildPrompt(t *testing.T) {
	retrieved := []docqa.RetrievedChunk{
		{Chunk: docqa.Chunk{ID: "doc-0", Text: "envy-free allocations exist", Page: 2}},
		{Chunk: docqa.Chunk{ID: "doc-1", Text: "proportionality is weaker", Page: 5}},
	}
	history := []docqa.ChatMessage{
		{Role: "user", Content: "What is fairness?"},
		{Role: "assistant", Content: "A property of allocations."},
	}

	tests := []struct {
		name        string
		question    string
		history     []docqa.ChatMessage
		retrieved   []docqa.RetrievedChunk
		wantParts   []string
		unwantParts []string
	}{
		{
			name:      "excerpts and history",
			question:  "Does an envy-free allocation always exist?",
			history:   history,
			retrieved: retrieved,
			wantParts: []string{
				"Excerpts from the paper:",
				"[1] (page 2) envy-free allocations exist",
				"[2] (page 5) proportionality is weaker",
				"Conversation so far:",
				"user: What is fairness?",
				"assistant: A property of allocations.",
				"Question: Does an envy-free allocation always exist?",
				"Answer:",
			},
		},
		{
			name:     "no excerpts",
			question: "What about chores?",
			wantParts: []string{
				"No relevant excerpts were found in the paper.",
				"Question: What about chores?",
			},
			unwantParts: []string{"Excerpts from the paper:", "Conversation so far:"},
		},
		{
			name:      "no history",
			question:  "What is envy-freeness?",
			retrieved: retrieved[:1],
			wantParts: []string{
				"[1] (page 2) envy-free allocations exist",
				"Question: What is envy-freeness?",
			},
			unwantParts: []string{"Conversation so far:", "[2]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := docqa.BuildPrompt(tt.question, tt.history, tt.retrieved)

			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("BuildPrompt() missing %q in:\n%s", part, got)
				}
			}
			for _, part := range tt.unwantParts {
				if strings.Contains(got, part) {
					t.Errorf("BuildPrompt() should not contain %q in:\n%s", part, got)
				}
			}
			if !strings.HasSuffix(got, "Answer:") {
				t.Errorf("BuildPrompt() should end with the answer cue, got:\n%s", got)
			}
		})
	}
}
