package docqa

import (
	"fmt"
	"strings"
)

// SystemPrompt instructs the model to answer from the supplied excerpts
// and cite them by their bracketed markers.
const SystemPrompt = "You are an assistant that answers questions about a research paper " +
	"on indivisible fair division. Answer using only the numbered excerpts provided, " +
	"and cite the excerpts you used with their bracketed numbers, for example [2]. " +
	"If the excerpts do not contain the answer, say that the paper does not cover it."

// BuildPrompt renders the user prompt from the question, the recent
// conversation and the retrieved excerpts. It is a pure function so
// prompt construction can be tested without a model.
func BuildPrompt(question string, history []ChatMessage, retrieved []RetrievedChunk) string {
	var sb strings.Builder

	if len(retrieved) > 0 {
		sb.WriteString("Excerpts from the paper:\n")
		for i, chunk := range retrieved {
			fmt.Fprintf(&sb, "[%d] (page %d) %s\n", i+1, chunk.Page, strings.TrimSpace(chunk.Text))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No relevant excerpts were found in the paper.\n\n")
	}

	if len(history) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, msg := range history {
			fmt.Fprintf(&sb, "%s: %s\n", msg.Role, msg.Content)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Question: %s\n", question)
	sb.WriteString("Answer:")

	return sb.String()
}
