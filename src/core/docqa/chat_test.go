package docqa_test

import (
	"context"
	"errors"
	"testing"

	"paperqa/src/core/docqa"
)

func newTestChatService(t *testing.T, llm *fakeLLM) docqa.ChatService {
	t.Helper()

	retriever := docqa.NewRetriever(&fakeStore{}, llm, 5)
	if err := retriever.Index(context.Background(), testChunks()); err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	service, err := docqa.NewChatService(
		retriever,
		docqa.NewAnswerGenerator(llm),
		docqa.NewMemoryHistoryStore(),
		docqa.DefaultHistoryLimit,
	)
	if err != nil {
		t.Fatalf("NewChatService() error = %v", err)
	}
	return service
}

func TestChatServiceAsk(t *testing.T) {
	service := newTestChatService(t, &fakeLLM{response: "It mentions alpha [1]."})

	answer, err := service.Ask(context.Background(), "", "What about alpha?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if answer.SessionID == "" {
		t.Error("Ask() should assign a session ID when none is given")
	}
	if answer.MessageID == "" {
		t.Error("Ask() should assign a message ID")
	}
	if answer.Text != "It mentions alpha [1]." {
		t.Errorf("Ask() text = %q", answer.Text)
	}
	if len(answer.Citations) != 1 {
		t.Errorf("Ask() citations = %v, want 1", answer.Citations)
	}

	history, err := service.GetHistory(context.Background(), answer.SessionID)
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("GetHistory() = %d messages, want 2", len(history))
	}
	if history[0].Role != "user" || history[0].Content != "What about alpha?" {
		t.Errorf("first message = %+v, want the user question", history[0])
	}
	if history[1].Role != "assistant" || history[1].Content != answer.Text {
		t.Errorf("second message = %+v, want the assistant answer", history[1])
	}
}

func TestChatServiceAskEmptyQuestion(t *testing.T) {
	service := newTestChatService(t, &fakeLLM{response: "unused"})

	tests := []struct {
		name     string
		question string
	}{
		{name: "empty", question: ""},
		{name: "whitespace only", question: "   \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Ask(context.Background(), "session", tt.question)
			if !errors.Is(err, docqa.ErrEmptyQuestion) {
				t.Errorf("Ask(%q) error = %v, want ErrEmptyQuestion", tt.question, err)
			}
		})
	}
}

func TestChatServiceSessionIsolation(t *testing.T) {
	service := newTestChatService(t, &fakeLLM{response: "An answer."})
	ctx := context.Background()

	if _, err := service.Ask(ctx, "session-a", "What about alpha?"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if _, err := service.Ask(ctx, "session-b", "What about beta?"); err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	historyA, err := service.GetHistory(ctx, "session-a")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(historyA) != 2 {
		t.Errorf("session-a history = %d messages, want 2", len(historyA))
	}
	for _, msg := range historyA {
		if msg.SessionID != "session-a" {
			t.Errorf("session-a history contains message for %q", msg.SessionID)
		}
	}

	historyUnknown, err := service.GetHistory(ctx, "session-c")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(historyUnknown) != 0 {
		t.Errorf("unknown session history = %d messages, want 0", len(historyUnknown))
	}
}

func TestChatServiceAskBeforeIndex(t *testing.T) {
	llm := &fakeLLM{response: "unused"}
	retriever := docqa.NewRetriever(&fakeStore{}, llm, 5)

	service, err := docqa.NewChatService(
		retriever,
		docqa.NewAnswerGenerator(llm),
		docqa.NewMemoryHistoryStore(),
		docqa.DefaultHistoryLimit,
	)
	if err != nil {
		t.Fatalf("NewChatService() error = %v", err)
	}

	_, err = service.Ask(context.Background(), "session", "What about alpha?")
	if !errors.Is(err, docqa.ErrIndexNotReady) {
		t.Errorf("Ask() error = %v, want ErrIndexNotReady", err)
	}

	history, err := service.GetHistory(context.Background(), "session")
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("failed Ask() should not record history, got %d messages", len(history))
	}
}
