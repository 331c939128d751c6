package docqa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

const DefaultHistoryLimit = 6

type chatService struct {
	retriever    *Retriever
	generator    *AnswerGenerator
	history      HistoryStore
	node         *snowflake.Node
	historyLimit int
}

// NewChatService creates the orchestrator that sequences retrieval,
// answer generation and history bookkeeping per incoming question.
func NewChatService(retriever *Retriever, generator *AnswerGenerator, history HistoryStore, historyLimit int) (ChatService, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %v", err)
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	return &chatService{
		retriever:    retriever,
		generator:    generator,
		history:      history,
		node:         node,
		historyLimit: historyLimit,
	}, nil
}

func (s *chatService) Ask(ctx context.Context, sessionID, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	recent, err := s.recentHistory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	retrieved, err := s.retriever.Query(ctx, question, 0)
	if err != nil {
		return nil, err
	}

	answer, err := s.generator.Generate(ctx, question, recent, retrieved)
	if err != nil {
		return nil, err
	}
	answer.SessionID = sessionID
	answer.MessageID = s.node.Generate().String()

	userMsg := &ChatMessage{
		SessionID: sessionID,
		MessageID: s.node.Generate().String(),
		Role:      "user",
		Content:   question,
		CreatedAt: time.Now().UTC(),
	}
	assistantMsg := &ChatMessage{
		SessionID: sessionID,
		MessageID: answer.MessageID,
		Role:      "assistant",
		Content:   answer.Text,
		CreatedAt: answer.CreatedAt,
	}
	if err := s.history.Append(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	if err := s.history.Append(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}

	return answer, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	return s.history.List(ctx, sessionID)
}

// recentHistory returns the most recent messages of the session, capped
// at the configured limit.
func (s *chatService) recentHistory(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	messages, err := s.history.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(messages) > s.historyLimit {
		messages = messages[len(messages)-s.historyLimit:]
	}
	return messages, nil
}
