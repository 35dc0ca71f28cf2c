package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mansi2425/punjab-alumni-connect/internal/assistant"
	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

// Intent is the category the assistant assigns to the latest user message.
type Intent string

const (
	IntentAlumniCount     Intent = "alumni_count"
	IntentStudentCount    Intent = "student_count"
	IntentKeywordSearch   Intent = "keyword_search"
	IntentGeneralQuestion Intent = "general_question"

	// keywords shorter than this match nearly every record
	minKeywordLength = 3
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// ChatMessage is one turn of the conversation supplied by the client.
type ChatMessage struct {
	Type string `json:"type"` // "user" or "bot"
	Text string `json:"text"`
}

// ChatService answers questions about the platform.
type ChatService interface {
	Query(ctx context.Context, query string, history []ChatMessage) (string, error)
}

type chatService struct {
	gen    assistant.Generator
	users  repository.UserRepository
	jobs   repository.JobRepository
	events repository.EventRepository
	log    *zap.Logger
}

// NewChatService creates a chat service. A nil generator makes every query
// fail with errors.ErrAssistantUnavailable.
func NewChatService(
	gen assistant.Generator,
	users repository.UserRepository,
	jobs repository.JobRepository,
	events repository.EventRepository,
	log *zap.Logger,
) ChatService {
	return &chatService{
		gen:    gen,
		users:  users,
		jobs:   jobs,
		events: events,
		log:    log,
	}
}

// Query classifies the latest message, answers counts from the store and
// otherwise asks the generator, grounding keyword searches in platform data.
func (s *chatService) Query(ctx context.Context, query string, history []ChatMessage) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.ErrEmptyQuery
	}
	if s.gen == nil {
		return "", errors.ErrAssistantUnavailable
	}

	transcript := buildTranscript(query, history)
	intent := s.classify(ctx, transcript)

	var prompt string
	switch intent {
	case IntentAlumniCount:
		count, err := s.users.CountApprovedByRole(ctx, model.RoleAlumni)
		if err != nil {
			return "", fmt.Errorf("count alumni: %w", err)
		}
		return fmt.Sprintf("There are currently %d approved alumni registered on the Punjab Alumni Connect platform.", count), nil
	case IntentStudentCount:
		count, err := s.users.CountApprovedByRole(ctx, model.RoleStudent)
		if err != nil {
			return "", fmt.Errorf("count students: %w", err)
		}
		return fmt.Sprintf("There are currently %d approved students registered on the platform.", count), nil
	case IntentKeywordSearch:
		info, err := s.searchPlatform(ctx, query)
		if err != nil {
			return "", err
		}
		if info != "" {
			prompt = "You are Alumni Assist. Given the conversation history, use ONLY the provided information to answer the user's latest query.\n\n" +
				"History:\n" + transcript + "\nInformation:\n" + info
		} else {
			prompt = "You are Alumni Assist. You searched the database for the user's latest query but found no results. " +
				"Given the conversation history, inform the user of this, then try to answer generally.\n\nHistory:\n" + transcript
		}
	default:
		prompt = "You are Alumni Assist. Continue the following conversation naturally.\n\nHistory:\n" + transcript
	}

	answer, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("generate answer", zap.String("intent", string(intent)), zap.Error(err))
		return "", errors.ErrAssistantFailed
	}
	return answer, nil
}

func (s *chatService) classify(ctx context.Context, transcript string) Intent {
	prompt := "Given the following conversation history, classify the user's LATEST query into one of the categories:\n" +
		"'alumni_count', 'student_count', 'keyword_search', 'general_question'.\n" +
		"Respond with ONLY the category name.\n\nHistory:\n" + transcript

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("intent classification failed", zap.Error(err))
		return IntentGeneralQuestion
	}
	return parseIntent(raw)
}

func parseIntent(raw string) Intent {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.NewReplacer("'", "", `"`, "").Replace(label)

	for _, intent := range []Intent{IntentAlumniCount, IntentStudentCount, IntentKeywordSearch} {
		if strings.Contains(label, string(intent)) {
			return intent
		}
	}
	return IntentGeneralQuestion
}

func buildTranscript(query string, history []ChatMessage) string {
	var b strings.Builder
	for _, msg := range history {
		writeTurn(&b, msg)
	}
	last := len(history) - 1
	if last < 0 || history[last].Type != "user" || strings.TrimSpace(history[last].Text) != query {
		writeTurn(&b, ChatMessage{Type: "user", Text: query})
	}
	return b.String()
}

func writeTurn(b *strings.Builder, msg ChatMessage) {
	role := "Assistant"
	if msg.Type == "user" {
		role = "User"
	}
	fmt.Fprintf(b, "%s: %s\n", role, msg.Text)
}

// keywords returns the distinct lowercase words of query worth searching for.
func keywords(query string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(query), "")
	seen := make(map[string]struct{})
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) < minKeywordLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func containsAny(text string, words []string) bool {
	text = strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// searchPlatform collects one line of context per alumnus, job or event that mentions a query keyword.
func (s *chatService) searchPlatform(ctx context.Context, query string) (string, error) {
	words := keywords(query)
	if len(words) == 0 {
		return "", nil
	}

	var lines []string

	alumni, err := s.users.ListApprovedByRole(ctx, model.RoleAlumni, 0)
	if err != nil {
		return "", fmt.Errorf("search alumni: %w", err)
	}
	for i := range alumni {
		person := &alumni[i]
		var company, skills string
		if person.Profile != nil {
			company, skills = person.Profile.Company, person.Profile.Skills
		}
		if containsAny(strings.Join([]string{person.FirstName, person.Username, company, skills}, " "), words) {
			lines = append(lines, fmt.Sprintf("Alumnus '%s' works at '%s' with skills in '%s'.", person.DisplayName(), company, skills))
		}
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return "", fmt.Errorf("search jobs: %w", err)
	}
	for _, job := range jobs {
		if containsAny(strings.Join([]string{job.Title, job.Company, job.Description}, " "), words) {
			lines = append(lines, fmt.Sprintf("There is a '%s' opening for a '%s' at '%s'.", job.JobType, job.Title, job.Company))
		}
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return "", fmt.Errorf("search events: %w", err)
	}
	for _, event := range events {
		if containsAny(strings.Join([]string{event.Title, event.Description, event.Location}, " "), words) {
			lines = append(lines, fmt.Sprintf("Event '%s' takes place at '%s' starting %s.",
				event.Title, event.Location, event.StartTime.Format("2 Jan 2006 15:04")))
		}
	}

	return strings.Join(lines, "\n"), nil
}
