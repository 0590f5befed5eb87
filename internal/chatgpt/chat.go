package chatgpt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemMessage = `You are a news desk analyst. You receive a single breaking news headline.
Reply with exactly one short sentence commenting on what the headline could mean for ordinary readers.
Do not repeat the headline, do not use markdown, do not add any preface.`

type ChatGPT struct {
	languageModel string
	options       []option.RequestOption
}

func NewChatGPT(openaiApiKey, languageModel string, opts ...option.RequestOption) *ChatGPT {
	return &ChatGPT{
		languageModel: languageModel,
		options:       append([]option.RequestOption{option.WithAPIKey(openaiApiKey)}, opts...),
	}
}

// NewHeadlineComment asks the language model for a one-line comment on the headline
func (c *ChatGPT) NewHeadlineComment(ctx context.Context, title string) (string, error) {
	client := openai.NewClient(c.options...)

	slog.Debug("sending a headline to ChatGPT", "title", title, "model", c.languageModel)

	// Prepare prompt
	prompt := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemMessage),
		openai.UserMessage(title),
	}
	params := openai.ChatCompletionNewParams{
		Messages: prompt,
		Model:    c.languageModel,
	}

	// Ask OpenAI
	completion, err := client.Chat.Completions.New(ctx, params)

	// Check for errors
	if err != nil {
		var e *openai.Error
		if errors.As(err, &e) {
			switch e.StatusCode {
			case http.StatusTooManyRequests:
				return "", errors.New("OpenAI API error: 429 Too many requests")
			case http.StatusForbidden:
				return "", errors.New("OpenAI API error: 403 Forbidden")
			default:
				return "", fmt.Errorf("OpenAI API error: status %d", e.StatusCode)
			}
		}
		slog.Error("failed to create completion", "title", title, "error", err)
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(completion.Choices) > 0 {
		return strings.TrimSpace(completion.Choices[0].Message.Content), nil
	}

	return "", errors.New("got empty choices from the OpenAI API")
}
