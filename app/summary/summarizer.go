package summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ErrSummarizationFailed marks summaries the upstream model could not
// produce. The pipeline records it on the video as a failure.
var ErrSummarizationFailed = errors.New("summarization failed")

const systemPromptFormat = `You are an assistant that summarizes YouTube video transcripts for a chat channel.
Write the summary in %s. Capture the main points and any concrete takeaways in 5 to 8 sentences.
Do not add introductory phrases like "This video is about". Do not mention that you are working from a transcript.`

// Transcripts longer than this are truncated before being sent upstream
const maxTranscriptChars = 32000

type Summarizer struct {
	client   *openai.Client
	model    string
	language string
}

func NewSummarizer(apiKey, model, language string) *Summarizer {
	return &Summarizer{
		client:   openai.NewClient(apiKey),
		model:    model,
		language: language,
	}
}

// Summarize produces a summary of a video transcript, with the video title
// given as context.
func (s *Summarizer) Summarize(ctx context.Context, title, transcript string) (string, error) {
	prompt, err := buildUserPrompt(title, transcript)
	if err != nil {
		return "", err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPromptFormat, s.language),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: model returned no choices", ErrSummarizationFailed)
	}

	return resp.Choices[len(resp.Choices)-1].Message.Content, nil
}

func buildUserPrompt(title, transcript string) (string, error) {
	if transcript == "" {
		return "", fmt.Errorf("%w: empty transcript", ErrSummarizationFailed)
	}

	if len(transcript) > maxTranscriptChars {
		transcript = transcript[:maxTranscriptChars]
	}

	return fmt.Sprintf("Title: %s\n\nTranscript:\n%s", title, transcript), nil
}
