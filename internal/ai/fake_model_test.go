package ai

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
)

var errFakeModel = errors.New("completion service unavailable")

// fakeModel records every request and replies from a canned list, cycling when
// it runs out. failOn makes the n-th call (1-based) fail.
type fakeModel struct {
	responses []string
	failOn    int
	calls     [][]llms.MessageContent
	opts      []llms.CallOptions
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls = append(f.calls, messages)

	var co llms.CallOptions
	for _, opt := range options {
		opt(&co)
	}
	f.opts = append(f.opts, co)

	if f.failOn > 0 && len(f.calls) >= f.failOn {
		return nil, errFakeModel
	}

	content := ""
	if len(f.responses) > 0 {
		content = f.responses[(len(f.calls)-1)%len(f.responses)]
	}

	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func textOf(msg llms.MessageContent) string {
	for _, part := range msg.Parts {
		if text, ok := part.(llms.TextContent); ok {
			return text.Text
		}
	}
	return ""
}

func imageURLsOf(msg llms.MessageContent) []string {
	var urls []string
	for _, part := range msg.Parts {
		if img, ok := part.(llms.ImageURLContent); ok {
			urls = append(urls, img.URL)
		}
	}
	return urls
}
