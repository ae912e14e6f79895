// Package agent implements the AI assistant behind `casnav assist`: a chat
// session grounded in the last generated portfolio document.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	portfolio "github.com/Jaivikpanchal/portfolio-cas-data"
	"github.com/Jaivikpanchal/portfolio-cas-data/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w    io.Writer
	r    *bufio.Reader
	p    *portfolio.Portfolio
	chat *genai.Chat
}

// New creates a new Agent answering questions about the given portfolio.
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, p *portfolio.Portfolio) *Agent {
	return &Agent{
		w: w,
		r: bufio.NewReader(r),
		p: p,
	}
}

// Start creates the Gemini chat, seeding it with the rendered portfolio so
// the model answers from the user's actual figures instead of guessing.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	instruction := fmt.Sprintf(`
	You are a financial assistant for a mutual-fund investor. The user's
	current portfolio, generated from their own transaction history, is
	below. Answer questions about it plainly and with its actual figures.
	Amounts are in INR. Do not invent holdings or prices that are not in
	the document, and say so when a question needs data you do not have.

	%s`, renderer.SummaryMarkdown(a.p))

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Initial prompts are
// consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to casnav assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content)
	}
}

// ask sends one message and returns the model's text answer.
func (a *Agent) ask(ctx context.Context, input string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: input})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
