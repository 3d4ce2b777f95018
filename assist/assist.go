// Package assist implements the AI assistant that answers questions about the
// user's book of income and expense records.
package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Advisor is the AI assistant that handles the chat session.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	expert *Expert
}

// New creates a new Advisor around an expert, with an io.Writer for the
// advisor's output (e.g., os.Stdout) and an io.Reader for user input (e.g.,
// os.Stdin).
func New(w io.Writer, r io.Reader, expert *Expert) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r), expert: expert}
}

const prompt = "assist> "

// Run starts the interactive session. Prompts are asked first, then the user
// takes over. 'bye' or end of input ends the session.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.expert.chat == nil {
		if err := a.expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to xt spending assist. Type 'bye' to exit.")

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
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

		content, err := a.expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
