package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/rahulbhooteshwar/awesome-http-cli/internal/domain"
)

// runInteractive collects the request through prompts and runs the same
// pipeline as quick mode, then prints the reusable quick command.
func runInteractive(ctx context.Context, d *Deps) error {
	var rawURL string
	if err := survey.AskOne(&survey.Input{Message: "URL:"}, &rawURL, survey.WithValidator(urlValidator)); err != nil {
		return err
	}

	var method string
	if err := survey.AskOne(&survey.Select{
		Message: "Method:",
		Options: domain.Methods,
		Default: "GET",
	}, &method); err != nil {
		return err
	}

	headers, err := askPairs("Header (Name: Value, empty to finish):")
	if err != nil {
		return err
	}
	queries, err := askPairs("Query param (name=value, empty to finish):")
	if err != nil {
		return err
	}

	var data string
	if method != "GET" && method != "HEAD" {
		withBody := false
		if err := survey.AskOne(&survey.Confirm{Message: "Attach a body?", Default: false}, &withBody); err != nil {
			return err
		}
		if withBody {
			if err := survey.AskOne(&survey.Multiline{Message: "Body (raw text or JSON):"}, &data); err != nil {
				return err
			}
		}
	}

	cfg, err := BuildConfig(rawURL, method, headers, queries, data)
	if err != nil {
		return err
	}
	if _, err := runPipeline(ctx, d, cfg); err != nil {
		return err
	}
	fmt.Fprintf(d.Out, "\nRe-run with: %s\n", EncodeCommand(cfg))
	return nil
}

// askPairs keeps prompting until the user submits an empty line.
func askPairs(message string) ([]string, error) {
	var out []string
	for {
		var line string
		if err := survey.AskOne(&survey.Input{Message: message}, &line); err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return out, nil
		}
		out = append(out, line)
	}
}

func urlValidator(ans interface{}) error {
	s, _ := ans.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("url is required")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return fmt.Errorf("not a valid url")
	}
	return nil
}
