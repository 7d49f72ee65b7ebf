package github

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// PromptFunc asks the user for a username interactively
type PromptFunc func() (string, error)

// SurveyPrompt asks for the GitHub username on the terminal
func SurveyPrompt() (string, error) {
	var user string
	err := survey.AskOne(&survey.Input{
		Message: "GitHub username:",
	}, &user, survey.WithValidator(survey.Required))
	if err != nil {
		return "", err
	}
	return user, nil
}

// ResolveUsername determines whose repositories to discover, in order:
// the github.user git config value, the provider's authenticated user,
// and finally an interactive prompt.
func ResolveUsername(ctx context.Context, configured string, p Provider, prompt PromptFunc) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if p != nil {
		if user, err := p.AuthenticatedUser(ctx); err == nil && user != "" {
			return user, nil
		}
	}

	if prompt != nil {
		return prompt()
	}

	return "", fmt.Errorf("unable to determine GitHub username")
}
