package github

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

// Token returns a GitHub token from the environment or the gh CLI, or ""
// when neither is available. A missing token is not an error: discovery of
// public repositories works unauthenticated.
func Token(ctx context.Context) string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}

	cmd := exec.CommandContext(ctx, "gh", "auth", "token")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(stdout.String())
}
