package cli

import (
	"time"

	"github.com/webpen/webpen-cli/pkg/chat"
	"github.com/webpen/webpen-cli/pkg/files"
	"github.com/webpen/webpen-cli/pkg/models"
)

// CommandContext carries the loaded settings for a CLI command run.
type CommandContext struct {
	Settings *models.Settings
}

// NewCommandContext loads settings (defaults when no project exists).
func NewCommandContext() (*CommandContext, error) {
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}
	return &CommandContext{Settings: settings}, nil
}

// Endpoint resolves the endpoint to use: the flag value when given,
// otherwise the configured one.
func (c *CommandContext) Endpoint(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.Settings.Chat.Endpoint
}

// Model resolves the model to use: the flag value when given, otherwise
// the configured default (possibly empty, meaning "pick the first").
func (c *CommandContext) Model(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.Settings.Chat.Model
}

// NewChatClient builds a chat client from the resolved endpoint and the
// configured timeout and sampling options.
func (c *CommandContext) NewChatClient(endpointFlag string) *chat.Client {
	client := chat.NewClient(
		c.Endpoint(endpointFlag),
		time.Duration(c.Settings.Chat.TimeoutSeconds)*time.Second,
	)
	client.SetSampling(c.Settings.Chat.Temperature, c.Settings.Chat.TopP)
	return client
}
