package gateway

import (
	"context"

	"github.com/234quix/rewoo/internal/agent"
)

// Messenger defines the interface for communication gateways (Telegram, Discord, etc.)
type Messenger interface {
	// Start begins the message listening loop
	Start() error
	// Send sends a message to a specific chat
	Send(chatID string, text string) error
	// Stop gracefully shuts down the gateway
	Stop() error
}

// Runner is the slice of the orchestrator a gateway needs: one task
// in, one outcome out.
type Runner interface {
	Run(ctx context.Context, task string) (*agent.Outcome, error)
}
