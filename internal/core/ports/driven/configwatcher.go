package driven

import "context"

// ConfigWatcher reports changes made to the configuration by other processes.
type ConfigWatcher interface {
	// Watch reloads configuration and calls onChange after every external write.
	// It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
