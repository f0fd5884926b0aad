package driving

import "context"

// LinkService performs the link-out actions of a source card.
type LinkService interface {
	// Open launches the source URL in the browser and returns it.
	Open(ctx context.Context, id string) (string, error)

	// Copy writes the source URL to the clipboard and returns it.
	Copy(ctx context.Context, id string) (string, error)
}
