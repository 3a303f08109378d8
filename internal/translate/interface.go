package translate

import "context"

// Client translates text between languages. Implementations may fail on
// network errors; an empty result with a nil error means the upstream had no
// translation for the text.
type Client interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}
