// Package speech defines the text-to-speech and speech-recognition boundary.
// Synthesis and recognition happen on the client device; the server only
// carries the contracts plus no-op implementations for wiring and tests.
package speech

import "context"

// Speaker reads text aloud. Speak is fire-and-forget; Cancel stops any
// utterance still in flight.
type Speaker interface {
	Speak(ctx context.Context, text, langCode string) error
	Cancel()
}

// Recognizer captures a spoken phrase and returns its transcript.
type Recognizer interface {
	Listen(ctx context.Context, langCode string) (string, error)
}

// NoopSpeaker satisfies Speaker without producing audio.
type NoopSpeaker struct{}

func (NoopSpeaker) Speak(ctx context.Context, text, langCode string) error { return nil }
func (NoopSpeaker) Cancel()                                                {}

// NoopRecognizer satisfies Recognizer and always returns an empty transcript.
type NoopRecognizer struct{}

func (NoopRecognizer) Listen(ctx context.Context, langCode string) (string, error) {
	return "", nil
}
