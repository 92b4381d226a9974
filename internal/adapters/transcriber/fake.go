package transcriber

import "context"

// Fake returns a canned transcript without invoking any engine. Used in
// development mode and tests where no speech model is available.
type Fake struct {
	// Text is the transcript to return. Defaults to a fixed sentence.
	Text string
	// Err, when set, is returned instead of a transcript.
	Err error
}

// Transcribe returns the canned transcript or error.
func (f *Fake) Transcribe(_ context.Context, _, _ string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.Text != "" {
		return f.Text, nil
	}
	return "this is a fake transcription", nil
}
