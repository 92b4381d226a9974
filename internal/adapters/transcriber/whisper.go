// Package transcriber provides adapters for the external speech-to-text capability.
package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// LanguageAuto asks the engine to detect the spoken language itself.
const LanguageAuto = "auto"

// Whisper shells out to a whisper.cpp style CLI binary. The engine itself is
// an external capability; this adapter only maps arguments and output.
type Whisper struct {
	bin   string
	model string
}

// NewWhisper creates a Whisper adapter invoking bin with the given model file.
func NewWhisper(bin, model string) *Whisper {
	return &Whisper{bin: bin, model: model}
}

// Transcribe runs the CLI against the audio file and returns the transcript.
// A languageHint of "auto" omits the language flag so the engine auto-detects;
// any other value is passed through verbatim.
func (w *Whisper) Transcribe(ctx context.Context, audioPath, languageHint string) (string, error) {
	args := []string{"--model", w.model, "--no-timestamps", "--file", audioPath}
	if languageHint != "" && languageHint != LanguageAuto {
		args = append(args, "--language", languageHint)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, w.bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("whisper: %s", msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}
