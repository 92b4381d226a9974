package model

// MessageKind discriminates work messages on the shared queue.
type MessageKind string

const (
	// MessageKindTranscribe is a real transcription job.
	MessageKindTranscribe MessageKind = "transcribe"
	// MessageKindProbe is a health probe that round-trips the queue/worker
	// path without touching job records.
	MessageKindProbe MessageKind = "probe"
)

// WorkMessage is the wire format published to the queue by the dispatcher and
// consumed by workers. Delivery is at-least-once; consumers must tolerate
// redelivery of messages whose job already reached a terminal status.
type WorkMessage struct {
	Kind            MessageKind `json:"kind"`
	JobID           string      `json:"job_id,omitempty"`
	LanguageHint    string      `json:"language_hint,omitempty"`
	PayloadLocation string      `json:"payload_location,omitempty"`
	ProbeID         string      `json:"probe_id,omitempty"`
}
