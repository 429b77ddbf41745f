package events

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps an event for wire delivery with a unique id and timestamp.
type Envelope struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	EmittedAt time.Time `json:"emittedAt"`
	Payload   Event     `json:"payload"`
}

// JSONEmitter writes one JSON envelope per line to an io.Writer. It is the
// file/pipe delivery channel for off-chain consumers. Emission is
// fire-and-forget: write and marshal failures are swallowed, matching the
// notification contract.
type JSONEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSONEmitter creates an emitter writing JSON lines to w.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{w: w}
}

// Emit implements the Emitter interface.
func (e *JSONEmitter) Emit(ev Event) {
	env := Envelope{
		ID:        uuid.NewString(),
		Type:      ev.EventType(),
		EmittedAt: time.Now().UTC(),
		Payload:   ev,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return
	}
	data = append(data, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = e.w.Write(data)
}
