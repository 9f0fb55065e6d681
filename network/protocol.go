package network

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MessageType tags the JSON envelope
type MessageType string

const (
	// Server → client
	MsgSnapshot MessageType = "snapshot"
	MsgAck      MessageType = "ack"
	MsgError    MessageType = "error"

	// Client → server
	MsgToggle MessageType = "toggle"
)

// Message is the wire envelope; Payload is present on snapshots only
type Message struct {
	Type    MessageType `json:"type"`
	Seq     uint32      `json:"seq,omitempty"`
	Name    string      `json:"name,omitempty"`
	Text    string      `json:"text,omitempty"`
	Payload *Snapshot   `json:"payload,omitempty"`
}

// Snapshot is the telemetry view of one simulation tick
type Snapshot struct {
	Tick        int64           `json:"tick"`
	GameTime    float64         `json:"game_time"`
	Mode        string          `json:"mode"`
	CordLength  float64         `json:"cord_length"`
	Segments    int             `json:"segments"`
	Joints      int             `json:"joints"`
	Trail       int             `json:"trail"`
	Retracting  bool            `json:"retracting"`
	Attached    bool            `json:"attached"`
	AnchorLabel string          `json:"anchor,omitempty"`
	Battery     float64         `json:"battery"`
	TimeOfDay   float64         `json:"time_of_day"`
	IsDay       bool            `json:"is_day"`
	Toggles     map[string]bool `json:"toggles"`
	Metrics     map[string]any  `json:"metrics,omitempty"`
}

// Encode serializes a message
func (m *Message) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "encode message")
	}
	return data, nil
}

// Decode parses a client message and validates its type
func Decode(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decode message")
	}
	switch m.Type {
	case MsgToggle:
		if m.Name == "" {
			return nil, errors.New("toggle message without name")
		}
	default:
		return nil, errors.Errorf("unsupported message type %q", m.Type)
	}
	return &m, nil
}

// NewSnapshotMessage wraps a snapshot for broadcast
func NewSnapshotMessage(s *Snapshot) *Message {
	return &Message{Type: MsgSnapshot, Payload: s}
}

// NewAckMessage acknowledges an accepted command
func NewAckMessage(name string) *Message {
	return &Message{Type: MsgAck, Name: name}
}

// NewErrorMessage reports a rejected command
func NewErrorMessage(text string) *Message {
	return &Message{Type: MsgError, Text: text}
}
