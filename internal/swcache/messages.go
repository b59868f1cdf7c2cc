package swcache

import "context"

// Message types understood by [Manager.HandleMessage].
const (
	MessageGetVersion  = "GET_VERSION"
	MessageSkipWaiting = "SKIP_WAITING"
)

// Message is a command sent to the cache manager, and its reply.
type Message struct {
	Type    string `json:"type"`
	Version string `json:"version,omitempty"`
}

// HandleMessage processes a control message. GET_VERSION answers with the
// manager's version string; SKIP_WAITING activates the current generation
// immediately. Unknown types return ErrUnknownMessage.
func (m *Manager) HandleMessage(ctx context.Context, msg Message) (Message, error) {
	switch msg.Type {
	case MessageGetVersion:
		return Message{Type: MessageGetVersion, Version: m.version}, nil
	case MessageSkipWaiting:
		if err := m.Activate(ctx); err != nil {
			return Message{}, err
		}
		return Message{Type: MessageSkipWaiting}, nil
	default:
		return Message{}, ErrUnknownMessage
	}
}
