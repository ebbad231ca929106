package chatlist

import "github.com/zhubert/chatty/internal/message"

// Every message below carries the ListID of the list it belongs to, so several
// lists can share one program without hearing each other's signals.

// ReplyBubblePressedMsg asks the list to bring the quoted message into view.
// Hosts send it when a reply preview is pressed; the list sends it to itself
// for presses it observes directly.
type ReplyBubblePressedMsg struct {
	ListID    string
	MessageID string
}

// ActionPressedMsg is emitted when a context menu action is chosen.
type ActionPressedMsg struct {
	ListID  string
	Index   int // position of Message in the collection
	Action  int // position of Label in the configured actions
	Label   string
	Message message.Message
}

// ReplyMsg is emitted when the user swipes (or presses the reply key) on a
// message.
type ReplyMsg struct {
	ListID  string
	Message message.Message
}

// LoadEarlierMsg is emitted when the load-earlier header is pressed.
type LoadEarlierMsg struct {
	ListID string
}

// EndReachedMsg is emitted once per content size when the viewport comes
// within the configured threshold of the end of the collection.
type EndReachedMsg struct {
	ListID   string
	Distance int // lines left to the end
}

// ScrollEvent describes the list position after a scroll.
type ScrollEvent struct {
	ListID         string
	Offset         int // lines from the top, or from the bottom when inverted
	ContentHeight  int
	ViewportHeight int
}

// Internal ticks. The generation number lets a newer scroll request
// invalidate timers already in flight.
type (
	autoScrollMsg struct {
		listID string
		gen    int
	}
	scrollFrameMsg struct {
		listID string
		gen    int
	}
	transitionFrameMsg struct {
		listID string
	}
	typingTickMsg struct {
		listID string
	}
	longPressMsg struct {
		listID string
	}
)
