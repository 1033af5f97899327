// Package input turns raw key presses into simulation control events.
package input

import (
	"io"
)

// Event is a discrete control request for the simulation session.
type Event uint8

const (
	EventNone Event = iota
	TogglePause
	ToggleHUD
	ToggleEffects
	Reset
	Quit
	SpeedUp
	SpeedDown
)

func (e Event) String() string {
	switch e {
	case TogglePause:
		return "toggle-pause"
	case ToggleHUD:
		return "toggle-hud"
	case ToggleEffects:
		return "toggle-effects"
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	case SpeedUp:
		return "speed-up"
	case SpeedDown:
		return "speed-down"
	default:
		return "none"
	}
}

// Source delivers the events that arrived since the previous poll.
// Poll must not block.
type Source interface {
	Poll() []Event
}

// Stream delivers input bytes via a channel and parses them on Poll.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// When r fails or hits EOF the stream reports a single Quit.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				s.ch <- b
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Poll drains all available bytes from the stream (non-blocking).
func (s *Stream) Poll() []Event {
	if s.closed {
		return nil
	}

	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return append(ParseKeys(buf), Quit)
			}
			buf = append(buf, b)
		default:
			return ParseKeys(buf)
		}
	}
}

// ParseKeys maps a chunk of terminal input to events.
// Cursor and function key sequences (CSI and SS3) are skipped; a bare
// escape quits.
func ParseKeys(buf []byte) []Event {
	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 < len(buf) {
			switch buf[i+1] {
			case '[':
				// CSI: parameters then a final byte in 0x40..0x7e
				i += 2
				for i < len(buf) && (buf[i] < 0x40 || buf[i] > 0x7e) {
					i++
				}
				continue
			case 'O':
				// SS3: one final byte
				i += 2
				continue
			}
		}

		if ev := KeyEvent(rune(b)); ev != EventNone {
			events = append(events, ev)
		}
	}
	return events
}

// KeyEvent maps a single key to its event.
func KeyEvent(r rune) Event {
	switch r {
	case 'q', 'Q', '\x1b', '\x03':
		return Quit
	case ' ', 'p', 'P':
		return TogglePause
	case 'd', 'D', 'h', 'H':
		return ToggleHUD
	case 'e', 'E':
		return ToggleEffects
	case 'r', 'R':
		return Reset
	case '+', '=':
		return SpeedUp
	case '-', '_':
		return SpeedDown
	default:
		return EventNone
	}
}

// Queue is a Source fed by hand, used by hosts that receive key events
// through callbacks rather than a byte stream.
type Queue struct {
	pending []Event
}

// Push records an event for the next Poll.
func (q *Queue) Push(ev Event) {
	if ev != EventNone {
		q.pending = append(q.pending, ev)
	}
}

// Poll returns and clears the queued events.
func (q *Queue) Poll() []Event {
	events := q.pending
	q.pending = nil
	return events
}

var (
	_ Source = (*Stream)(nil)
	_ Source = (*Queue)(nil)
)
