// Package input turns a raw terminal byte stream into ordered game events.
package input

import (
	"bufio"
)

// Kind identifies the type of an input event.
type Kind int

const (
	KindQuit        Kind = iota // q, ESC, or Ctrl-C
	KindWeaponCycle             // Space
	KindPointerDown
	KindPointerMove
	KindPointerUp
)

// Event is one discrete input occurrence. Pointer events carry 1-based
// terminal cell coordinates from SGR mouse reports.
type Event struct {
	Kind     Kind
	Col, Row int
}

// Stream delivers input bytes via a channel and retains partial escape
// sequences between polls.
type Stream struct {
	ch      chan byte
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking) and returns the complete
// events parsed from them, in arrival order. An escape sequence split across
// reads is kept until its remaining bytes arrive; no event is dropped.
func (s *Stream) Poll() []Event {
	drained := 0
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return s.parsePending(drained)
			}
			s.pending = append(s.pending, b)
			drained++
		default:
			return s.parsePending(drained)
		}
	}
}

func (s *Stream) parsePending(drained int) []Event {
	// A lone ESC still pending after a poll with no new bytes is the escape
	// key, not the start of a sequence.
	if drained == 0 && len(s.pending) == 1 && s.pending[0] == 0x1b {
		s.pending = s.pending[:0]
		return []Event{{Kind: KindQuit}}
	}
	events, rest := parseEvents(s.pending)
	// Copy the tail so the pending buffer can be reused.
	s.pending = append(s.pending[:0], rest...)
	return events
}

// parseEvents scans buf and returns the events it contains plus any
// trailing bytes that form an incomplete escape sequence.
func parseEvents(buf []byte) (events []Event, rest []byte) {
	i := 0
	for i < len(buf) {
		b := buf[i]

		if b == 0x1b {
			ev, n, complete := parseEscape(buf[i:])
			if !complete {
				// Incomplete sequence at the end of the buffer; wait for more.
				return events, buf[i:]
			}
			if ev != nil {
				events = append(events, *ev)
			}
			i += n
			continue
		}

		switch b {
		case 'q', 'Q', 0x03:
			events = append(events, Event{Kind: KindQuit})
		case ' ':
			events = append(events, Event{Kind: KindWeaponCycle})
		}
		i++
	}
	return events, nil
}

// parseEscape parses an escape sequence at the start of buf. It returns the
// event (nil for sequences we ignore), the byte count consumed, and whether
// the sequence was complete. A lone ESC reports incomplete; Poll resolves it
// to the quit key once it is clear no sequence bytes are following.
func parseEscape(buf []byte) (*Event, int, bool) {
	if len(buf) == 1 {
		return nil, 0, false
	}
	if buf[1] != '[' {
		// ESC followed by a non-CSI byte: treat the ESC as the quit key and
		// leave the next byte for the main scan.
		return &Event{Kind: KindQuit}, 1, true
	}
	if len(buf) == 2 {
		return nil, 0, false
	}

	if buf[2] == '<' {
		return parseSGRMouse(buf)
	}

	// Other CSI sequences (arrow keys, etc.) are not bound to anything;
	// consume the final byte in the 0x40-0x7e range.
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return nil, i + 1, true
		}
	}
	return nil, 0, false
}

// parseSGRMouse parses an SGR mouse report: ESC [ < button ; col ; row (M|m).
// M is press (or motion when the motion bit is set), m is release.
func parseSGRMouse(buf []byte) (*Event, int, bool) {
	button, col, row := 0, 0, 0
	field := 0
	for i := 3; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b >= '0' && b <= '9':
			v := int(b - '0')
			switch field {
			case 0:
				button = button*10 + v
			case 1:
				col = col*10 + v
			case 2:
				row = row*10 + v
			}
		case b == ';':
			field++
			if field > 2 {
				return nil, i + 1, true // Malformed; discard
			}
		case b == 'M' || b == 'm':
			ev := &Event{Col: col, Row: row}
			switch {
			case button&32 != 0:
				ev.Kind = KindPointerMove
			case b == 'm':
				ev.Kind = KindPointerUp
			default:
				ev.Kind = KindPointerDown
			}
			return ev, i + 1, true
		default:
			return nil, i + 1, true // Malformed; discard
		}
	}
	return nil, 0, false
}
