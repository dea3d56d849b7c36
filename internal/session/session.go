// Package session owns the message flow between the UI and the wire:
// named commands become outbound frames, inbound frames become grid
// mutations, redraws, or chat lines. Decode and routing failures are
// never fatal; the offending message is logged and dropped and the
// grid keeps its prior state.
package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/armedev/game-of-life/internal/grid"
	"github.com/armedev/game-of-life/internal/protocol"
)

// Transport is the duplex byte-stream collaborator. Connection lifecycle
// (reconnects, timeouts) lives behind it, not here.
type Transport interface {
	Send(data []byte) error
}

// Surface draws cells from the grid store onto the screen.
type Surface interface {
	DrawCell(col, row int, c grid.RGB)
	DrawAll()
}

// ChatLog receives text traffic and diagnostics for display.
type ChatLog interface {
	Append(direction, text, tag string)
}

// Chat log directions and style tags.
const (
	DirIn  = "recv"
	DirOut = "sent"

	TagChat  = "chat"
	TagError = "error"
)

// Session glues one connection's grid store, render surface, and
// transport together. Construct one per connection.
type Session struct {
	id        string
	store     *grid.Store
	surface   Surface
	transport Transport
	chat      ChatLog
	log       *zap.SugaredLogger
}

func New(store *grid.Store, surface Surface, transport Transport, chat ChatLog, log *zap.SugaredLogger) *Session {
	id := uuid.NewString()
	return &Session{
		id:        id,
		store:     store,
		surface:   surface,
		transport: transport,
		chat:      chat,
		log:       log.With("session", id),
	}
}

func (s *Session) ID() string { return s.id }

// send encodes and ships one unfragmented frame.
func (s *Session) send(msgType byte, payload []byte) error {
	data := protocol.Encode(msgType, protocol.FlagWhole, payload)
	if err := s.transport.Send(data); err != nil {
		return fmt.Errorf("send %s: %w", protocol.TypeName(msgType), err)
	}
	s.log.Debugw("frame sent", "type", protocol.TypeName(msgType), "payload_len", len(payload))
	return nil
}

// Dispatch sends one named command to the server. The server answers with
// pixel or frame updates; nothing is applied locally here.
func (s *Session) Dispatch(cmd Command) error {
	spec, ok := commands[cmd]
	if !ok {
		return fmt.Errorf("session: unknown command %d", cmd)
	}
	if err := s.send(spec.msgType, spec.payload()); err != nil {
		return err
	}
	s.chat.Append(DirOut, spec.name, protocol.TypeName(spec.msgType))
	return nil
}

// PaintCell requests a color change for one cell. This is a paint intent:
// the cell is not recolored locally until the server echoes the update
// back through an inbound draw-pixel frame.
func (s *Session) PaintCell(col, row int, c grid.RGB) error {
	if col < 0 || col > 0xffff || row < 0 || row > 0xffff {
		return fmt.Errorf("session: paint intent (%d,%d) not encodable", col, row)
	}
	payload := protocol.EncodePixel(protocol.Pixel{
		Col: uint16(col), Row: uint16(row),
		R: c.R, G: c.G, B: c.B,
	})
	return s.send(protocol.TypeDrawPixel, payload)
}

// SendChat ships free text on the hello channel; the server echoes text
// payloads back to every client.
func (s *Session) SendChat(text string) error {
	if err := s.send(protocol.TypeHello, []byte(text)); err != nil {
		return err
	}
	s.chat.Append(DirOut, text, TagChat)
	return nil
}

// HandleInbound routes one raw inbound message. It never returns an
// error: every failure mode here is recoverable by dropping the message.
func (s *Session) HandleInbound(data []byte) {
	f, err := protocol.Decode(data)
	if err != nil {
		s.log.Warnw("dropping undecodable message", "len", len(data), "error", err)
		s.chat.Append(DirIn, err.Error(), TagError)
		return
	}

	switch f.Type {
	case protocol.TypeDrawPixel:
		s.handlePixel(f.Payload)
	case protocol.TypeDrawFrame:
		s.handleSnapshot(f.Payload)
	default:
		s.handleText(f)
	}
}

func (s *Session) handlePixel(payload []byte) {
	px, err := protocol.DecodePixel(payload)
	if err != nil {
		s.log.Warnw("dropping pixel update", "error", err)
		s.chat.Append(DirIn, err.Error(), TagError)
		return
	}
	c := grid.RGB{R: px.R, G: px.G, B: px.B}
	if err := s.store.SetCell(int(px.Col), int(px.Row), c); err != nil {
		s.log.Warnw("dropping pixel update", "error", err)
		s.chat.Append(DirIn, err.Error(), TagError)
		return
	}
	s.surface.DrawCell(int(px.Col), int(px.Row), c)
}

func (s *Session) handleSnapshot(payload []byte) {
	snap, err := protocol.DecodeSnapshot(payload)
	if err != nil {
		s.log.Warnw("dropping frame snapshot", "error", err)
		s.chat.Append(DirIn, err.Error(), TagError)
		return
	}
	if err := s.store.ReplaceFrame(int(snap.Width), int(snap.Height), snap.Pixels); err != nil {
		s.log.Warnw("dropping frame snapshot", "error", err)
		s.chat.Append(DirIn, err.Error(), TagError)
		return
	}
	s.log.Debugw("frame snapshot applied", "width", snap.Width, "height", snap.Height)
	s.surface.DrawAll()
}

// handleText surfaces any other payload as UTF-8 text. Unrecognized
// types are logged, not fatal.
func (s *Session) handleText(f protocol.Frame) {
	text := string(f.Payload)
	if !utf8.ValidString(text) {
		s.log.Warnw("dropping non-UTF-8 text payload", "type", f.Type, "len", len(f.Payload))
		return
	}
	tag := protocol.TypeName(f.Type)
	if tag == "unknown" {
		s.log.Infow("message with unrecognized type", "type", f.Type)
	}
	s.chat.Append(DirIn, text, tag)
}

// ClearLocal empties the local view. This is a purely local action, used
// by the UI's clear button; it sends nothing.
func (s *Session) ClearLocal() {
	s.store.Clear()
	s.surface.DrawAll()
}
