package session

import "github.com/armedev/game-of-life/internal/protocol"

// Command identifies one user-facing action that maps to an outbound
// frame. The table below is the single place that binds commands to
// message types; UI shortcuts reference commands, never raw codes.
type Command int

const (
	CmdHello Command = iota
	CmdNewGeneration
	CmdAwakenRandomCell
	CmdKillRandomCell
	CmdAdvanceGeneration
	CmdKillAllCells
	CmdNewPainting
	CmdAdvancePainting
	CmdRequestRandomPixel
)

type commandSpec struct {
	name    string
	msgType byte
	payload func() []byte
}

func emptyPayload() []byte { return nil }

var commands = map[Command]commandSpec{
	CmdHello: {
		name:    "hello",
		msgType: protocol.TypeHello,
		payload: func() []byte { return []byte("hello") },
	},
	CmdNewGeneration: {
		name:    "new generation",
		msgType: protocol.TypeNewGeneration,
		payload: emptyPayload,
	},
	CmdAwakenRandomCell: {
		name:    "awaken random cell",
		msgType: protocol.TypeAwakenRandomCell,
		payload: emptyPayload,
	},
	CmdKillRandomCell: {
		name:    "kill random cell",
		msgType: protocol.TypeKillRandomCell,
		payload: emptyPayload,
	},
	CmdAdvanceGeneration: {
		name:    "step",
		msgType: protocol.TypeAdvanceGeneration,
		payload: emptyPayload,
	},
	CmdKillAllCells: {
		name:    "kill all",
		msgType: protocol.TypeKillAllCells,
		payload: emptyPayload,
	},
	CmdNewPainting: {
		name:    "new painting",
		msgType: protocol.TypeNewPainting,
		payload: emptyPayload,
	},
	CmdAdvancePainting: {
		name:    "advance painting",
		msgType: protocol.TypeAdvancePainting,
		payload: emptyPayload,
	},
	CmdRequestRandomPixel: {
		name:    "request random pixel",
		msgType: protocol.TypeRequestRandomPixel,
		payload: emptyPayload,
	},
}

// Name returns the command's display name.
func (c Command) Name() string {
	if spec, ok := commands[c]; ok {
		return spec.name
	}
	return "unknown"
}
