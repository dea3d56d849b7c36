package protocol

// Message type codes understood by the pixel server.
const (
	TypeHello byte = 1

	TypeNewPainting     byte = 20
	TypeAdvancePainting byte = 21

	TypeNewGeneration     byte = 40
	TypeAwakenRandomCell  byte = 41
	TypeKillRandomCell    byte = 42
	TypeAdvanceGeneration byte = 43
	TypeKillAllCells      byte = 45

	TypeDrawPixel byte = 100
	TypeDrawFrame byte = 101

	TypeRequestRandomPixel byte = 200
)

var typeNames = map[byte]string{
	TypeHello:              "hello",
	TypeNewPainting:        "new_painting",
	TypeAdvancePainting:    "advance_painting",
	TypeNewGeneration:      "new_generation",
	TypeAwakenRandomCell:   "awaken_random_cell",
	TypeKillRandomCell:     "kill_random_cell",
	TypeAdvanceGeneration:  "advance_generation",
	TypeKillAllCells:       "kill_all_cells",
	TypeDrawPixel:          "draw_pixel",
	TypeDrawFrame:          "draw_frame",
	TypeRequestRandomPixel: "request_random_pixel",
}

// TypeName returns a human-readable name for a message type code, or
// "unknown" for codes this client does not recognize.
func TypeName(t byte) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}
