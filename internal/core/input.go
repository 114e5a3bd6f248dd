package core

// Action represents a semantic previewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionNextLevel         // Right, L, N - show the next level id
	ActionPrevLevel         // Left, H, P - show the previous level id
	ActionFirstLevel        // Home, G - jump back to level 1
	ActionScreenshot        // S - save the current preview to a file
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNextLevel:
		return "NextLevel"
	case ActionPrevLevel:
		return "PrevLevel"
	case ActionFirstLevel:
		return "FirstLevel"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
