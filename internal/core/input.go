package core

// Action is a semantic input intent, abstracted from physical key presses.
// Both frontends translate keys to actions through the same bindings.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionRestart
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionPanUp:     "pan_up",
	ActionPanDown:   "pan_down",
	ActionPanLeft:   "pan_left",
	ActionPanRight:  "pan_right",
	ActionRestart:   "restart",
	ActionQuit:      "quit",
}

// String returns the config name of the action (e.g. "move_up").
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction converts a config name back to an Action.
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// AllActions returns every bindable action in declaration order.
func AllActions() []Action {
	return []Action{
		ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
		ActionPanUp, ActionPanDown, ActionPanLeft, ActionPanRight,
		ActionRestart, ActionQuit,
	}
}

// Direction returns the unit vector for movement and pan actions.
func (a Action) Direction() (Position, bool) {
	switch a {
	case ActionMoveUp, ActionPanUp:
		return Up, true
	case ActionMoveDown, ActionPanDown:
		return Down, true
	case ActionMoveLeft, ActionPanLeft:
		return Left, true
	case ActionMoveRight, ActionPanRight:
		return Right, true
	default:
		return Position{}, false
	}
}

// IsMove reports whether the action moves the player.
func (a Action) IsMove() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// IsPan reports whether the action pans the camera.
func (a Action) IsPan() bool {
	return a >= ActionPanUp && a <= ActionPanRight
}
