package rule

// Recognized action types.
const (
	ActionSetValue    = "set_value"
	ActionApplyMethod = "apply_method"
)

// DefaultMethodTarget is the target used by apply_method actions when the
// authored sentence names none.
const DefaultMethodTarget = "method"

// Action is a single baseline-property write. set_value assigns a value to a
// target property; apply_method records a named method reference. Both
// mutate the baseline identically, the type is documentation of intent.
type Action struct {
	Type   string `json:"action_type" mapstructure:"action_type" validate:"required"`
	Target string `json:"target"      mapstructure:"target"      validate:"required"`
	Value  any    `json:"value"       mapstructure:"value"`
}

// SetValue builds a set_value action.
func SetValue(target string, value any) Action {
	return Action{Type: ActionSetValue, Target: target, Value: value}
}

// ApplyMethod builds an apply_method action targeting the default method slot.
func ApplyMethod(value any) Action {
	return Action{Type: ActionApplyMethod, Target: DefaultMethodTarget, Value: value}
}

func (a Action) AsMap() map[string]any {
	return map[string]any{
		"action_type": a.Type,
		"target":      a.Target,
		"value":       a.Value,
	}
}
