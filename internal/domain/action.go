package domain

// Action discriminates which submission flow handles a request.
type Action string

const (
	ActionContact Action = "contact"
	ActionSignIn  Action = "signin"
	ActionSignUp  Action = "signup"
)

// ParseAction maps the raw discriminator to a known Action.
func ParseAction(raw string) (Action, bool) {
	switch Action(raw) {
	case ActionContact, ActionSignIn, ActionSignUp:
		return Action(raw), true
	}
	return "", false
}
