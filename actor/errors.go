package actor

import "errors"

var (
	ErrNilBody             = errors.New("actor: body is nil")
	ErrNilAnimator         = errors.New("actor: animator is nil")
	ErrNilScene            = errors.New("actor: scene is nil")
	ErrInvalidMaxHitPoints = errors.New("actor: max hit points must be positive")
	ErrInvalidFacing       = errors.New("actor: facing is not a cardinal direction")
)
