package bandit

import "errors"

var (
	ErrInvalidProbability    = errors.New("invalid success probability")
	ErrEmptyArmSet           = errors.New("empty arm set")
	ErrIndexOutOfRange       = errors.New("arm index out of range")
	ErrDistributionParameter = errors.New("invalid beta distribution parameter")
	ErrInvalidReward         = errors.New("invalid reward")
	ErrArmCountMismatch      = errors.New("arm count mismatch")
)
