package sim

import (
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/google/uuid"
)

type Agent struct {
	ID      uuid.UUID
	Policy  Policy
	History []bandit.Round
}

func NewAgent(policy Policy) *Agent {
	return &Agent{ID: uuid.New(), Policy: policy}
}

func (a *Agent) Step(round bandit.Round) {
	a.History = append(a.History, round)
}
