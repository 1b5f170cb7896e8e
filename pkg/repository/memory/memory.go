package memory

import (
	"github.com/thecontlab/continuity-sim/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = interfaces.ErrLeadNotFound

// Memory is an in-memory Repository for development and tests
type Memory struct {
	lead *leadRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository
func New() *Memory {
	return &Memory{
		lead: newLeadRepository(),
	}
}

func (m *Memory) Lead() interfaces.LeadRepository {
	return m.lead
}

func (m *Memory) Close() error {
	return nil
}
