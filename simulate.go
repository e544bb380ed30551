package xanthos

// runSimulation drives the recurrence across the full requested horizon from
// the (spun-up) initial conditions, producing the complete state sequence.
func (m *model) runSimulation() (*state, error) {
	st := m.newState(m.steps, m.p, m.tn)
	for i := 0; i < m.steps; i++ {
		if err := m.step(st, m.tn, i); err != nil {
			return nil, err
		}
	}
	return st, nil
}
