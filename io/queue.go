package io

// Queue is an in-memory channel. Inputs are consumed in order, and every
// sent value is appended to Outputs.
type Queue struct {
	Inputs  []int
	Outputs []int
}

var _ Channel = (*Queue)(nil)

// Receive pops the next queued input.
func (qc *Queue) Receive() (value int, err error) {
	if len(qc.Inputs) == 0 {
		err = ErrInputExhausted
		return
	}

	value = qc.Inputs[0]
	qc.Inputs = qc.Inputs[1:]
	return
}

// Send records value.
func (qc *Queue) Send(value int) error {
	qc.Outputs = append(qc.Outputs, value)
	return nil
}
