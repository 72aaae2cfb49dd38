package ui

// Prompter defines interface for user interaction
type Prompter interface {
	Select(label string, items []string, defaultIndex int) (int, error)
	Confirm(label string, defaultYes bool) (bool, error)
	Input(label, defaultValue string) (string, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// Select prompts user to pick one item
func (p *DefaultPrompter) Select(label string, items []string, defaultIndex int) (int, error) {
	return Select(label, items, defaultIndex)
}

// Confirm prompts user for a yes/no answer
func (p *DefaultPrompter) Confirm(label string, defaultYes bool) (bool, error) {
	return Confirm(label, defaultYes)
}

// Input prompts user for free text
func (p *DefaultPrompter) Input(label, defaultValue string) (string, error) {
	return Input(label, defaultValue)
}

// MockPrompter for testing
type MockPrompter struct {
	SelectedIndex  int
	SelectionError error

	// Confirmations are consumed in order; DefaultConfirm is used once they run out
	Confirmations  []bool
	DefaultConfirm bool
	ConfirmError   error

	// Inputs are consumed in order; an empty queue returns the prompt's default
	Inputs     []string
	InputError error

	// Call tracking
	SelectCalled  int
	ConfirmCalled int
	InputCalled   int
	Labels        []string
}

// Select mocks item selection
func (m *MockPrompter) Select(label string, items []string, defaultIndex int) (int, error) {
	m.SelectCalled++
	m.Labels = append(m.Labels, label)
	return m.SelectedIndex, m.SelectionError
}

// Confirm mocks confirmation
func (m *MockPrompter) Confirm(label string, defaultYes bool) (bool, error) {
	m.ConfirmCalled++
	m.Labels = append(m.Labels, label)
	if m.ConfirmError != nil {
		return false, m.ConfirmError
	}
	if len(m.Confirmations) == 0 {
		return m.DefaultConfirm, nil
	}
	answer := m.Confirmations[0]
	m.Confirmations = m.Confirmations[1:]
	return answer, nil
}

// Input mocks free text entry
func (m *MockPrompter) Input(label, defaultValue string) (string, error) {
	m.InputCalled++
	m.Labels = append(m.Labels, label)
	if m.InputError != nil {
		return "", m.InputError
	}
	if len(m.Inputs) == 0 {
		return defaultValue, nil
	}
	answer := m.Inputs[0]
	m.Inputs = m.Inputs[1:]
	return answer, nil
}
