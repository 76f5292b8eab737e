package testutil

// ScriptedPrompter answers every confirmation with a fixed answer and
// records the questions asked.
type ScriptedPrompter struct {
	Answer    bool
	Err       error
	Questions []string
}

// NewScriptedPrompter creates a prompter giving the fixed answer.
func NewScriptedPrompter(answer bool) *ScriptedPrompter {
	return &ScriptedPrompter{Answer: answer}
}

func (p *ScriptedPrompter) Confirm(question string, _ bool) (bool, error) {
	p.Questions = append(p.Questions, question)
	if p.Err != nil {
		return false, p.Err
	}
	return p.Answer, nil
}
