package prompt

import "fmt"

// Scripted is a Prompter that replays fixed answers in order and records the
// questions it was asked.
type Scripted struct {
	Answers   []string
	Questions []string
}

// NewScripted returns a Scripted prompter that will give answers in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{Answers: answers}
}

// Ask records the question and returns the next answer.
func (s *Scripted) Ask(question string) (string, error) {
	s.Questions = append(s.Questions, question)
	if len(s.Answers) == 0 {
		return "", fmt.Errorf("script exhausted at %q: %w", question, ErrNoInput)
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
