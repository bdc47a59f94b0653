package candidate

import (
	candidateerrors "go-ats/internal/candidate/errors"
)

type Section string

const (
	SectionPersonal   Section = "personal"
	SectionEducation  Section = "education"
	SectionEmployment Section = "employment"
	SectionDocuments  Section = "documents"
	SectionReview     Section = "review"
)

// Sections is the fixed order of the candidate form.
var Sections = []Section{
	SectionPersonal,
	SectionEducation,
	SectionEmployment,
	SectionDocuments,
	SectionReview,
}

func SectionIndex(name string) (int, error) {
	for i, s := range Sections {
		if string(s) == name {
			return i, nil
		}
	}
	return -1, candidateerrors.ErrUnknownSection
}

type sectionValidator func(c *Candidate) error

var sectionValidators = map[Section]sectionValidator{
	SectionPersonal: func(c *Candidate) error {
		return validateStruct(personalFields{
			FullName:        c.FullName,
			Email:           c.Email,
			Phone:           c.Phone,
			PositionApplied: c.PositionApplied,
		})
	},
	SectionEducation: func(c *Candidate) error {
		if len(c.Education) == 0 {
			return candidateerrors.ErrEducationRequired
		}
		return validateEducation(c.Education)
	},
	SectionEmployment: func(c *Candidate) error {
		return validateEmployment(c.Employment)
	},
	SectionDocuments: func(c *Candidate) error {
		if c.IdentityDocuments.PAN == "" {
			return candidateerrors.ErrPANRequired
		}
		return validateIdentity(c.IdentityDocuments)
	},
}

type personalFields struct {
	FullName        string `json:"full_name" validate:"required,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=8,max=20"`
	PositionApplied string `json:"position_applied" validate:"required,max=120"`
}

// Wizard is the candidate form state machine: the section being edited plus
// the set of sections that passed validation. Review is only reachable once
// every earlier section is completed.
type Wizard struct {
	current   int
	completed map[Section]bool
}

func NewWizard() *Wizard {
	return &Wizard{completed: map[Section]bool{}}
}

// RestoreWizard ignores unknown section names and clamps the index.
func RestoreWizard(current int, completed []string) *Wizard {
	w := NewWizard()
	for _, name := range completed {
		if i, err := SectionIndex(name); err == nil {
			w.completed[Sections[i]] = true
		}
	}
	if current < 0 {
		current = 0
	}
	if current >= len(Sections) {
		current = len(Sections) - 1
	}
	w.current = current
	if first := w.firstIncomplete(); w.current > first {
		w.current = first
	}
	return w
}

func (w *Wizard) Current() Section { return Sections[w.current] }

func (w *Wizard) CurrentIndex() int { return w.current }

func (w *Wizard) IsCompleted(s Section) bool { return w.completed[s] }

// Completed lists completed sections in form order.
func (w *Wizard) Completed() []string {
	out := make([]string, 0, len(w.completed))
	for _, s := range Sections {
		if w.completed[s] {
			out = append(out, string(s))
		}
	}
	return out
}

// Complete reports whether every section, review included, has been validated.
func (w *Wizard) Complete() bool {
	for _, s := range Sections {
		if !w.completed[s] {
			return false
		}
	}
	return true
}

func (w *Wizard) firstIncomplete() int {
	for i, s := range Sections {
		if !w.completed[s] {
			return i
		}
	}
	return len(Sections) - 1
}

// Advance validates the current section against c. On success the section is
// marked completed and the wizard moves forward; on failure nothing changes.
func (w *Wizard) Advance(c *Candidate) error {
	section := w.Current()

	if section == SectionReview {
		for _, s := range Sections[:len(Sections)-1] {
			if !w.completed[s] {
				return candidateerrors.ErrSectionLocked
			}
		}
		w.completed[SectionReview] = true
		return nil
	}

	if err := sectionValidators[section](c); err != nil {
		return err
	}
	w.completed[section] = true
	if w.current < len(Sections)-1 {
		w.current++
	}
	return nil
}

func (w *Wizard) Back() error {
	if w.current == 0 {
		return candidateerrors.ErrWizardAtStart
	}
	w.current--
	return nil
}

// GoTo jumps to a completed section or to the first incomplete one.
func (w *Wizard) GoTo(i int) error {
	if i < 0 || i >= len(Sections) {
		return candidateerrors.ErrUnknownSection
	}
	if !w.completed[Sections[i]] && i != w.firstIncomplete() {
		return candidateerrors.ErrSectionLocked
	}
	w.current = i
	return nil
}

// ReopenReview clears the review confirmation after an earlier section was edited.
func (w *Wizard) ReopenReview() {
	delete(w.completed, SectionReview)
}
