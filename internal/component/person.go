package component

import "errors"

// MaxChoices is the most branches a single dialogue node may offer.
const MaxChoices = 3

// ErrTooManyChoices is returned when a node already has MaxChoices branches.
var ErrTooManyChoices = errors.New("dialogue node already has the maximum number of choices")

// Choice is one labelled branch to another dialogue index.
type Choice struct {
	Label  string
	Target int
}

// Dialogue is one node of a conversation graph. Targets index into the
// owning Person's Dialogue slice; cycles are allowed and nothing checks
// reachability.
type Dialogue struct {
	Prompt   string
	Finished bool
	Choices  []Choice
}

// AddChoice appends a branch, refusing a fourth one.
func (d *Dialogue) AddChoice(label string, target int) error {
	if len(d.Choices) >= MaxChoices {
		return ErrTooManyChoices
	}
	d.Choices = append(d.Choices, Choice{Label: label, Target: target})
	return nil
}

// Person is a talkable payload owning an ordered list of dialogue nodes.
type Person struct {
	Dialogue []Dialogue
}

func (Person) Kind() InteractionKind { return KindPerson }
func (Person) isPayload()            {}

// Node returns the dialogue node at index i.
func (p Person) Node(i int) (Dialogue, bool) {
	if i < 0 || i >= len(p.Dialogue) {
		return Dialogue{}, false
	}
	return p.Dialogue[i], true
}
