// Package level supplies spawn records for a floor. Records come from a
// YAML spawn list or from the built-in demo floor.
package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"project-bones/internal/component"
)

// SpawnRecord is one entity placement, identified by a level-authoring key.
type SpawnRecord struct {
	Identifier string   `yaml:"id"`
	X          float64  `yaml:"x"`
	Y          float64  `yaml:"y"`
	Requires   []string `yaml:"requires,omitempty"` // door requirements

	Dialogue []DialogueRecord `yaml:"dialogue,omitempty"` // people only
}

// DialogueRecord is one authored dialogue node.
type DialogueRecord struct {
	Prompt  string         `yaml:"prompt"`
	Choices []ChoiceRecord `yaml:"choices,omitempty"`
}

// ChoiceRecord is one authored branch. Target indexes the owning record's
// Dialogue list.
type ChoiceRecord struct {
	Label  string `yaml:"label"`
	Target int    `yaml:"target"`
}

// Conversation builds the dialogue nodes authored on r.
func (r SpawnRecord) Conversation() ([]component.Dialogue, error) {
	if len(r.Dialogue) == 0 {
		return nil, nil
	}
	nodes := make([]component.Dialogue, len(r.Dialogue))
	for i, rec := range r.Dialogue {
		nodes[i].Prompt = rec.Prompt
		for _, c := range rec.Choices {
			if err := nodes[i].AddChoice(c.Label, c.Target); err != nil {
				return nil, fmt.Errorf("dialogue %d: %w", i, err)
			}
		}
	}
	return nodes, nil
}

// Level is an ordered list of spawn records.
type Level struct {
	Name   string        `yaml:"name"`
	Spawns []SpawnRecord `yaml:"spawns"`
}

// Load reads a YAML spawn list from path.
func Load(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading level %s: %w", path, err)
	}
	var lv Level
	if err := yaml.Unmarshal(data, &lv); err != nil {
		return Level{}, fmt.Errorf("parsing level %s: %w", path, err)
	}
	if err := lv.validate(); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", path, err)
	}
	return lv, nil
}

func (lv Level) validate() error {
	for i, s := range lv.Spawns {
		if s.Identifier == "" {
			return fmt.Errorf("spawn %d: missing id", i)
		}
		if _, err := s.Conversation(); err != nil {
			return fmt.Errorf("spawn %d (%s): %w", i, s.Identifier, err)
		}
	}
	return nil
}

// Default returns the built-in demo floor: the player start, a gum machine
// beside it, a vendor, a talker, a locked door that wants a gumball and
// an open archway, plus some furniture.
func Default() Level {
	return Level{
		Name: "floor_1",
		Spawns: []SpawnRecord{
			{Identifier: "Player_start", X: 0, Y: 0},
			{Identifier: "Gum_Machine", X: 40, Y: 0},
			{Identifier: "Vendor", X: -60, Y: 16},
			{Identifier: "NPC_spawn", X: 0, Y: 48, Dialogue: []DialogueRecord{
				{Prompt: "Lost something? Arms have a way of wandering off.", Choices: []ChoiceRecord{
					{Label: "Where is the exit?", Target: 1},
					{Label: "Never mind.", Target: 0},
				}},
				{Prompt: "The far door wants a gumball. The machine is just over there."},
			}},
			{Identifier: "Door_Locked", X: 96, Y: 0, Requires: []string{"Gumball"}},
			{Identifier: "Door", X: -96, Y: 0},
			{Identifier: "Banner", X: 24, Y: 64},
			{Identifier: "Stool", X: -24, Y: -32},
			{Identifier: "Coffee_Table", X: -40, Y: -32},
		},
	}
}
