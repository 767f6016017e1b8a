package testutil

import (
	"github.com/AntonioJCosta/trove/internal/core/ports"
)

// FakeCommand is an in-memory ports.CommandNode used to build command trees in tests.
type FakeCommand struct {
	CommandName string
	Help        string
	Children    []*FakeCommand
}

// NewFakeCommand creates a node whose help text is "help for <name>".
func NewFakeCommand(name string, children ...*FakeCommand) *FakeCommand {
	return &FakeCommand{CommandName: name, Help: "help for " + name + "\n", Children: children}
}

func (f *FakeCommand) Name() string {
	return f.CommandName
}

func (f *FakeCommand) Child(name string) (ports.CommandNode, bool) {
	for _, c := range f.Children {
		if c.CommandName == name {
			return c, true
		}
	}
	return nil, false
}

func (f *FakeCommand) LongHelp() string {
	return f.Help
}

// MockCommandRegistry is a mock implementation of ports.CommandRegistry.
type MockCommandRegistry struct {
	RootNode     ports.CommandNode
	ValidateFunc func(path []string) error
}

func (m *MockCommandRegistry) Root() ports.CommandNode {
	return m.RootNode
}

// Validate accepts every path unless ValidateFunc is set.
func (m *MockCommandRegistry) Validate(path []string) error {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(path)
	}
	return nil
}
