package main

import (
	"encoding/json"
	"fmt"

	"github.com/mstolarski/emwiki"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	character, err := deps.Characters.FindCharacterByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", emwiki.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(character, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
