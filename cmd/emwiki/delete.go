package main

import (
	"fmt"

	"github.com/mstolarski/emwiki"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Characters.DeleteCharacter(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", emwiki.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted character %s\n", c.ID)
	return nil
}
