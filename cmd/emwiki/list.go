package main

import (
	"fmt"

	"github.com/mstolarski/emwiki"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := emwiki.CharacterFilter{}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	characters, err := deps.Characters.FindCharacters(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", emwiki.ErrorMessage(err))
		return err
	}

	if len(characters) == 0 {
		fmt.Fprintln(deps.Stdout, "No characters found. Use 'emwiki crawl' to scrape the wiki.")
		return nil
	}

	for _, ch := range characters {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", ch.ID, ch.Name, ch.SourceURL)
	}

	return nil
}
