package main

import (
	"encoding/json"
	"fmt"

	"github.com/beevik/etree"
	"github.com/mstolarski/emwiki"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	characters, err := deps.Characters.FindCharacters(deps.Ctx, emwiki.CharacterFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", emwiki.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "xml":
		return exportXML(deps, characters)
	default:
		return exportJSON(deps, characters)
	}
}

func exportJSON(deps *Dependencies, characters []*emwiki.Character) error {
	if characters == nil {
		characters = []*emwiki.Character{}
	}
	out, err := json.MarshalIndent(characters, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

func exportXML(deps *Dependencies, characters []*emwiki.Character) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("characters")

	for _, ch := range characters {
		el := root.CreateElement("character")
		el.CreateAttr("id", ch.ID)
		el.CreateElement("name").SetText(ch.Name)
		el.CreateElement("sourceUrl").SetText(ch.SourceURL)

		if ch.PrimaryImage != nil {
			el.CreateElement("primaryImage").SetText(*ch.PrimaryImage)
		}
		for _, u := range ch.OtherImages {
			el.CreateElement("otherImage").SetText(u)
		}
		for _, title := range ch.Titles {
			el.CreateElement("title").SetText(title)
		}
		for _, appearance := range ch.Appearances {
			el.CreateElement("appearance").SetText(appearance)
		}

		// Fixed language order keeps the output deterministic.
		for _, lang := range []string{emwiki.LangEnglish, emwiki.LangJapanese} {
			for _, actor := range ch.VoiceActors[lang] {
				va := el.CreateElement("voiceActor")
				va.CreateAttr("language", lang)
				va.SetText(actor)
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(deps.Stdout)
	return err
}
