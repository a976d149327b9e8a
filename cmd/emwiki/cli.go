package main

import (
	"context"
	"io"

	"github.com/mstolarski/emwiki"
	"github.com/mstolarski/emwiki/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Characters emwiki.CharacterService
	Crawler    *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Crawl the wiki and store character records"`
	List   ListCmd   `cmd:"" help:"List stored characters"`
	Show   ShowCmd   `cmd:"" help:"Show one character as JSON"`
	Delete DeleteCmd `cmd:"" help:"Delete a character record"`
	Export ExportCmd `cmd:"" help:"Export all characters"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	BaseURL     string  `default:"https://fireemblemwiki.org" help:"Wiki base URL"`
	Start       string  `help:"Category listing start URL (defaults to <base-url>/wiki/Category:Characters)"`
	MaxImages   int     `default:"5" help:"Maximum other images per character"`
	Rate        float64 `default:"1" help:"Requests per second per domain"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent detail-page fetch limit"`
	MaxListings int     `help:"Cap on listing pages followed (0 = no cap)"`
	Verbose     bool    `short:"v" help:"Log extraction details"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Name string `help:"Filter by exact character name"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Character ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Character ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `default:"json" enum:"json,xml" help:"Output format (json or xml)"`
}
