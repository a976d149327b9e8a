// Package emwiki scrapes character data from the Fire Emblem wiki.
// It crawls category listing pages, discovers character detail pages,
// and extracts one structured record per character from the wiki's
// loosely structured HTML.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package emwiki
