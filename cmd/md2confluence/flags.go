package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	apiURL      string
	username    string
	password    string
	space       string
	ancestorID  string
	globalLabel string
	headers     []string
	dryRun      bool
	verbose     bool
	version     bool
	files       []string
}

// parseFlags parses args (including the program name) into cliFlags.
// Environment variables provide defaults; explicit flags win.
func parseFlags(args []string) (*cliFlags, error) {
	env := loadEnvConfig()

	fs := flag.NewFlagSet("md2confluence", flag.ContinueOnError)
	flags := &cliFlags{}

	fs.StringVar(&flags.apiURL, "api-url", env.APIURL,
		"Confluence REST API base URL, e.g. https://wiki.example.com/rest/api (default: env CONFLUENCE_API_URL)")
	fs.StringVar(&flags.username, "username", env.Username,
		"username for Confluence authentication (default: env CONFLUENCE_USERNAME)")
	fs.StringVar(&flags.password, "password", env.Password,
		"password for Confluence authentication (default: env CONFLUENCE_PASSWORD)")
	fs.StringVar(&flags.space, "space", env.Space,
		"Confluence space key where pages are created (default: env CONFLUENCE_SPACE)")
	fs.StringVar(&flags.ancestorID, "ancestor-id", env.AncestorID,
		"ID of the parent page for root-level documents (default: env CONFLUENCE_ANCESTOR_ID)")
	fs.StringVar(&flags.globalLabel, "global-label", env.GlobalLabel,
		"label applied to every synced page (default: env CONFLUENCE_GLOBAL_LABEL)")
	fs.StringArrayVar(&flags.headers, "header", env.Headers,
		"extra request header as Name:value, repeatable (default: env CONFLUENCE_HEADER_<NAME>)")
	fs.BoolVar(&flags.dryRun, "dry-run", false,
		"print the requests that would be sent without contacting Confluence")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false,
		"print progress to stderr")
	fs.BoolVar(&flags.version, "version", false,
		"print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: md2confluence [flags] <file-or-directory>...\n\n")
		fmt.Fprintf(fs.Output(), "Converts Markdown documents to Confluence pages and syncs them.\n")
		fmt.Fprintf(fs.Output(), "Directories are scanned recursively for .md files.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	flags.files = fs.Args()
	return flags, nil
}

// validate checks the flag combination before any work starts.
func (f *cliFlags) validate() error {
	if f.apiURL == "" {
		return errMissingAPIURL
	}
	if f.space == "" {
		return errMissingSpace
	}
	if len(f.files) == 0 {
		return errNoInput
	}
	return nil
}
