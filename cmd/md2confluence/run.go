package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	md2confluence "github.com/alnah/go-md2confluence"
	"github.com/alnah/go-md2confluence/confluence"
)

// run wires the client and syncer from the parsed flags and processes the
// listed files. It returns nil only when every discovered document synced or
// was skipped on purpose (not marked for sharing).
func run(ctx context.Context, flags *cliFlags, stdout, stderr io.Writer) error {
	if err := flags.validate(); err != nil {
		return err
	}

	logf := func(string, ...any) {}
	if flags.verbose || flags.dryRun {
		logf = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	client, err := confluence.New(confluence.Config{
		BaseURL:  flags.apiURL,
		Username: flags.username,
		Password: flags.password,
		Headers:  flags.headers,
		DryRun:   flags.dryRun,
		Logf:     logf,
	})
	if err != nil {
		return err
	}

	syncer, err := md2confluence.NewSyncer(client, flags.space,
		md2confluence.WithAncestorID(flags.ancestorID),
		md2confluence.WithGlobalLabel(flags.globalLabel),
		md2confluence.WithLogf(logf),
	)
	if err != nil {
		return err
	}

	docs, err := md2confluence.DiscoverDocuments(flags.files)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(stdout, "No markdown documents found")
		return nil
	}

	results := syncer.Sync(ctx, docs)

	var synced, skipped, failed int
	for _, r := range results {
		switch {
		case r.Err == nil:
			synced++
		case errors.Is(r.Err, md2confluence.ErrNotShared):
			skipped++
			logf("skipped %s: not marked for sharing", r.Document)
		default:
			failed++
			fmt.Fprintf(stderr, "failed %s: %v\n", r.Document, r.Err)
		}
	}

	fmt.Fprintf(stdout, "Synced %d document(s), skipped %d, failed %d\n", synced, skipped, failed)
	if failed > 0 {
		return errSyncFailed
	}
	return nil
}
