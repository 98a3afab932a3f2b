package main

import (
	"fmt"
	"io"
	"os"

	"github.com/yubetsu/cite/internal/importer"
	"github.com/yubetsu/cite/internal/publication"
)

// readRecords loads and parses a record file, exiting on failure. "-" reads
// JSON from standard input. Records that fail validation are reported as
// warnings; the command only fails when nothing parses.
func readRecords(path string) []*publication.Publication {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		exitWithError(ExitError, "reading records: %v", err)
	}

	pubs, errs := importer.Parse(data, path)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}
	if len(pubs) == 0 {
		if len(errs) > 0 {
			exitWithError(ExitData, "no valid records in %s: %v", path, errs[0])
		}
		exitWithError(ExitData, "no records found in %s", path)
	}
	return pubs
}
