package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/callscore"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := readDocument(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	text, err := deps.Extractor.Extract(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", callscore.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, text)
	return nil
}

// readDocument loads a file as a document named after its base name.
func readDocument(path string) (*callscore.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, callscore.Errorf(callscore.EINVALID, "cannot read %s: %v", path, err)
	}
	return callscore.NewDocument(filepath.Base(path), "", data), nil
}
