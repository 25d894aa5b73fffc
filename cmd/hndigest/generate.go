package main

import (
	"fmt"

	hndigest "github.com/chris-buckminster/hn-daily-digest"
	"github.com/chris-buckminster/hn-daily-digest/digest"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	return generateOnce(deps)
}

// generateOnce builds, renders, and writes one digest. A window with no
// stories writes nothing and succeeds.
func generateOnce(deps *Dependencies) error {
	d, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hndigest.ErrorMessage(err))
		return err
	}
	if d == nil {
		deps.Logger.Info("no stories in window, nothing to write")
		fmt.Fprintln(deps.Stdout, "No stories found for yesterday; nothing written.")
		return nil
	}

	doc := digest.BuildDocument(d)

	data, err := deps.Renderer.Render(doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hndigest.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WriteArtifact(doc.DateLabel, deps.Renderer.Ext(), data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hndigest.ErrorMessage(err))
		return err
	}

	deps.Logger.Info("digest written",
		"date", doc.DateLabel,
		"posts", len(doc.Sections),
		"bytes", len(data),
		"path", path,
	)
	fmt.Fprintln(deps.Stdout, path)
	return nil
}
