// Command alphasort sorts lines of text in human alphabetization order.
//
// Usage:
//
//	alphasort sort [<file> ...] [--preset index|filename]
//	alphasort key [<file> ...] [--preset index|filename]
//
// With no files, lines are read from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/CaptainLexington/alphabetical/core/alphabetical"
)

// CLI defines the command-line interface for alphasort.
var CLI struct {
	Sort SortCmd `cmd:"" default:"withargs" help:"Sort lines from files or stdin"`
	Key  KeyCmd  `cmd:"" help:"Print the canonical sort key for each line"`
}

// presetFlag selects the Options preset shared by all commands.
type presetFlag struct {
	Preset string `short:"p" enum:"index,filename" default:"index" help:"Preset: index (book-index style) or filename (natural order)"`
}

func (p presetFlag) options() alphabetical.Options {
	if p.Preset == "filename" {
		return alphabetical.Filename
	}
	return alphabetical.BookIndex
}

// SortCmd sorts input lines and prints them in order.
type SortCmd struct {
	presetFlag
	Files []string `arg:"" optional:"" type:"existingfile" help:"Files to read; stdin when omitted"`
}

func (c *SortCmd) Run() error {
	lines, err := readLines(c.Files)
	if err != nil {
		return err
	}
	for _, line := range alphabetical.SortAll(c.options(), lines) {
		fmt.Println(line)
	}
	return nil
}

// KeyCmd prints each line's canonical sort key next to the line itself,
// in input order.
type KeyCmd struct {
	presetFlag
	Files []string `arg:"" optional:"" type:"existingfile" help:"Files to read; stdin when omitted"`
}

func (c *KeyCmd) Run() error {
	lines, err := readLines(c.Files)
	if err != nil {
		return err
	}
	o := c.options()
	for _, line := range lines {
		fmt.Printf("%s\t%s\n", alphabetical.Normalize(o, line), line)
	}
	return nil
}

func readLines(files []string) ([]string, error) {
	if len(files) == 0 {
		return scanAll(os.Stdin)
	}
	var lines []string
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		fileLines, err := scanAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

func scanAll(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("alphasort"),
		kong.Description("Sort lines the way a book index or a file browser would."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
