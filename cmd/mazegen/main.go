// Command mazegen prints a generated maze as text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/backtrack-maze/maze"
)

const (
	entryGlyph = 'E'
	exitGlyph  = 'X'
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	width := fs.Int("width", 10, "Number of cells per row (minimum 2)")
	height := fs.Int("height", 8, "Number of cells per column (minimum 2)")
	seed := fs.Int64("seed", 0, "Seed for the random source (default: time based)")
	attempts := fs.Int("attempts", 0, "Random exit placement attempts before scanning the border (0 keeps the default)")
	output := fs.String("output", "", "Write the maze to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var opts []maze.Option
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts = append(opts, maze.WithSeed(*seed))
		}
	})
	if *attempts > 0 {
		opts = append(opts, maze.WithExitAttempts(*attempts))
	}

	g, err := maze.New(*width, *height, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	m, err := g.Generate()
	if err != nil {
		fmt.Fprintf(stderr, "Error generating maze: %v\n", err)
		return 1
	}

	out := stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating file: %v\n", err)
			return 1
		}
		defer file.Close()
		out = file
	}

	fmt.Fprint(out, render(m))
	fmt.Fprintf(out, "entry=(%d,%d) exit=(%d,%d) seed=%d\n", m.Entry.X, m.Entry.Y, m.Exit.X, m.Exit.Y, m.Seed)
	return 0
}

// render draws the grid with the entry and exit marked.
func render(m *maze.Maze) string {
	var b strings.Builder
	for y, row := range m.Grid.Rows() {
		line := []rune(row)
		if m.Entry.Y == y {
			line[m.Entry.X] = entryGlyph
		}
		if m.Exit.Y == y {
			line[m.Exit.X] = exitGlyph
		}
		b.WriteString(string(line))
		b.WriteByte('\n')
	}
	return b.String()
}
