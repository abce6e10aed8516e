// tegenome-repl is an interactive demo for the tegenome library: it
// drives one genome at a time through the insert/copy/disable operations
// and shows the rendered result after every mutation.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kaslund/tegenome"
)

// REPL holds the state of the interactive session.
type REPL struct {
	genome  tegenome.Genome
	backend string
	reader  *bufio.Reader
}

func main() {
	fmt.Println("tegenome REPL - Circular TE Genome Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("tegenome> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "insert":
		r.cmdInsert(args)

	case "copy":
		r.cmdCopy(args)

	case "disable":
		r.cmdDisable(args)

	case "active":
		r.cmdActive()

	case "len", "length":
		r.cmdLength()

	case "render", "dump":
		r.cmdRender()

	case "stats":
		r.cmdStats()

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

GENOME OPERATIONS:
  new <n> [ring|array]    Create a genome of n empty positions (default ring)
  insert <pos> <length>   Insert a new active element at pos
  copy <id> <offset>      Copy element id at a signed circular offset
  disable <id>            Disable an element (no-op if already inactive)

INSPECTION:
  active                  List active element ids
  len                     Show current genome length
  render                  Show the linear view ('-' empty, 'A' active, 'x' disabled)
  stats                   Show segment and element counts

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	fmt.Println(help)
}

func (r *REPL) cmdNew(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: new <n> [ring|array]")
		return
	}

	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid size: %v\n", err)
		return
	}

	backend := "ring"
	if len(args) > 1 {
		backend = strings.ToLower(args[1])
	}

	var g tegenome.Genome
	switch backend {
	case "ring":
		g, err = tegenome.New(n)
	case "array":
		g, err = tegenome.NewArray(n)
	default:
		fmt.Printf("Unknown backend %q (want ring or array)\n", backend)
		return
	}
	if err != nil {
		fmt.Printf("Error creating genome: %v\n", err)
		return
	}

	r.genome = g
	r.backend = backend
	fmt.Printf("Created %s-backed genome of length %d\n", backend, n)
}

func (r *REPL) requireGenome() bool {
	if r.genome == nil {
		fmt.Println("No genome. Use 'new <n>' first.")
		return false
	}
	return true
}

func (r *REPL) cmdInsert(args []string) {
	if !r.requireGenome() {
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: insert <pos> <length>")
		return
	}
	pos, err1 := strconv.ParseInt(args[0], 10, 64)
	length, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Println("Positions and lengths must be integers")
		return
	}

	te, err := r.genome.InsertTE(pos, length)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Inserted element %d\n%s\n", te, r.genome.Render())
}

func (r *REPL) cmdCopy(args []string) {
	if !r.requireGenome() {
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: copy <id> <offset>")
		return
	}
	id, err1 := strconv.ParseUint(args[0], 10, 64)
	offset, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Println("Ids and offsets must be integers")
		return
	}

	te, err := r.genome.CopyTE(tegenome.TEID(id), offset)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Copied element %d -> %d\n%s\n", id, te, r.genome.Render())
}

func (r *REPL) cmdDisable(args []string) {
	if !r.requireGenome() {
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: disable <id>")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println("Ids must be integers")
		return
	}

	r.genome.DisableTE(tegenome.TEID(id))
	fmt.Println(r.genome.Render())
}

func (r *REPL) cmdActive() {
	if !r.requireGenome() {
		return
	}
	ids := r.genome.ActiveTEs()
	if len(ids) == 0 {
		fmt.Println("No active elements")
		return
	}
	fmt.Printf("Active elements: %v\n", ids)
}

func (r *REPL) cmdLength() {
	if !r.requireGenome() {
		return
	}
	fmt.Printf("Length: %d\n", r.genome.Length())
}

func (r *REPL) cmdRender() {
	if !r.requireGenome() {
		return
	}
	fmt.Println(r.genome.Render())
}

func (r *REPL) cmdStats() {
	if !r.requireGenome() {
		return
	}

	var s tegenome.Stats
	switch g := r.genome.(type) {
	case *tegenome.RingGenome:
		s = g.Stats()
	case *tegenome.ArrayGenome:
		s = g.Stats()
	default:
		fmt.Println("Stats not available for this backend")
		return
	}

	fmt.Printf("Length:            %d\n", s.Length)
	fmt.Printf("Segments:          %d\n", s.Segments)
	fmt.Printf("  empty:           %d\n", s.EmptySegments)
	fmt.Printf("  active:          %d\n", s.ActiveSegments)
	fmt.Printf("  disabled:        %d\n", s.DisabledSegments)
	fmt.Printf("Active elements:   %d\n", s.ActiveElements)
}
