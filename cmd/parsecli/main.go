package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	goparser "github.com/qtreebank/goparser"
	"github.com/qtreebank/goparser/internal/classifier"
)

const helpText = `goparser interactive REPL

Commands:
  morphology <file>    Load the morphology TSV and build the corpus
  syntax <file>        Read syntax graphs from a text file
  list                 Show how many graphs are loaded
  show <n>             Print graph n in the text format
  oracle <n>           Print the oracle's action sequence for graph n
  elas                 Run the oracle over every graph and report ELAS
  train <file>         Build training problems and save them as JSON
  help                 Show this help message
  exit / quit          Exit the REPL
`

func main() {
	var treebank *goparser.Treebank

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("goparser — transition-based treebank parser")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		if treebank != nil {
			fmt.Printf("[%d graphs]> ", len(treebank.Graphs))
		} else {
			fmt.Print("> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Print(helpText)

		case "morphology":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: morphology <file>")
				continue
			}
			tb, err := goparser.LoadMorphologyFile(parts[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error loading %q: %v\n", parts[1], err)
				continue
			}
			treebank = tb
			fmt.Printf("loaded morphology (%d lemmas)\n", treebank.Lemmas.Count())

		case "syntax":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: syntax <file>")
				continue
			}
			if treebank == nil {
				fmt.Fprintln(os.Stderr, "load morphology first")
				continue
			}
			before := len(treebank.Graphs)
			if err := treebank.ReadSyntaxFile(parts[1]); err != nil {
				fmt.Fprintf(os.Stderr, "error reading %q: %v\n", parts[1], err)
				continue
			}
			fmt.Printf("read %d graphs\n", len(treebank.Graphs)-before)

		case "list":
			if treebank == nil {
				fmt.Println("(no treebank loaded)")
			} else {
				fmt.Printf("%d graphs loaded\n", len(treebank.Graphs))
			}

		case "show":
			g, ok := graphArg(treebank, parts)
			if !ok {
				continue
			}
			if err := g.WriteSyntax(os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "error writing graph: %v\n", err)
			}

		case "oracle":
			g, ok := graphArg(treebank, parts)
			if !ok {
				continue
			}
			gold := g.Graphs[0]
			for i, a := range goparser.Oracle(gold, gold.OnlyTokens()) {
				fmt.Printf("%3d %s\n", i+1, a)
			}

		case "elas":
			if treebank == nil {
				fmt.Fprintln(os.Stderr, "no treebank loaded")
				continue
			}
			var elas goparser.ELAS
			for _, gold := range treebank.Graphs {
				output := gold.OnlyTokens()
				goparser.Oracle(gold, output)
				elas.Compare(gold, output)
			}
			fmt.Printf("precision %.4f  recall %.4f  F1 %.4f\n", elas.Precision(), elas.Recall(), elas.F1())

		case "train":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: train <file>")
				continue
			}
			if treebank == nil {
				fmt.Fprintln(os.Stderr, "no treebank loaded")
				continue
			}
			problems, err := treebank.Train()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error training: %v\n", err)
				continue
			}
			if err := classifier.SaveJSON(problems, parts[1]); err != nil {
				fmt.Fprintf(os.Stderr, "error saving %q: %v\n", parts[1], err)
				continue
			}
			fmt.Printf("saved training problems to %q\n", parts[1])

		default:
			fmt.Fprintf(os.Stderr, "unknown command %q, type help\n", cmd)
		}
	}
}

// graphArg resolves the 1-based graph number argument of show/oracle into
// a single-graph view of the treebank.
func graphArg(treebank *goparser.Treebank, parts []string) (*goparser.Treebank, bool) {
	if treebank == nil {
		fmt.Fprintln(os.Stderr, "no treebank loaded")
		return nil, false
	}
	if len(parts) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <n>\n", parts[0])
		return nil, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 || n > len(treebank.Graphs) {
		fmt.Fprintf(os.Stderr, "no graph %q (have %d)\n", parts[1], len(treebank.Graphs))
		return nil, false
	}
	return &goparser.Treebank{
		Lemmas: treebank.Lemmas,
		Corpus: treebank.Corpus,
		Graphs: treebank.Graphs[n-1 : n],
	}, true
}
