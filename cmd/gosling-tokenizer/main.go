package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gosling-lang/gosling-tokenizer/pkg/tokenizer"
	"gopkg.in/yaml.v3"
)

const (
	version = "0.1.0"
	usage   = `gosling-tokenizer - A tokenizer for the Gosling programming language

Usage:
  gosling-tokenizer [options]

Options:
  -h, --help            Show this help message
  -v, --version         Show version information
  --input <file>        Input file (defaults to stdin)
  --output <file>       Output file (defaults to stdout)
  --format <fmt>        Output format: jsonl (default) or yaml
  --exit0               Exit with code 0 even on tokenisation errors

Examples:
  gosling-tokenizer                                  # Read from stdin, write to stdout
  gosling-tokenizer --input main.gos                 # Read from file, write to stdout
  gosling-tokenizer --input main.gos --output tokens.json
  gosling-tokenizer --input main.gos --format yaml   # Emit one YAML document
  echo 'fn main() {}' | gosling-tokenizer            # Read from stdin, write to stdout

With the jsonl format the tokenizer outputs one JSON token object per line.
Tokens produced before a tokenisation error are still written out.
`
)

func main() {
	var showHelp, showVersion, exit0 bool
	var inputFile, outputFile, format string

	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&exit0, "exit0", false, "Exit with code 0 even on errors")
	flag.StringVar(&inputFile, "input", "", "Input file (defaults to stdin)")
	flag.StringVar(&outputFile, "output", "", "Output file (defaults to stdout)")
	flag.StringVar(&format, "format", "jsonl", "Output format: jsonl or yaml")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("gosling-tokenizer version %s\n", version)
		os.Exit(0)
	}

	if format != "jsonl" && format != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: Unknown output format '%s' (expected jsonl or yaml)\n", format)
		os.Exit(1)
	}

	// Reject any positional arguments
	if len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var input string
	var err error
	fileName := inputFile
	if inputFile == "" {
		fileName = "<stdin>"
		input, err = readFromStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
	} else {
		input, err = readFromFile(inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", inputFile, err)
			os.Exit(1)
		}
	}

	tokens, lexErr := tokenizer.Lex(fileName, input)

	// Prepare output destination
	var output io.Writer
	var outputCloser io.Closer

	if outputFile == "" {
		output = os.Stdout
	} else {
		file, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file '%s': %v\n", outputFile, err)
			os.Exit(1)
		}
		output = file
		outputCloser = file
	}

	// Output whatever tokens were produced, even if there was an error
	if err := writeTokens(output, tokens, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tokens: %v\n", err)
		os.Exit(1)
	}

	if outputCloser != nil {
		if err := outputCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing output file '%s': %v\n", outputFile, err)
			os.Exit(1)
		}
	}

	// Handle tokenisation error after outputting tokens
	if lexErr != nil {
		if exit0 {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Tokenization error: %v\n", lexErr)
		os.Exit(1)
	}
}

// writeTokens emits the token stream as JSON lines or as one YAML document.
func writeTokens(output io.Writer, tokens []*tokenizer.Token, format string) error {
	if format == "yaml" {
		yamlBytes, err := yaml.Marshal(tokens)
		if err != nil {
			return err
		}
		_, err = output.Write(yamlBytes)
		return err
	}
	for _, token := range tokens {
		jsonBytes, err := json.Marshal(token)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(output, string(jsonBytes)); err != nil {
			return err
		}
	}
	return nil
}

// readFromStdin reads all input from stdin.
func readFromStdin() (string, error) {
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// readFromFile reads the contents of a file.
func readFromFile(filename string) (string, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
