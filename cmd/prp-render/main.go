// Command prp-render reads a PRP document (markdown or JSON) from a file or
// stdin, runs it through the rendering pipeline, and prints the classified
// document as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	prp "github.com/goliatone/go-prp"
	"github.com/goliatone/go-prp/internal/logging/gologger"
)

func main() {
	var (
		filePath    = flag.String("file", "", "Document to render (defaults to stdin)")
		inputJSON   = flag.Bool("json", false, "Treat input as a JSON document instead of markdown")
		pruneNested = flag.Bool("prune-nested", false, "Prune empty values in nested objects, not just the top level")
		logLevel    = flag.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
		logFormat   = flag.String("log-format", "console", "Log format (json, console, pretty)")
	)

	flag.Parse()

	source, err := readSource(*filePath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	cfg := prp.DefaultConfig()
	cfg.Normalizer.PruneNested = *pruneNested
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	service, err := prp.New(cfg, prp.WithLoggerProvider(provider))
	if err != nil {
		log.Fatalf("build service: %v", err)
	}

	input, err := resolveInput(source, *inputJSON)
	if err != nil {
		log.Fatalf("decode input: %v", err)
	}

	rendered, err := service.Render(context.Background(), input)
	if err != nil {
		log.Fatalf("render document: %v", err)
	}

	out, err := json.MarshalIndent(rendered, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}

func readSource(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func resolveInput(source string, asJSON bool) (any, error) {
	if !asJSON {
		return source, nil
	}

	var input any
	if err := json.Unmarshal([]byte(source), &input); err != nil {
		return nil, err
	}
	return input, nil
}
