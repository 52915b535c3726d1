package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/siegeai/sleuth/gen"
	"github.com/siegeai/sleuth/infer"
	"github.com/siegeai/sleuth/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	file := flag.String("f", "", "json document to analyze, stdin when empty")
	format := flag.String("format", "text", "output format, one of text, json, yaml, openapi")
	genOut := flag.String("gen", "", "write go type declarations to this path, - for stdout")
	genType := flag.String("type", "Root", "name of the generated root type")
	genPkg := flag.String("pkg", "main", "package name for generated types")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	path := *file
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	node, err := infer.Document(doc)
	if err != nil {
		return err
	}

	if *genOut != "" {
		src, err := gen.File(node, *genPkg, *genType)
		if err != nil {
			return err
		}
		if *genOut == "-" {
			os.Stdout.Write(src)
			return nil
		}
		if err := os.WriteFile(*genOut, src, 0644); err != nil {
			return fmt.Errorf("write types: %w", err)
		}
		fmt.Fprintln(os.Stderr, "wrote", *genOut)
		return nil
	}

	switch *format {
	case "text":
		render.Text(os.Stdout, node)
	case "json":
		bs, err := render.JSON(node)
		if err != nil {
			return err
		}
		fmt.Println(string(bs))
	case "yaml":
		bs, err := render.YAML(node)
		if err != nil {
			return err
		}
		os.Stdout.Write(bs)
	case "openapi":
		bs, err := render.OpenAPIJSON(node)
		if err != nil {
			return err
		}
		fmt.Println(string(bs))
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	return nil
}

func readDocument(path string) ([]byte, error) {
	if path == "" {
		doc, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return doc, nil
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return doc, nil
}
