// Command jsonschema-validate validates a JSON instance file against a JSON
// Schema (2020-12) document.
//
// Usage:
//
//	jsonschema-validate --schema schema.json instance.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cantara/jsonschema"
)

var schemaPath = flag.String("schema", "", "path to the JSON Schema document (required)")

func main() {
	flag.Parse()

	if *schemaPath == "" {
		log.Fatal("jsonschema-validate: --schema is required")
	}
	if flag.NArg() != 1 {
		log.Fatal("jsonschema-validate: expected exactly one instance file argument")
	}
	instancePath := flag.Arg(0)

	schemaBytes, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("jsonschema-validate: reading schema: %v", err)
	}
	instanceBytes, err := os.ReadFile(instancePath)
	if err != nil {
		log.Fatalf("jsonschema-validate: reading instance: %v", err)
	}

	ctx := jsonschema.NewContext(16)
	root, err := jsonschema.ParseSchemaFromString(schemaBytes, ctx)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := jsonschema.ValidateString(instanceBytes, root, ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println("valid")
}
