// Command schemagen generates the JSON schema for the turner configuration
// file. It is run via go:generate in pkg/config.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/macropower/turner/pkg/config"
)

var outFile = flag.String("o", "schema.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	r := &jsonschema.Reflector{
		// Unrecognized options are ignored, not rejected.
		AllowAdditionalProperties: true,
	}

	err := r.AddGoComments("github.com/macropower/turner", "../../")
	if err != nil {
		log.Fatalf("add go comments: %v", err)
	}

	jss := r.Reflect(config.New())
	jss.ID = jsonschema.ID("https://raw.githubusercontent.com/macropower/turner/refs/heads/main/pkg/config/config.v1beta1.json")

	jsData, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		log.Fatalf("marshal JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, append(jsData, '\n'), 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
