package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed catalog.json
var catalogJSON []byte

//go:embed catalog_schema.json
var catalogSchemaJSON []byte

var (
	loadOnce sync.Once
	catalog  *Catalog
	loadErr  error
)

// Load parses and validates the embedded catalog. The result is cached;
// every caller sees the same immutable Catalog.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		catalog, loadErr = parse(catalogJSON)
	})
	return catalog, loadErr
}

// parse validates raw catalog JSON against the embedded schema and decodes it.
func parse(raw []byte) (*Catalog, error) {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("catalog_schema.json", schemaDoc); err != nil {
		return nil, fmt.Errorf("add catalog schema: %w", err)
	}
	schema, err := compiler.Compile("catalog_schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	// The schema constrains option count and answer range; cross-field
	// consistency still needs a check here.
	for i, q := range c.Questions {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return nil, fmt.Errorf("question %d: answer index %d out of range", i, q.Answer)
		}
	}

	return &c, nil
}
