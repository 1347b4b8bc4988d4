package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/pqc-tools/pqadvise/schemas"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// catalogSchema is the compiled JSON Schema for catalog YAML files.
var catalogSchema *jsonschema.Schema

// profileSchema is the compiled JSON Schema for deployment profile files.
var profileSchema *jsonschema.Schema

// criteriaSchema is the compiled JSON Schema for criteria files.
var criteriaSchema *jsonschema.Schema

func init() {
	catalogSchema = mustCompileSchema(schemas.CatalogSchemaJSON, "catalog.schema.json")
	profileSchema = mustCompileSchema(schemas.ProfileSchemaJSON, "profile.schema.json")
	criteriaSchema = mustCompileSchema(schemas.CriteriaSchemaJSON, "criteria.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// DocKind identifies which document schema to validate against.
type DocKind string

const (
	DocCatalog  DocKind = "catalog"
	DocProfile  DocKind = "profile"
	DocCriteria DocKind = "criteria"
)

// ValidateFile validates a YAML document file against the schema for kind.
func ValidateFile(kind DocKind, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s file: %w", kind, err)
	}
	return ValidateBytes(kind, data)
}

// ValidateBytes validates raw YAML bytes against the schema for kind.
func ValidateBytes(kind DocKind, data []byte) ([]string, error) {
	var schema *jsonschema.Schema
	switch kind {
	case DocCatalog:
		schema = catalogSchema
	case DocProfile:
		schema = profileSchema
	case DocCriteria:
		schema = criteriaSchema
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
	return validateYAMLBytes(schema, data), nil
}

func validateYAMLBytes(schema *jsonschema.Schema, data []byte) []string {
	// Parse YAML into generic any
	var yamlDoc any
	if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}

	// Convert to JSON-compatible types (yaml.v3 uses map[string]any which is fine)
	jsonCompatible := convertToJSONCompatible(yamlDoc)

	return validateAgainstSchema(schema, jsonCompatible)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// convertToJSONCompatible converts YAML-decoded values to JSON-compatible types.
// yaml.v3 decodes to map[string]any which is fine, but integers need to stay as-is.
func convertToJSONCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[k] = convertToJSONCompatible(v2)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v2 := range val {
			result[i] = convertToJSONCompatible(v2)
		}
		return result
	default:
		return val
	}
}
