// Package schemas embeds the JSON Schemas for the YAML documents the engine
// consumes.
package schemas

import _ "embed"

//go:embed catalog.schema.json
var CatalogSchemaJSON string

//go:embed profile.schema.json
var ProfileSchemaJSON string

//go:embed criteria.schema.json
var CriteriaSchemaJSON string
