// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// PetstoreOAS30 is a small OpenAPI 3.0 document using nullable: true in
// component schemas, inline request schemas and parameters.
const PetstoreOAS30 = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - name: tag
          in: query
          schema:
            type: string
            nullable: true
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      required:
        - id
        - name
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
        tag:
          type: string
          nullable: true
        birthday:
          type: string
          format: date
          nullable: true
        weight:
          type: number
          format: float
          description: Weight in kilograms
          nullable: true
`

// PetstoreOAS31 is PetstoreOAS30 after nullable conversion.
const PetstoreOAS31 = `openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - name: tag
          in: query
          schema:
            type: [string, "null"]
      responses:
        "200":
          description: A list of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
components:
  schemas:
    Pet:
      type: object
      required:
        - id
        - name
      properties:
        id:
          type: integer
          format: int64
        name:
          type: string
        tag:
          type: [string, "null"]
        birthday:
          type: [string, "null"]
          format: date
        weight:
          type: number
          format: float
          description: Weight in kilograms
          nullable: true
`

// WriteTempFile writes content to a file named name in a temporary directory.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}

// DecodeYAML decodes text into a generic value, failing the test on error.
func DecodeYAML(t *testing.T, text string) map[string]any {
	t.Helper()

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		t.Fatalf("Failed to decode YAML: %v", err)
	}
	return doc
}

// Lookup walks a decoded document along keys, failing the test if a key is missing.
func Lookup(t *testing.T, doc map[string]any, keys ...string) any {
	t.Helper()

	var current any = doc
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			t.Fatalf("Lookup %v: %q is not reached through a mapping", keys, key)
		}
		current, ok = m[key]
		if !ok {
			t.Fatalf("Lookup %v: missing key %q", keys, key)
		}
	}
	return current
}
