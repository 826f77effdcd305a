package jsonschema

import (
	"testing"
)

type sampleInput struct {
	Symbol   string   `json:"symbol" jsonschema:"description=Ticker symbol,required"`
	Currency string   `json:"currency,omitempty" jsonschema:"description=Display currency,default=MXN"`
	Limit    int      `json:"limit,omitempty" jsonschema:"description=Row limit"`
	Verbose  *bool    `json:"verbose,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Depth    string   `json:"depth,omitempty" jsonschema:"enum=basic,enum=advanced"`
	hidden   string
	Ignored  string `json:"-"`
}

func TestGenerateStruct(t *testing.T) {
	schema := Generate[sampleInput]()

	if schema.Type != "object" {
		t.Errorf("expected object schema, got %q", schema.Type)
	}

	if len(schema.Properties) != 6 {
		t.Errorf("expected 6 properties, got %d", len(schema.Properties))
	}

	if _, exists := schema.Properties["hidden"]; exists {
		t.Error("unexported field must not appear in schema")
	}
	if _, exists := schema.Properties["Ignored"]; exists {
		t.Error("json:\"-\" field must not appear in schema")
	}

	symbol := schema.Properties["symbol"]
	if symbol.Type != "string" {
		t.Errorf("expected string type for symbol, got %q", symbol.Type)
	}
	if symbol.Description != "Ticker symbol" {
		t.Errorf("unexpected description: %q", symbol.Description)
	}

	if len(schema.Required) != 1 || schema.Required[0] != "symbol" {
		t.Errorf("expected only 'symbol' required, got %v", schema.Required)
	}
}

func TestGenerateTagValues(t *testing.T) {
	schema := Generate[sampleInput]()

	currency := schema.Properties["currency"]
	if currency.Default != "MXN" {
		t.Errorf("expected default MXN, got %v", currency.Default)
	}

	depth := schema.Properties["depth"]
	if len(depth.Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(depth.Enum))
	}
	if depth.Enum[0] != "basic" || depth.Enum[1] != "advanced" {
		t.Errorf("unexpected enum values: %v", depth.Enum)
	}
}

func TestGenerateKinds(t *testing.T) {
	tests := []struct {
		name     string
		schema   *Schema
		expected string
	}{
		{"string", Generate[string](), "string"},
		{"bool", Generate[bool](), "boolean"},
		{"float", Generate[float64](), "number"},
		{"int", Generate[int](), "integer"},
		{"slice", Generate[[]int](), "array"},
		{"map", Generate[map[string]float64](), "object"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if testCase.schema.Type != testCase.expected {
				t.Errorf("expected type %q, got %q", testCase.expected, testCase.schema.Type)
			}
		})
	}

	slice := Generate[[]int]()
	if slice.Items == nil || slice.Items.Type != "integer" {
		t.Error("expected integer items schema for []int")
	}
}

func TestGeneratePointerFieldsOptional(t *testing.T) {
	type withPtr struct {
		HasHeader *bool `json:"has_header,omitempty" jsonschema:"description=Whether the first line is a header row"`
	}
	schema := Generate[withPtr]()
	if len(schema.Required) != 0 {
		t.Errorf("pointer field must be optional, required=%v", schema.Required)
	}
	if schema.Properties["has_header"].Type != "boolean" {
		t.Errorf("expected boolean, got %q", schema.Properties["has_header"].Type)
	}
}

func TestSchemaString(t *testing.T) {
	schema := Generate[sampleInput]()
	encoded := schema.String()
	if encoded == "" || encoded[0] != '{' {
		t.Errorf("expected JSON object output, got %q", encoded)
	}
}
