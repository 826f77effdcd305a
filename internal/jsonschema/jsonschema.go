package jsonschema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema used to describe tool arguments and
// results. It supports objects, arrays, primitives, enums, defaults and
// per-property descriptions, which is all the tool surface needs.
type Schema struct {
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of an object schema, each with its own schema.
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Items defines the element schema for array types.
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties describes map value schemas.
	AdditionalProperties any   `json:"additionalProperties,omitempty"`
	Default              any   `json:"default,omitempty"`
	Enum                 []any `json:"enum,omitempty"`
}

// Generate derives a JSON schema for T via reflection. Field names come from
// json tags; descriptions, enums, defaults and required markers come from
// jsonschema tags. Recursive types are not supported: tool inputs and outputs
// here are flat value objects.
func Generate[T any]() *Schema {
	return generate(reflect.TypeOf((*T)(nil)).Elem())
}

func generate(t reflect.Type) *Schema {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: generate(t.Elem())}
	case reflect.Struct:
		return generateStruct(t)
	default:
		return &Schema{Type: "object"}
	}
}

func generateStruct(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := parseJSONTag(field)
		if skip {
			continue
		}

		fieldSchema := generate(field.Type)
		requiredByTag := applyTag(field, fieldSchema)

		schema.Properties[name] = fieldSchema

		// A field is required when it is a plain value without omitempty,
		// or when the jsonschema tag says so explicitly.
		if (field.Type.Kind() != reflect.Ptr && !omitEmpty) || requiredByTag {
			required = append(required, name)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

func parseJSONTag(field reflect.StructField) (name string, omitEmpty, skip bool) {
	name = field.Name
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	if tag == "" {
		return name, false, false
	}
	if idx := strings.Index(tag, ","); idx != -1 {
		if tag[:idx] != "" {
			name = tag[:idx]
		}
		omitEmpty = strings.Contains(tag[idx:], "omitempty")
	} else {
		name = tag
	}
	return name, omitEmpty, false
}

// applyTag parses the jsonschema struct tag and mutates schema accordingly.
// Supported entries: description=..., enum=... (repeatable), default=...,
// and a bare "required". Enum and default values are converted to the field's
// underlying kind. Returns whether the tag marked the field required.
func applyTag(field reflect.StructField, schema *Schema) bool {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false
	}

	requiredByTag := false
	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")
		if !hasValue {
			if key == "required" {
				requiredByTag = true
			}
			continue
		}
		switch key {
		case "description":
			schema.Description = value
		case "enum":
			if converted, err := convertValue(field.Type, value); err == nil {
				schema.Enum = append(schema.Enum, converted)
			}
		case "default":
			if converted, err := convertValue(field.Type, value); err == nil {
				schema.Default = converted
			}
		}
	}
	return requiredByTag
}

func convertValue(t reflect.Type, value string) (any, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.ParseInt(value, 10, 64)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(value, 64)
	case reflect.Bool:
		return strconv.ParseBool(value)
	default:
		return nil, fmt.Errorf("unsupported tag value type: %v", t)
	}
}

// String returns the compact JSON representation of the schema.
func (s *Schema) String() string {
	encoded, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(encoded)
}
