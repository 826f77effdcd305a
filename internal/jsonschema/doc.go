// Package jsonschema generates JSON Schema documents for tool input and
// output types via reflection, driven by json and jsonschema struct tags.
package jsonschema
