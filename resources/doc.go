// Package resources holds the server's static documents and prompt
// templates: URI-addressable resources such as the financial disclaimer,
// and named prompts such as the budgeting walkthrough.
package resources
