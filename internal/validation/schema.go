package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrStateInvalid tags every editor-state schema failure so callers can match
// with errors.Is without inspecting issue details.
var ErrStateInvalid = errors.New("validation: editor state invalid")

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrStateInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrStateInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateState validates a decoded editor-state payload against the embedded
// schema. The payload should be the result of json.Unmarshal into any.
func ValidateState(payload any) error {
	compiled, err := stateSchema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStateInvalid, err)
	}
	if err := compiled.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// editorStateSchema is deliberately permissive: it pins the envelope and node
// shapes without enumerating node types, so editors can carry extra fields
// that decode as no-op nodes.
const editorStateSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["root"],
	"properties": {
		"root": {"$ref": "#/$defs/node"}
	},
	"$defs": {
		"node": {
			"type": "object",
			"required": ["type"],
			"properties": {
				"type": {"type": "string"},
				"children": {
					"type": "array",
					"items": {"$ref": "#/$defs/node"}
				},
				"tag": {"type": "string"},
				"text": {"type": "string"},
				"format": {"type": ["integer", "string"]},
				"listType": {"type": "string"},
				"url": {"type": "string"}
			}
		}
	}
}`

var (
	stateSchemaOnce sync.Once
	stateSchemaVal  *jsonschema.Schema
	stateSchemaErr  error
)

func stateSchema() (*jsonschema.Schema, error) {
	stateSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("editor-state.json", strings.NewReader(editorStateSchema)); err != nil {
			stateSchemaErr = err
			return
		}
		stateSchemaVal, stateSchemaErr = compiler.Compile("editor-state.json")
	})
	return stateSchemaVal, stateSchemaErr
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
