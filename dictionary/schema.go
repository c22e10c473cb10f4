package dictionary

import "github.com/fulmenhq/matchkit/schema"

// manifestSchema is the JSON Schema a decoded manifest document must satisfy
// before it is trusted: a non-empty "words" array of strings, plus optional
// descriptive metadata.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "source": {"type": "string"},
    "words": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "minItems": 1
    }
  },
  "required": ["words"],
  "additionalProperties": false
}`

var manifestValidator *schema.Validator

func init() {
	v, err := schema.NewValidator([]byte(manifestSchema))
	if err != nil {
		panic("dictionary: failed to compile embedded manifest schema: " + err.Error())
	}
	manifestValidator = v
}
