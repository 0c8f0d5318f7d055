package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParsedProduct represents the structured fields extracted from a single
// product-generation response. Price is carried through as an opaque string;
// no semantic validation of the amount is performed here.
type ParsedProduct struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// ProductSchemaHint is the format description sent alongside product prompts
// so the model emits output ParseProduct understands.
const ProductSchemaHint = `Respond with a single JSON object with exactly these string fields: ` +
	`"title", "description", "price". The price is a USD amount like "19.99". ` +
	`Do not include any text outside the JSON object.`

// NameListSchemaHint is the format description for pool-generation prompts.
const NameListSchemaHint = `Respond with a single JSON array of strings and nothing else, ` +
	`for example: ["first name", "second name"].`

// ParseProduct extracts title, description and price from the raw output of a
// text generation call. It returns an error wrapping ErrInvalidResponse when
// the payload is not valid JSON or any of the three fields is missing or
// empty. Parsing is pure: the same raw input always yields the same result.
func ParseProduct(raw string) (*ParsedProduct, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response body", ErrInvalidResponse)
	}

	var parsed ParsedProduct
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
	}

	if parsed.Title == "" {
		return nil, fmt.Errorf("%w: missing title field", ErrInvalidResponse)
	}
	if parsed.Description == "" {
		return nil, fmt.Errorf("%w: missing description field", ErrInvalidResponse)
	}
	if parsed.Price == "" {
		return nil, fmt.Errorf("%w: missing price field", ErrInvalidResponse)
	}

	return &parsed, nil
}

// ParseNameList extracts a list of names from the raw output of a
// pool-generation call. An empty list is treated as an invalid response;
// blank entries are rejected rather than silently dropped so that a
// half-formed pool is retried as a whole.
func ParseNameList(raw string) ([]string, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response body", ErrInvalidResponse)
	}

	var names []string
	if err := json.Unmarshal([]byte(cleaned), &names); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON array: %v", ErrInvalidResponse, err)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty name list", ErrInvalidResponse)
	}

	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: blank name at index %d", ErrInvalidResponse, i)
		}
	}

	return names, nil
}

// stripCodeFences removes a surrounding markdown code block (```json ... ```
// or ``` ... ```) and whitespace from an LLM response. Models frequently wrap
// JSON output in fences even when told not to.
func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}
