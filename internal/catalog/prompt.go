package catalog

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/phrazzld/catalog-forge/internal/domain"
)

// Prompt templates for the two generation tasks. Kept as compiled package
// state so template errors surface at startup rather than mid-batch.
var (
	productPromptTemplate = template.Must(template.New("product").Parse(productPromptText))
	poolPromptTemplate    = template.Must(template.New("pool").Parse(poolPromptText))
)

const productPromptText = `You are stocking the catalog of a fictional {{.ShopType}}.

Invent one product sold by the vendor "{{.Vendor}}" in the category "{{.Category}}".
Give it a realistic title, a two to three sentence marketing description, and a
plausible price in USD.
{{- if .Exclusions}}

The vendor already sells the following products. The new title must not match any of them:
{{- range .Exclusions}}
- {{.}}
{{- end}}
{{- end}}
`

const poolPromptText = `You are setting up a fictional {{.ShopType}}.

Invent {{.Count}} distinct {{.Kind}} for it. Each name must be short, plain text
without parentheses, brackets, slashes, colons or line breaks.
`

// productPromptData represents the data passed to the product prompt template
type productPromptData struct {
	ShopType   string
	Vendor     string
	Category   string
	Exclusions []string
}

// poolPromptData represents the data passed to the pool prompt template
type poolPromptData struct {
	ShopType string
	Count    int
	Kind     string
}

// buildProductPrompt renders the generation prompt for one combination,
// embedding the vendor, category and the exclusion list captured before the
// combination's first attempt.
func buildProductPrompt(shopType string, combo domain.Combination, exclusions []string) (string, error) {
	data := productPromptData{
		ShopType:   shopType,
		Vendor:     combo.Vendor,
		Category:   combo.Category,
		Exclusions: exclusions,
	}

	var buf bytes.Buffer
	if err := productPromptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute product prompt template: %w", err)
	}

	return buf.String(), nil
}

// buildPoolPrompt renders the prompt asking the model for a pool of names.
// Kind is a plural noun such as "vendor names" or "product categories".
func buildPoolPrompt(shopType, kind string, count int) (string, error) {
	data := poolPromptData{
		ShopType: shopType,
		Count:    count,
		Kind:     kind,
	}

	var buf bytes.Buffer
	if err := poolPromptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute pool prompt template: %w", err)
	}

	return buf.String(), nil
}
