// Package assets holds files shipped inside the binary.
package assets

import _ "embed"

// ReviewTemplateName is the default filename used by install:template
const ReviewTemplateName = "coderabbit-review-template.md"

//go:embed templates/coderabbit-review-template.md
var reviewTemplate string

// ReviewTemplate returns the Claude command template for reviewing CodeRabbit reports
func ReviewTemplate() string {
	return reviewTemplate
}
