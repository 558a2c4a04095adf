// Package extraction builds schema-driven function-call requests that turn
// permit source documents into a fixed-shape information record. One
// canonical schema feeds two transports: the managed Gemini SDK for locally
// attached files, and the raw Vertex AI REST API for pre-fetched content.
package extraction

// FunctionName is the forced structured-output function the model must call.
const FunctionName = "information_extractor"

// FunctionDescription describes the extractor function to the model.
const FunctionDescription = "Extracts structured information from the provided document."

// CustomSectionSpec is a user-defined extra field: a section title plus a
// natural-language description of what to extract for it.
type CustomSectionSpec struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ValidSpecs filters out specs with an empty title or empty description.
// Invalid specs are dropped silently, never erred; duplicates pass through
// as given.
func ValidSpecs(specs []CustomSectionSpec) []CustomSectionSpec {
	var valid []CustomSectionSpec
	for _, s := range specs {
		if s.Title != "" && s.Description != "" {
			valid = append(valid, s)
		}
	}
	return valid
}

// CustomSectionContent is one extracted custom section in the result.
type CustomSectionContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PermitFee is one permit-and-fee record.
type PermitFee struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Fee  string `json:"fee"`
}

// TimelineEntry is one step of the expected process timeline.
type TimelineEntry struct {
	Step     string `json:"step"`
	Duration string `json:"duration"`
}

// Resource is one helpful but non-essential reference.
type Resource struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Department is one involved department with its main page.
type Department struct {
	Department string `json:"department"`
	Link       string `json:"link"`
}

// ExtractedContent is the fixed-shape extraction result. Every field is
// always produced by the model; missing information is represented by the
// "not available" sentinel string, never by an omitted key.
type ExtractedContent struct {
	ShortSummary             string                 `json:"shortSummary"`
	WhoCanApply              []string               `json:"whoCanApply"`
	AssociatedPermitsAndFees []PermitFee            `json:"associatedPermitsAndFees"`
	ProcessTimeline          []TimelineEntry        `json:"processTimeline"`
	ProcessSteps             []string               `json:"processSteps"`
	DepartmentContact        string                 `json:"departmentContact"`
	RelatedResources         []Resource             `json:"relatedResources"`
	WhoIsInvolved            []Department           `json:"whoIsInvolved"`
	CustomSections           []CustomSectionContent `json:"customSections,omitempty"`
}
