// Package extraction - schema.go holds the canonical extractor schema.
// The schema is described once, transport-agnostically; serialize.go turns
// it into the enum-typed SDK shape or the string-typed REST shape. New
// transports add a serializer, never a second copy of this description.
package extraction

// Kind is the canonical type tag of a schema field.
type Kind string

const (
	// KindString is a plain string field
	KindString Kind = "string"
	// KindArray is an array field; Items describes the element shape
	KindArray Kind = "array"
	// KindObject is an object field; Properties describe its members
	KindObject Kind = "object"
)

// Field describes one node of the canonical schema: name, kind, nested
// shape, description, and required-ness within its parent object.
type Field struct {
	Name        string
	Kind        Kind
	Description string
	Required    bool
	Items       *Field  // element shape when Kind == KindArray
	Properties  []Field // members, in order, when Kind == KindObject
}

// stringArray is a shorthand for a required array-of-strings field.
func stringArray(name, description string) Field {
	return Field{
		Name:        name,
		Kind:        KindArray,
		Description: description,
		Required:    true,
		Items:       &Field{Kind: KindString},
	}
}

// baseFields returns the fixed field set of the extractor schema.
func baseFields() []Field {
	return []Field{
		{
			Name: "shortSummary", Kind: KindString, Required: true,
			Description: "In 2-3 short, simple sentences, summarize the project and what the applicant can expect. Write in plain language for a general audience.",
		},
		stringArray("whoCanApply", "A list of who is eligible to apply. Use simple terms."),
		{
			Name: "associatedPermitsAndFees", Kind: KindArray, Required: true,
			Description: "A list of any permits and fees needed.",
			Items: &Field{
				Kind: KindObject,
				Properties: []Field{
					{Name: "name", Kind: KindString, Required: true},
					{Name: "link", Kind: KindString, Required: true, Description: "Full URL to the permit page."},
					{Name: "fee", Kind: KindString, Required: true, Description: "The cost of the permit."},
				},
			},
		},
		{
			Name: "processTimeline", Kind: KindArray, Required: true,
			Description: "Expected timeline for each step of the process.",
			Items: &Field{
				Kind: KindObject,
				Properties: []Field{
					{Name: "step", Kind: KindString, Required: true, Description: "Name of the process step, written in plain language."},
					{Name: "duration", Kind: KindString, Required: true, Description: "Expected time for this step (e.g., '2-3 weeks')."},
				},
			},
		},
		stringArray("processSteps", "A list of the specific steps to follow, written as clear, actionable instructions in plain language. Use active voice."),
		{
			Name: "departmentContact", Kind: KindString, Required: true,
			Description: "The best contact information for questions. For example, a phone number, email, or office name.",
		},
		{
			Name: "relatedResources", Kind: KindArray, Required: true,
			Description: "List of helpful but non-essential resources.",
			Items: &Field{
				Kind: KindObject,
				Properties: []Field{
					{Name: "title", Kind: KindString, Required: true},
					{Name: "link", Kind: KindString, Required: true},
					{Name: "description", Kind: KindString, Required: true, Description: "A short, plain-language description of what the resource is."},
				},
			},
		},
		{
			Name: "whoIsInvolved", Kind: KindArray, Required: true,
			Description: "A list of departments involved. Use the official department name but link to their main page.",
			Items: &Field{
				Kind: KindObject,
				Properties: []Field{
					{Name: "department", Kind: KindString, Required: true},
					{Name: "link", Kind: KindString, Required: true, Description: "Full URL to the department page."},
				},
			},
		},
	}
}

// customSectionsField describes the optional customSections array appended
// when valid custom-field specs exist. It is not part of the root required
// list.
func customSectionsField() Field {
	return Field{
		Name:        "customSections",
		Kind:        KindArray,
		Description: "An array containing the extracted content for the custom-defined sections.",
		Items: &Field{
			Kind: KindObject,
			Properties: []Field{
				{Name: "title", Kind: KindString, Required: true, Description: "The title of the custom section, exactly as provided in the prompt."},
				{Name: "content", Kind: KindString, Required: true, Description: "The extracted content for this section, based on its description."},
			},
		},
	}
}

// DynamicSchema returns the root schema object: the fixed field set plus,
// if and only if at least one valid custom-field spec exists, the
// customSections field.
func DynamicSchema(specs []CustomSectionSpec) Field {
	root := Field{
		Kind:       KindObject,
		Properties: baseFields(),
	}
	if len(ValidSpecs(specs)) > 0 {
		root.Properties = append(root.Properties, customSectionsField())
	}
	return root
}
