// Package extraction - serialize.go renders the canonical schema into the
// two wire formats: the SDK's enum-typed genai.Schema and the REST API's
// string-typed nodes.
package extraction

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/jonathan/permit-navigator/internal/llm"
)

// VertexTool renders the schema as the REST tools entry.
func VertexTool(root Field) llm.Tool {
	return llm.Tool{
		FunctionDeclarations: []llm.FunctionDeclaration{{
			Name:        FunctionName,
			Description: FunctionDescription,
			Parameters:  vertexNode(root),
		}},
	}
}

// GenAIDeclaration renders the schema as the managed SDK's function
// declaration.
func GenAIDeclaration(root Field) *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        FunctionName,
		Description: FunctionDescription,
		Parameters:  genaiSchema(root),
	}
}

func vertexNode(f Field) *llm.SchemaNode {
	node := &llm.SchemaNode{
		Type:        string(f.Kind),
		Description: f.Description,
	}
	if f.Items != nil {
		node.Items = vertexNode(*f.Items)
	}
	if len(f.Properties) > 0 {
		node.Properties = make(map[string]*llm.SchemaNode, len(f.Properties))
		for _, prop := range f.Properties {
			node.Properties[prop.Name] = vertexNode(prop)
			if prop.Required {
				node.Required = append(node.Required, prop.Name)
			}
		}
	}
	return node
}

func genaiSchema(f Field) *genai.Schema {
	schema := &genai.Schema{
		Type:        genaiType(f.Kind),
		Description: f.Description,
	}
	if f.Items != nil {
		schema.Items = genaiSchema(*f.Items)
	}
	if len(f.Properties) > 0 {
		schema.Properties = make(map[string]*genai.Schema, len(f.Properties))
		for _, prop := range f.Properties {
			schema.Properties[prop.Name] = genaiSchema(prop)
			if prop.Required {
				schema.Required = append(schema.Required, prop.Name)
			}
		}
	}
	return schema
}

func genaiType(k Kind) genai.Type {
	switch k {
	case KindString:
		return genai.TypeString
	case KindArray:
		return genai.TypeArray
	case KindObject:
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}
