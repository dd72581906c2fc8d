package generation

// Content is one turn of a conversation with the model.
type Content struct {
	Role  string  `json:"role,omitempty"`
	Parts []*Part `json:"parts"`
}

// PartKind identifies which variant of Part is populated.
type PartKind string

const (
	PartKindText         PartKind = "text"
	PartKindInlineData   PartKind = "inline_data"
	PartKindFileData     PartKind = "file_data"
	PartKindFunctionCall PartKind = "function_call"
	PartKindUnknown      PartKind = "unknown"
)

// Part is a tagged variant: exactly one field is expected to be set.
// Text is a pointer so that an empty text part is distinguishable from a
// part carrying something else.
type Part struct {
	Text         *string       `json:"text,omitempty"`
	InlineData   *Blob         `json:"inlineData,omitempty"`
	FileData     *FileData     `json:"fileData,omitempty"`
	FunctionCall *FunctionCall `json:"functionCall,omitempty"`
}

// NewTextPart returns a part holding s.
func NewTextPart(s string) *Part {
	return &Part{Text: &s}
}

// Kind reports which variant p holds.
func (p *Part) Kind() PartKind {
	switch {
	case p == nil:
		return PartKindUnknown
	case p.Text != nil:
		return PartKindText
	case p.InlineData != nil:
		return PartKindInlineData
	case p.FileData != nil:
		return PartKindFileData
	case p.FunctionCall != nil:
		return PartKindFunctionCall
	default:
		return PartKindUnknown
	}
}

// Blob is inline binary data; Data is base64 on the wire.
type Blob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// FileData references content stored elsewhere.
type FileData struct {
	MIMEType string `json:"mimeType"`
	FileURI  string `json:"fileUri"`
}

// FunctionCall is a tool invocation requested by the model.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// GenerationConfig holds the sampling parameters sent with every request.
type GenerationConfig struct {
	MaxOutputTokens int32   `json:"maxOutputTokens"`
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	TopK            float32 `json:"topK"`
}

// Request is the generateContent request body.
type Request struct {
	Contents         []*Content        `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Response is the generateContent response body.
type Response struct {
	Candidates    []*Candidate   `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

// Candidate is one alternative generation.
type Candidate struct {
	Content          *Content          `json:"content,omitempty"`
	CitationMetadata *CitationMetadata `json:"citationMetadata,omitempty"`
	SafetyRatings    []*SafetyRating   `json:"safetyRatings,omitempty"`
	FinishReason     string            `json:"finishReason,omitempty"`
}

// CitationMetadata lists the sources a candidate quotes.
type CitationMetadata struct {
	Citations []*Citation `json:"citations"`
}

// Citation marks a span of the output attributed to a source.
type Citation struct {
	StartIndex int32  `json:"startIndex"`
	EndIndex   int32  `json:"endIndex"`
	URI        string `json:"uri,omitempty"`
}

// SafetyRating is the model's assessment for one harm category.
type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
	Blocked     bool   `json:"blocked,omitempty"`
}

// UsageMetadata reports token accounting for the call.
type UsageMetadata struct {
	PromptTokenCount     int32 `json:"promptTokenCount"`
	CandidatesTokenCount int32 `json:"candidatesTokenCount"`
	TotalTokenCount      int32 `json:"totalTokenCount"`
}
