package gemini

// Response modalities requested for image generation
const (
	ModalityText  = "TEXT"
	ModalityImage = "IMAGE"
)

// GenerateContentRequest is the generateContent request body
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// GenerationConfig controls what the model returns
type GenerationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

// Content is one turn of the conversation
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds either text or inline binary data
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData is a base64-encoded payload with its MIME type
type InlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

// GenerateContentResponse is the generateContent response body
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated answer
type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// NewImageRequest builds a single-turn request asking for text and image output
func NewImageRequest(prompt string) *GenerateContentRequest {
	return &GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: GenerationConfig{
			ResponseModalities: []string{ModalityText, ModalityImage},
		},
	}
}
