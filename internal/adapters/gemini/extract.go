package gemini

// DefaultMimeType is assumed when an inline part has no MIME type
const DefaultMimeType = "image/png"

// InlineImage is an image payload extracted from a response
type InlineImage struct {
	Data     string
	MimeType string
}

// ExtractImage returns the first inline data part of the first candidate.
// It reports false when that part is absent or carries no data.
func ExtractImage(resp *GenerateContentResponse) (*InlineImage, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, false
	}

	content := resp.Candidates[0].Content
	if content == nil {
		return nil, false
	}

	for _, part := range content.Parts {
		if part.InlineData == nil {
			continue
		}
		if part.InlineData.Data == "" {
			return nil, false
		}

		mimeType := part.InlineData.MimeType
		if mimeType == "" {
			mimeType = DefaultMimeType
		}
		return &InlineImage{Data: part.InlineData.Data, MimeType: mimeType}, true
	}

	return nil, false
}
