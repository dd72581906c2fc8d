package generation

import "fmt"

// ExtractText returns the text of the first part of the first candidate.
// Additional candidates and parts are ignored.
func ExtractText(resp *Response) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyCandidates
	}

	first := resp.Candidates[0]
	if first == nil || first.Content == nil || len(first.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: first candidate has no parts", ErrEmptyCandidates)
	}

	part := first.Content.Parts[0]
	if kind := part.Kind(); kind != PartKindText {
		return "", fmt.Errorf("%w: got %s", ErrUnexpectedPartKind, kind)
	}
	return *part.Text, nil
}
