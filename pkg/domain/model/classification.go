package model

// ClassificationRequest is the payload sent to the classification gateway.
// Field names are part of the gateway's wire contract.
type ClassificationRequest struct {
	Comment string       `json:"comentario"`
	Image   EncodedImage `json:"imagen"`
}

// ClassificationResponse is the open JSON object returned by the
// classification gateway. Only the answer field is interpreted; everything
// else is passed through to the webhook caller untouched.
type ClassificationResponse map[string]any

// answerField is the one field of the gateway response this service reads
const answerField = "respuesta"

// Answer returns the gateway's textual answer. The second value is false
// when the gateway produced no answer, which is not an error.
func (r ClassificationResponse) Answer() (string, bool) {
	v, ok := r[answerField].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
