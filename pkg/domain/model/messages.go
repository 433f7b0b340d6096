package model

import "github.com/m-mizutani/goerr/v2"

// Messages holds the user-visible texts posted into the thread. The defaults
// are the wire contract of the triggering workflow; a YAML file may override
// them per deployment.
type Messages struct {
	// DefaultComment is used when the webhook payload carries no comentario
	DefaultComment string `yaml:"default_comment"`
	// ApologyPrefix prefixes the error detail on recovered image failures
	ApologyPrefix string `yaml:"apology_prefix"`
	// NoMatchAnswer is posted when the gateway returns no answer field
	NoMatchAnswer string `yaml:"no_match_answer"`
}

// DefaultMessages returns the built-in reply texts
func DefaultMessages() Messages {
	return Messages{
		DefaultComment: "Mensaje desde canal sin adjunto",
		ApologyPrefix:  "⚠️ No se pudo leer la imagen: ",
		NoMatchAnswer:  "No se detectó comercial.",
	}
}

// Validate checks that no reply text is empty
func (m *Messages) Validate() error {
	if m.DefaultComment == "" {
		return goerr.New("default_comment must not be empty")
	}
	if m.ApologyPrefix == "" {
		return goerr.New("apology_prefix must not be empty")
	}
	if m.NoMatchAnswer == "" {
		return goerr.New("no_match_answer must not be empty")
	}
	return nil
}

// Apology formats the thread reply for a recovered image failure
func (m Messages) Apology(detail string) string {
	return m.ApologyPrefix + detail
}
