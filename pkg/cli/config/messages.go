package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Messages holds the optional reply-texts file configuration
type Messages struct {
	Path string
}

// Flags returns CLI flags for Messages configuration
func (m *Messages) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "messages-file",
			Usage:       "YAML file overriding the thread reply texts",
			Category:    "Messages",
			Sources:     cli.EnvVars("OCELOT_MESSAGES_FILE"),
			Destination: &m.Path,
		},
	}
}

// Configure returns the reply texts: built-in defaults, overlaid with the
// YAML file when one is given. Fields missing from the file keep their
// defaults.
func (m *Messages) Configure() (model.Messages, error) {
	messages := model.DefaultMessages()
	if m.Path == "" {
		return messages, nil
	}

	data, err := os.ReadFile(m.Path)
	if err != nil {
		return model.Messages{}, goerr.Wrap(err, "failed to read messages file",
			goerr.V("path", m.Path))
	}

	if err := yaml.Unmarshal(data, &messages); err != nil {
		return model.Messages{}, goerr.Wrap(err, "failed to parse messages file",
			goerr.V("path", m.Path))
	}

	if err := messages.Validate(); err != nil {
		return model.Messages{}, goerr.Wrap(err, "invalid messages file",
			goerr.V("path", m.Path))
	}

	return messages, nil
}
