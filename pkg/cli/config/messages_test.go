package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ocelot/pkg/cli/config"
)

func TestMessagesConfigure_DefaultsWithoutFile(t *testing.T) {
	var cfg config.Messages

	messages, err := cfg.Configure()
	gt.NoError(t, err).Required()

	gt.Equal(t, messages.DefaultComment, "Mensaje desde canal sin adjunto")
}

func TestMessagesConfigure_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "no_match_answer: Sin coincidencias esta vez.\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()

	cfg := config.Messages{Path: path}

	messages, err := cfg.Configure()
	gt.NoError(t, err).Required()

	gt.Equal(t, messages.NoMatchAnswer, "Sin coincidencias esta vez.")
	// Untouched fields keep their defaults
	gt.Equal(t, messages.DefaultComment, "Mensaje desde canal sin adjunto")
}

func TestMessagesConfigure_MissingFile(t *testing.T) {
	cfg := config.Messages{Path: filepath.Join(t.TempDir(), "nope.yml")}

	_, err := cfg.Configure()
	gt.Error(t, err)
}

func TestMessagesConfigure_EmptyTextRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "apology_prefix: \"\"\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()

	cfg := config.Messages{Path: path}

	_, err := cfg.Configure()
	gt.Error(t, err)
}
