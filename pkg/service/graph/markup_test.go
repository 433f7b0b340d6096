package graph_test

import (
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/secmon-lab/ocelot/pkg/domain/types"
	"github.com/secmon-lab/ocelot/pkg/service/graph"
)

func testRef() model.MessageRef {
	return model.MessageRef{
		TeamID:    types.TeamID("T1"),
		ChannelID: types.ChannelID("C1"),
		MessageID: types.MessageID("M1"),
	}
}

func TestExtractImageSources_DocumentOrder(t *testing.T) {
	markup := `<div><img src="https://example.com/a.png"><p>text</p><img src="./blob/b"></div>`

	srcs := graph.ExtractImageSources(markup)

	gt.Equal(t, len(srcs), 2)
	gt.Equal(t, srcs[0], "https://example.com/a.png")
	gt.Equal(t, srcs[1], "./blob/b")
}

func TestExtractImageSources_DoubleEncodedMarkup(t *testing.T) {
	// The backend may entity-encode the whole body content
	markup := `&lt;div&gt;&lt;img src=&quot;https://example.com/a.png&quot;&gt;&lt;/div&gt;`

	srcs := graph.ExtractImageSources(markup)

	gt.Equal(t, len(srcs), 1)
	gt.Equal(t, srcs[0], "https://example.com/a.png")
}

func TestExtractImageSources_NoImages(t *testing.T) {
	srcs := graph.ExtractImageSources(`<p>just text, no attachments</p>`)
	gt.Equal(t, len(srcs), 0)
}

func TestExtractImageSources_SkipsImagesWithoutSrc(t *testing.T) {
	srcs := graph.ExtractImageSources(`<img alt="broken"><img src="./blob/x">`)

	gt.Equal(t, len(srcs), 1)
	gt.Equal(t, srcs[0], "./blob/x")
}

func TestExtractImageSources_Idempotent(t *testing.T) {
	markup := `<img src="./blob/a"><img src="https://example.com/b.jpg">`

	first := graph.ExtractImageSources(markup)
	second := graph.ExtractImageSources(markup)

	gt.Equal(t, first, second)
}

func TestNormalizeSource_RelativeResolvesUnderMessage(t *testing.T) {
	base, err := url.Parse("https://graph.example.com/v1.0")
	gt.NoError(t, err).Required()

	got := graph.NormalizeSource("./blob/abc", testRef(), base)

	gt.Equal(t, got, "https://graph.example.com/v1.0/teams/T1/channels/C1/messages/M1/blob/abc")
}

func TestNormalizeSource_AbsoluteUnchanged(t *testing.T) {
	base, err := url.Parse("https://graph.example.com/v1.0")
	gt.NoError(t, err).Required()

	src := "https://cdn.example.org/pic.png"
	gt.Equal(t, graph.NormalizeSource(src, testRef(), base), src)
}

func TestNormalizeSource_IdempotentOnAbsolute(t *testing.T) {
	base, err := url.Parse("https://graph.example.com/v1.0")
	gt.NoError(t, err).Required()

	once := graph.NormalizeSource("./blob/abc", testRef(), base)
	twice := graph.NormalizeSource(once, testRef(), base)

	gt.Equal(t, once, twice)
}
