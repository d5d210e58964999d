package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitegrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns links in document order", func(t *testing.T) {
		t.Parallel()

		html := []byte(`<html><body>
			<a href="http://example.com/first">one</a>
			<p><a href="http://example.com/second">two</a></p>
			<a href="http://example.com/third">three</a>
		</body></html>`)

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, "http://example.com/")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"http://example.com/first",
			"http://example.com/second",
			"http://example.com/third",
		}, links)
	})

	t.Run("resolves relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		html := []byte(`<html><body>
			<a href="report.pdf">report</a>
			<a href="/docs/guide.pdf">guide</a>
			<a href="../up.html">up</a>
		</body></html>`)

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, "http://example.com/files/current/")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"http://example.com/files/current/report.pdf",
			"http://example.com/docs/guide.pdf",
			"http://example.com/files/up.html",
		}, links)
	})

	t.Run("skips unfetchable schemes", func(t *testing.T) {
		t.Parallel()

		html := []byte(`<html><body>
			<a href="javascript:void(0)">js</a>
			<a href="mailto:someone@example.com">mail</a>
			<a href="tel:+1234567890">phone</a>
			<a href="data:text/plain,hello">data</a>
			<a href="ftp://example.com/file">ftp</a>
			<a href="http://example.com/real">real</a>
		</body></html>`)

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, "http://example.com/")
		require.NoError(t, err)

		assert.Equal(t, []string{"http://example.com/real"}, links)
	})

	t.Run("deduplicates keeping the first occurrence", func(t *testing.T) {
		t.Parallel()

		html := []byte(`<html><body>
			<a href="/a">one</a>
			<a href="/b">two</a>
			<a href="/a">one again</a>
		</body></html>`)

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, "http://example.com/")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"http://example.com/a",
			"http://example.com/b",
		}, links)
	})

	t.Run("ignores anchors without hrefs", func(t *testing.T) {
		t.Parallel()

		html := []byte(`<html><body>
			<a name="top">anchor</a>
			<a href="">empty</a>
			<a href="/real">real</a>
		</body></html>`)

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, "http://example.com/")
		require.NoError(t, err)

		assert.Equal(t, []string{"http://example.com/real"}, links)
	})

	t.Run("returns no links for link-free documents", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks([]byte(`<html><body><p>no links</p></body></html>`), "http://example.com/")
		require.NoError(t, err)

		assert.Empty(t, links)
	})

	t.Run("rejects invalid base URLs", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.ExtractLinks([]byte(`<a href="/a">a</a>`), "://bad")
		assert.Error(t, err)
	})
}
