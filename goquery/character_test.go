package goquery_test

import (
	"testing"

	"github.com/mstolarski/emwiki"
	"github.com/mstolarski/emwiki/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_Name(t *testing.T) {
	t.Parallel()

	t.Run("uses the primary heading text verbatim", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1 id="firstHeading">Ike</h1></body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Ike", c.Name)
	})

	t.Run("returns ENOTFOUND when the heading is missing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<table><tr><th>Title(s)</th><td><ul><li>Radiant Hero</li></ul></td></tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, emwiki.ENOTFOUND, emwiki.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when the heading is empty", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1 id="firstHeading"></h1></body></html>`

		e := goquery.NewExtractor(baseURL)
		_, err := e.Extract(html)

		require.Error(t, err)
		assert.Equal(t, emwiki.ENOTFOUND, emwiki.ErrorCode(err))
	})
}

func TestExtractor_Extract_Images(t *testing.T) {
	t.Parallel()

	t.Run("single candidate with no displayed tab becomes primary", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<a class="image" href="#"><img src="/images/Ike_por.png"></a>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, c.PrimaryImage)
		assert.Equal(t, "https://fireemblemwiki.org/images/Ike_por.png", *c.PrimaryImage)
		assert.Nil(t, c.OtherImages)
	})

	t.Run("prefers the candidate inside the displayed tab", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<div class="tab_content" style="display:none;">
	<a class="image" href="#"><img src="/images/Ike_b.jpg"></a>
</div>
<div class="tab_content" style="display:block;">
	<a class="image" href="#"><img src="/images/Ike_a.png"></a>
</div>
<div class="tab_content" style="display:none;">
	<a class="image" href="#"><img src="/images/Ike_c.jpg"></a>
</div>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, c.PrimaryImage)
		assert.Equal(t, "https://fireemblemwiki.org/images/Ike_a.png", *c.PrimaryImage)
		assert.Equal(t, []string{
			"https://fireemblemwiki.org/images/Ike_b.jpg",
			"https://fireemblemwiki.org/images/Ike_c.jpg",
		}, c.OtherImages)
	})

	t.Run("matches lowercased name in image source", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<a class="image" href="#"><img src="/images/ss_ike_attack.png"></a>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, c.PrimaryImage)
		assert.Equal(t, "https://fireemblemwiki.org/images/ss_ike_attack.png", *c.PrimaryImage)
	})

	t.Run("ignores images that do not match the name", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<a class="image" href="#"><img src="/images/Soren_por.png"></a>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, c.PrimaryImage)
		assert.Nil(t, c.OtherImages)
	})

	t.Run("deduplicates identical sources", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<a class="image" href="#"><img src="/images/Ike_por.png"></a>
<a class="image" href="#"><img src="/images/Ike_por.png"></a>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, c.PrimaryImage)
		assert.Equal(t, "https://fireemblemwiki.org/images/Ike_por.png", *c.PrimaryImage)
		assert.Nil(t, c.OtherImages)
	})

	t.Run("other images never include the primary and respect the cap", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<a class="image" href="#"><img src="/images/Ike_1.png"></a>
<a class="image" href="#"><img src="/images/Ike_2.png"></a>
<a class="image" href="#"><img src="/images/Ike_3.png"></a>
<a class="image" href="#"><img src="/images/Ike_4.png"></a>
</body></html>`

		e := goquery.NewExtractor(baseURL, goquery.WithMaxOtherImages(2))
		c, err := e.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, c.PrimaryImage)
		assert.Equal(t, "https://fireemblemwiki.org/images/Ike_1.png", *c.PrimaryImage)
		assert.Equal(t, []string{
			"https://fireemblemwiki.org/images/Ike_2.png",
			"https://fireemblemwiki.org/images/Ike_3.png",
		}, c.OtherImages)
		assert.NotContains(t, c.OtherImages, *c.PrimaryImage)
	})
}

func TestExtractor_Extract_Appearances(t *testing.T) {
	t.Parallel()

	t.Run("collects title attributes in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Appearance(s)</th>
	<td>
		<a href="/wiki/POR" title="Fire Emblem: Path of Radiance">PoR</a>
		<a href="/wiki/RD" title="Fire Emblem: Radiant Dawn">RD</a>
	</td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Fire Emblem: Path of Radiance",
			"Fire Emblem: Radiant Dawn",
		}, c.Appearances)
	})

	t.Run("links without a title attribute contribute nothing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Appearance(s)</th>
	<td><a href="/wiki/POR">Path of Radiance</a></td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, c.Appearances)
	})

	t.Run("field absent without a labeled row", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1 id="firstHeading">Ike</h1></body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, c.Appearances)
	})
}

func TestExtractor_Extract_Titles(t *testing.T) {
	t.Parallel()

	t.Run("prefers list items and concatenates split text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Marth</h1>
<table><tr>
	<th>Title(s)</th>
	<td>
		<ul>
			<li>Prince of <a href="/wiki/Altea">Altea</a></li>
			<li>Hero-King</li>
		</ul>
	</td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Prince of Altea", "Hero-King"}, c.Titles)
	})

	t.Run("falls back to paragraphs when no list exists", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Title(s)</th>
	<td><p>Radiant Hero</p></td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Radiant Hero"}, c.Titles)
	})

	t.Run("skips items with empty normalized text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Title(s)</th>
	<td><ul><li></li><li>Radiant Hero</li></ul></td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Radiant Hero"}, c.Titles)
	})

	t.Run("labeled row with neither list nor paragraph yields no titles", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Title(s)</th>
	<td><span>Radiant Hero</span></td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, c.Titles)
	})
}

func TestExtractor_Extract_VoiceActors(t *testing.T) {
	t.Parallel()

	t.Run("groups actors by annotation language", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Voice actor(s)</th>
	<td>
		<a href="/wiki/Greg_Chun">Greg Chun</a> <small>(English, Heroes)</small><br>
		<a href="/wiki/Jason_Adkins">Jason Adkins</a> <small>(English, Path of Radiance)</small><br>
		<a href="/wiki/Michihiko_Hagi">Michihiko Hagi</a> <small>(Japanese, Heroes)</small>
	</td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, map[string][]string{
			emwiki.LangEnglish:  {"Greg Chun", "Jason Adkins"},
			emwiki.LangJapanese: {"Michihiko Hagi"},
		}, c.VoiceActors)
	})

	t.Run("language without matches contributes no key", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Voice actor(s)</th>
	<td><a href="/wiki/Michihiko_Hagi">Michihiko Hagi</a> <small>(Japanese)</small></td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, map[string][]string{
			emwiki.LangJapanese: {"Michihiko Hagi"},
		}, c.VoiceActors)
	})

	t.Run("anchor without a following annotation contributes nothing", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table><tr>
	<th>Voice actor(s)</th>
	<td><a href="/wiki/Greg_Chun">Greg Chun</a></td>
</tr></table>
</body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, c.VoiceActors)
	})

	t.Run("field absent without a labeled row", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1 id="firstHeading">Ike</h1></body></html>`

		e := goquery.NewExtractor(baseURL)
		c, err := e.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, c.VoiceActors)
	})
}

func TestExtractor_Extract_EndToEnd(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<h1 id="firstHeading">Ike</h1>
<table>
	<tr><th>Title(s)</th><td><ul><li>Radiant Hero</li></ul></td></tr>
	<tr>
		<th>Appearance(s)</th>
		<td><a href="/wiki/POR" title="Fire Emblem: Path of Radiance">PoR</a></td>
	</tr>
	<tr>
		<th>Voice actor(s)</th>
		<td><a href="/wiki/Greg_Chun">Greg Chun</a> <small>(English, Heroes)</small></td>
	</tr>
</table>
<div class="tab_content" style="display:block;">
	<a class="image" href="#"><img src="/images/Ike_a.png"></a>
</div>
<div class="tab_content" style="display:none;">
	<a class="image" href="#"><img src="/images/Ike_b.jpg"></a>
</div>
<div class="tab_content" style="display:none;">
	<a class="image" href="#"><img src="/images/Ike_c.jpg"></a>
</div>
</body></html>`

	e := goquery.NewExtractor(baseURL)
	c, err := e.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Ike", c.Name)
	require.NotNil(t, c.PrimaryImage)
	assert.Equal(t, "https://fireemblemwiki.org/images/Ike_a.png", *c.PrimaryImage)
	assert.Equal(t, []string{
		"https://fireemblemwiki.org/images/Ike_b.jpg",
		"https://fireemblemwiki.org/images/Ike_c.jpg",
	}, c.OtherImages)
	assert.Equal(t, []string{"Radiant Hero"}, c.Titles)
	assert.Equal(t, []string{"Fire Emblem: Path of Radiance"}, c.Appearances)
	assert.Equal(t, map[string][]string{emwiki.LangEnglish: {"Greg Chun"}}, c.VoiceActors)
}
