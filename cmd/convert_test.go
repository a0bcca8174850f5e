package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"ytopml/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTakeout(t *testing.T, csv string) string {
	t.Helper()

	base := t.TempDir()
	dir := filepath.Join(base, "Takeout", "YouTube and YouTube Music", "subscriptions")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "subscriptions.csv"), []byte(csv), 0644))

	return base
}

func TestConvert(t *testing.T) {
	base := writeTakeout(t, "Channel Id,Channel Url,Channel Title\n"+
		"abc,https://www.youtube.com/channel/abc,A & B\n"+
		"xyz,https://www.youtube.com/channel/xyz,C<D\n")
	output := filepath.Join(t.TempDir(), "YouTubeChannels.opml")

	err := cmd.RootApp().Run([]string{"ytopml", "convert", "-t", base, "-o", output})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	document := string(content)
	assert.Contains(t, document, `<outline type="rss" title="A &amp; B" text="A &amp; B" version="RSS" xmlUrl="https://www.youtube.com/feeds/videos.xml?channel_id=abc" htmlUrl="https://www.youtube.com/feeds/videos.xml?channel_id=abc"/>`)
	assert.Contains(t, document, `<outline type="rss" title="C&lt;D" text="C&lt;D" version="RSS" xmlUrl="https://www.youtube.com/feeds/videos.xml?channel_id=xyz" htmlUrl="https://www.youtube.com/feeds/videos.xml?channel_id=xyz"/>`)
	assert.Contains(t, document, "<title>YouTube channels</title>")
}

func TestConvertHeaderOnly(t *testing.T) {
	base := writeTakeout(t, "Channel Id,Channel Url,Channel Title\n")
	output := filepath.Join(t.TempDir(), "YouTubeChannels.opml")

	err := cmd.RootApp().Run([]string{"ytopml", "convert", "-t", base, "-o", output})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<body>\n</body></opml>")
}

func TestConvertParseErrorLeavesOutputUntouched(t *testing.T) {
	base := writeTakeout(t, "Channel Id,Channel Url,Channel Title\nabc,only-two\n")
	output := filepath.Join(t.TempDir(), "YouTubeChannels.opml")

	err := cmd.RootApp().Run([]string{"ytopml", "convert", "-t", base, "-o", output})
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertMissingExport(t *testing.T) {
	output := filepath.Join(t.TempDir(), "YouTubeChannels.opml")

	err := cmd.RootApp().Run([]string{"ytopml", "convert", "-t", t.TempDir(), "-o", output})
	assert.Error(t, err)
}

func TestConvertWithArchive(t *testing.T) {
	base := writeTakeout(t, "Channel Id,Channel Url,Channel Title\n"+
		"abc,https://www.youtube.com/channel/abc,A Channel\n")
	work := t.TempDir()
	output := filepath.Join(work, "YouTubeChannels.opml")
	database := filepath.Join(work, "archive.db")

	err := cmd.RootApp().Run([]string{"ytopml", "convert", "-t", base, "-o", output, "-d", database})
	require.NoError(t, err)

	_, statErr := os.Stat(database)
	assert.NoError(t, statErr)
}

func TestConvertConfigFile(t *testing.T) {
	base := writeTakeout(t, "Channel Id,Channel Url,Channel Title\n"+
		"abc,https://www.youtube.com/channel/abc,A Channel\n")
	work := t.TempDir()
	output := filepath.Join(work, "from-config.opml")

	configPath := filepath.Join(work, "ytopml.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(
		"takeout_dir = \""+base+"\"\noutput = \""+output+"\"\n"), 0644))

	err := cmd.RootApp().Run([]string{"ytopml", "convert", "-c", configPath})
	require.NoError(t, err)

	_, statErr := os.Stat(output)
	assert.NoError(t, statErr)
}
