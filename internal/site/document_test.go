package site

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docnav/internal/config"
	"github.com/ziadkadry99/docnav/internal/sidebar"
)

func sampleResult() sidebar.Result {
	return sidebar.Result{
		Tree: sidebar.Tree{
			"/学习/": {sidebar.Group("学习", false, []sidebar.Entry{
				sidebar.Leaf("学习首页", "/学习/"),
				sidebar.Leaf("notes", "/学习/notes"),
			})},
		},
		Categories: []sidebar.Category{{Name: "学习", Text: "学习", Prefix: "/学习/"}},
	}
}

func TestCompose(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Site.EditLink.Pattern = "https://example.com/edit/main/docs/:path"

	doc := Compose(cfg, sampleResult())

	assert.Equal(t, "我的文档", doc.Title)
	assert.Len(t, doc.Head, 4)
	assert.Equal(t, "link", doc.Head[0][0])
	assert.Equal(t, []config.NavLink{
		{Text: "首页", Link: "/"},
		{Text: "学习", Link: "/学习/"},
	}, doc.ThemeConfig.Nav)
	assert.Equal(t, sampleResult().Tree, doc.ThemeConfig.Sidebar)
	require.NotNil(t, doc.ThemeConfig.EditLink)
	assert.Equal(t, "在 GitHub 上编辑此页", doc.ThemeConfig.EditLink.Text)
	require.NotNil(t, doc.ThemeConfig.LastUpdated)
	assert.Equal(t, "最后更新于", doc.ThemeConfig.LastUpdated.Text)
	assert.Equal(t, 3000, doc.Vite.Server.Port)
	assert.True(t, doc.Vite.Server.Host)
	assert.Equal(t, "terser", doc.Vite.Build.Minify)
}

func TestCompose_EditLinkOmittedWithoutPattern(t *testing.T) {
	doc := Compose(config.DefaultConfig(), sampleResult())
	assert.Nil(t, doc.ThemeConfig.EditLink)
}

func TestNav_ConfiguredWins(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Site.Nav = []config.NavLink{{Text: "Blog", Link: "/blog/"}}

	assert.Equal(t, cfg.Site.Nav, Nav(cfg, sampleResult()))
}

func TestCompose_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Compose(config.DefaultConfig(), sampleResult()), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	theme := decoded["themeConfig"].(map[string]any)
	sb := theme["sidebar"].(map[string]any)
	top := sb["/学习/"].([]any)[0].(map[string]any)
	assert.Equal(t, "学习", top["text"])
	assert.Equal(t, false, top["collapsed"])
	assert.Len(t, top["items"], 2)

	head := decoded["head"].([]any)[0].([]any)
	assert.Equal(t, "link", head[0])
	assert.Equal(t, "/custom.css", head[1].(map[string]any)["href"])

	search := theme["search"].(map[string]any)
	modal := search["options"].(map[string]any)["translations"].(map[string]any)["modal"].(map[string]any)
	assert.Equal(t, "无法找到相关结果", modal["noResultsText"])
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleResult().Tree, FormatYAML))
	assert.YAMLEq(t, `
/学习/:
  - text: 学习
    collapsed: false
    items:
      - text: 学习首页
        link: /学习/
      - text: notes
        link: /学习/notes
`, buf.String())
}

func TestCompose_YAMLShape(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Site.EditLink.Pattern = "https://example.com/edit/main/docs/:path"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Compose(cfg, sampleResult()), FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, true, decoded["lastUpdated"])
	assert.NotContains(t, decoded, "themeconfig")
	theme, ok := decoded["themeConfig"].(map[string]any)
	require.True(t, ok, "themeConfig missing from:\n%s", buf.String())
	for _, key := range []string{"nav", "sidebar", "docFooter", "socialLinks", "lastUpdated", "editLink", "notFound", "returnToTopLabel"} {
		assert.Contains(t, theme, key)
	}

	sb := theme["sidebar"].(map[string]any)
	top := sb["/学习/"].([]any)[0].(map[string]any)
	assert.Equal(t, "学习", top["text"])
	assert.Len(t, top["items"], 2)

	modal := theme["search"].(map[string]any)["options"].(map[string]any)["translations"].(map[string]any)["modal"].(map[string]any)
	assert.Equal(t, "无法找到相关结果", modal["noResultsText"])

	server := decoded["vite"].(map[string]any)["server"].(map[string]any)
	assert.Equal(t, 3000, server["port"])
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "json": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "sidebar.json")

	require.NoError(t, WriteFile(path, sampleResult().Tree, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"link": "/学习/notes"`)

	leftovers, err := filepath.Glob(filepath.Join(dir, "nested", TempPrefix+"*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
