package config

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".docnav.yml"

// DefaultCategories are the top-level docs directories scanned by default.
var DefaultCategories = []string{"学习", "工作", "兴趣"}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DocsDir: "docs",
		Output:  "docs/.vitepress/docnav.json",
		Sidebar: SidebarConfig{
			Categories:     append([]string(nil), DefaultCategories...),
			Extension:      ".md",
			IndexFile:      "index.md",
			HomeLabel:      "{name}首页",
			Sort:           "none",
			Titles:         "filename",
			NormalizeNames: true,
		},
		Site: SiteConfig{
			Title:       "我的文档",
			Description: "基于 VitePress 构建的文档站点，支持多级目录",
			Base:        "/",
			Lang:        "zh-CN",
			Logo:        "/logo.svg",
			Appearance:  "dark",
			LastUpdated: true,
			Math:        true,
			Head: []HeadTag{
				{Tag: "link", Attrs: map[string]string{"rel": "stylesheet", "href": "/custom.css"}},
				{Tag: "link", Attrs: map[string]string{"rel": "stylesheet", "href": "https://cdn.jsdelivr.net/npm/katex@0.16.8/dist/katex.min.css"}},
				{Tag: "script", Attrs: map[string]string{"src": "https://cdn.jsdelivr.net/npm/katex@0.16.8/dist/katex.min.js"}},
				{Tag: "meta", Attrs: map[string]string{"name": "theme-color", "content": "#3eaf7c"}},
			},
			SocialLinks: []SocialLink{{Icon: "github", Link: "https://github.com"}},
			Footer: Footer{
				Message:   "文档使用 VitePress 构建",
				Copyright: "© 2025 我的文档 | 保留所有权利",
			},
			// No default pattern: it has to name the site's own repository,
			// and editLink is left out of the document until one is set.
			EditLink: EditLink{Text: "在 GitHub 上编辑此页"},
			Outline:  Outline{Levels: []int{2, 3}, Label: "本页目录"},
			Search: Search{
				Provider:         "local",
				DetailedView:     true,
				ButtonText:       "搜索文档",
				NoResultsText:    "无法找到相关结果",
				ResetButtonTitle: "清除查询条件",
				SelectText:       "选择",
				NavigateText:     "切换",
				CloseText:        "关闭",
			},
			Labels: Labels{
				Prev:                 "上一篇",
				Next:                 "下一篇",
				ReturnToTop:          "返回顶部",
				SidebarMenu:          "菜单",
				DarkModeSwitch:       "主题切换",
				LightModeSwitchTitle: "切换到亮色模式",
				DarkModeSwitchTitle:  "切换到暗色模式",
				LastUpdated:          "最后更新于",
				Home:                 "首页",
			},
			NotFound: NotFound{
				Title:     "页面未找到",
				Quote:     "可能是链接失效或页面已被移动。",
				LinkLabel: "返回首页",
				LinkText:  "返回首页",
			},
			DevServer: DevServer{Port: 3000, Host: true},
			Build:     BuildConfig{Minify: "terser", ChunkSizeWarningLimit: 1000},
		},
	}
}
