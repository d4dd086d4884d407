// Package site composes the configuration document consumed by the static
// site framework: the static settings from docnav's config plus the sidebar
// tree built from the docs directory.
package site

import (
	"github.com/ziadkadry99/docnav/internal/config"
	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// Document is the framework configuration, shaped like a VitePress config
// object so it can be spread into defineConfig as-is.
type Document struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Base        string      `json:"base" yaml:"base"`
	Lang        string      `json:"lang,omitempty" yaml:"lang,omitempty"`
	Head        []HeadEntry `json:"head" yaml:"head"`
	Appearance  string      `json:"appearance,omitempty" yaml:"appearance,omitempty"`
	LastUpdated bool        `json:"lastUpdated" yaml:"lastUpdated"`
	Markdown    Markdown    `json:"markdown" yaml:"markdown"`
	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig"`
	Vite        Vite        `json:"vite" yaml:"vite"`
}

// HeadEntry serializes as the framework's [tag, attrs] tuple.
type HeadEntry [2]any

type Markdown struct {
	Math bool `json:"math" yaml:"math"`
}

type ThemeConfig struct {
	Logo                 string              `json:"logo,omitempty" yaml:"logo,omitempty"`
	Nav                  []config.NavLink    `json:"nav" yaml:"nav"`
	Sidebar              sidebar.Tree        `json:"sidebar" yaml:"sidebar"`
	DocFooter            DocFooter           `json:"docFooter" yaml:"docFooter"`
	SocialLinks          []config.SocialLink `json:"socialLinks" yaml:"socialLinks"`
	Footer               Footer              `json:"footer" yaml:"footer"`
	Search               Search              `json:"search" yaml:"search"`
	Outline              Outline             `json:"outline" yaml:"outline"`
	ReturnToTopLabel     string              `json:"returnToTopLabel,omitempty" yaml:"returnToTopLabel,omitempty"`
	SidebarMenuLabel     string              `json:"sidebarMenuLabel,omitempty" yaml:"sidebarMenuLabel,omitempty"`
	DarkModeSwitchLabel  string              `json:"darkModeSwitchLabel,omitempty" yaml:"darkModeSwitchLabel,omitempty"`
	LightModeSwitchTitle string              `json:"lightModeSwitchTitle,omitempty" yaml:"lightModeSwitchTitle,omitempty"`
	DarkModeSwitchTitle  string              `json:"darkModeSwitchTitle,omitempty" yaml:"darkModeSwitchTitle,omitempty"`
	LastUpdated          *LastUpdated        `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	EditLink             *EditLink           `json:"editLink,omitempty" yaml:"editLink,omitempty"`
	NotFound             NotFound            `json:"notFound" yaml:"notFound"`
}

type DocFooter struct {
	Prev string `json:"prev" yaml:"prev"`
	Next string `json:"next" yaml:"next"`
}

type Footer struct {
	Message   string `json:"message" yaml:"message"`
	Copyright string `json:"copyright" yaml:"copyright"`
}

type Search struct {
	Provider string        `json:"provider" yaml:"provider"`
	Options  SearchOptions `json:"options" yaml:"options"`
}

type SearchOptions struct {
	DetailedView bool               `json:"detailedView" yaml:"detailedView"`
	Translations SearchTranslations `json:"translations" yaml:"translations"`
}

type SearchTranslations struct {
	Button struct {
		ButtonText      string `json:"buttonText" yaml:"buttonText"`
		ButtonAriaLabel string `json:"buttonAriaLabel" yaml:"buttonAriaLabel"`
	} `json:"button" yaml:"button"`
	Modal struct {
		NoResultsText    string `json:"noResultsText" yaml:"noResultsText"`
		ResetButtonTitle string `json:"resetButtonTitle" yaml:"resetButtonTitle"`
		Footer           struct {
			SelectText   string `json:"selectText" yaml:"selectText"`
			NavigateText string `json:"navigateText" yaml:"navigateText"`
			CloseText    string `json:"closeText" yaml:"closeText"`
		} `json:"footer" yaml:"footer"`
	} `json:"modal" yaml:"modal"`
}

type Outline struct {
	Level []int  `json:"level" yaml:"level"`
	Label string `json:"label" yaml:"label"`
}

type LastUpdated struct {
	Text          string            `json:"text" yaml:"text"`
	FormatOptions map[string]string `json:"formatOptions" yaml:"formatOptions"`
}

type EditLink struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Text    string `json:"text" yaml:"text"`
}

type NotFound struct {
	Title     string `json:"title" yaml:"title"`
	Quote     string `json:"quote" yaml:"quote"`
	LinkLabel string `json:"linkLabel" yaml:"linkLabel"`
	LinkText  string `json:"linkText" yaml:"linkText"`
}

type Vite struct {
	Server struct {
		Port int  `json:"port,omitempty" yaml:"port,omitempty"`
		Host bool `json:"host" yaml:"host"`
	} `json:"server" yaml:"server"`
	Build struct {
		Minify                string `json:"minify,omitempty" yaml:"minify,omitempty"`
		ChunkSizeWarningLimit int    `json:"chunkSizeWarningLimit,omitempty" yaml:"chunkSizeWarningLimit,omitempty"`
	} `json:"build" yaml:"build"`
}

// lastUpdatedFormat renders dates as "2025年1月2日 03:04" in zh-CN.
var lastUpdatedFormat = map[string]string{
	"year":   "numeric",
	"month":  "long",
	"day":    "numeric",
	"hour":   "2-digit",
	"minute": "2-digit",
}

// Compose builds the framework document from cfg and a built sidebar.
func Compose(cfg *config.Config, res sidebar.Result) Document {
	s := cfg.Site

	doc := Document{
		Title:       s.Title,
		Description: s.Description,
		Base:        s.Base,
		Lang:        s.Lang,
		Head:        make([]HeadEntry, 0, len(s.Head)),
		Appearance:  s.Appearance,
		LastUpdated: s.LastUpdated,
		Markdown:    Markdown{Math: s.Math},
	}
	for _, h := range s.Head {
		attrs := h.Attrs
		if attrs == nil {
			attrs = map[string]string{}
		}
		doc.Head = append(doc.Head, HeadEntry{h.Tag, attrs})
	}

	tc := ThemeConfig{
		Logo:                 s.Logo,
		Nav:                  Nav(cfg, res),
		Sidebar:              res.Tree,
		DocFooter:            DocFooter{Prev: s.Labels.Prev, Next: s.Labels.Next},
		SocialLinks:          s.SocialLinks,
		Footer:               Footer{Message: s.Footer.Message, Copyright: s.Footer.Copyright},
		Outline:              Outline{Level: s.Outline.Levels, Label: s.Outline.Label},
		ReturnToTopLabel:     s.Labels.ReturnToTop,
		SidebarMenuLabel:     s.Labels.SidebarMenu,
		DarkModeSwitchLabel:  s.Labels.DarkModeSwitch,
		LightModeSwitchTitle: s.Labels.LightModeSwitchTitle,
		DarkModeSwitchTitle:  s.Labels.DarkModeSwitchTitle,
		NotFound: NotFound{
			Title:     s.NotFound.Title,
			Quote:     s.NotFound.Quote,
			LinkLabel: s.NotFound.LinkLabel,
			LinkText:  s.NotFound.LinkText,
		},
	}
	if tc.SocialLinks == nil {
		tc.SocialLinks = []config.SocialLink{}
	}
	if tc.Sidebar == nil {
		tc.Sidebar = sidebar.Tree{}
	}

	tc.Search.Provider = s.Search.Provider
	tc.Search.Options.DetailedView = s.Search.DetailedView
	tr := &tc.Search.Options.Translations
	tr.Button.ButtonText = s.Search.ButtonText
	tr.Button.ButtonAriaLabel = s.Search.ButtonText
	tr.Modal.NoResultsText = s.Search.NoResultsText
	tr.Modal.ResetButtonTitle = s.Search.ResetButtonTitle
	tr.Modal.Footer.SelectText = s.Search.SelectText
	tr.Modal.Footer.NavigateText = s.Search.NavigateText
	tr.Modal.Footer.CloseText = s.Search.CloseText

	if s.LastUpdated && s.Labels.LastUpdated != "" {
		tc.LastUpdated = &LastUpdated{Text: s.Labels.LastUpdated, FormatOptions: lastUpdatedFormat}
	}
	if s.EditLink.Pattern != "" {
		tc.EditLink = &EditLink{Pattern: s.EditLink.Pattern, Text: s.EditLink.Text}
	}
	doc.ThemeConfig = tc

	doc.Vite.Server.Port = s.DevServer.Port
	doc.Vite.Server.Host = s.DevServer.Host
	doc.Vite.Build.Minify = s.Build.Minify
	doc.Vite.Build.ChunkSizeWarningLimit = s.Build.ChunkSizeWarningLimit

	return doc
}

// Nav returns the configured top navigation, or when none is configured a
// home link followed by one link per category that made it into the tree.
func Nav(cfg *config.Config, res sidebar.Result) []config.NavLink {
	if len(cfg.Site.Nav) > 0 {
		return cfg.Site.Nav
	}
	home := cfg.Site.Labels.Home
	if home == "" {
		home = "Home"
	}
	nav := []config.NavLink{{Text: home, Link: "/"}}
	for _, c := range res.Categories {
		nav = append(nav, config.NavLink{Text: c.Text, Link: c.Prefix})
	}
	return nav
}
