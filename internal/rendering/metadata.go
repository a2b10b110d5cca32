package rendering

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// RobotsTXT allows all crawlers and points them at the sitemap.
func RobotsTXT(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Sitemap lists the input view and the results view.
func Sitemap(baseURL string, lastModified time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	mod := lastModified.UTC().Format("2006-01-02")

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/", LastMod: mod, ChangeFreq: "weekly", Priority: 1},
			{Loc: base + "/results", LastMod: mod, ChangeFreq: "monthly", Priority: 0.5},
		},
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, &RenderError{Message: "failed to encode sitemap", Cause: err}
	}
	return append([]byte(xml.Header), out...), nil
}
