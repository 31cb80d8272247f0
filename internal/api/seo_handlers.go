package api

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/rigparts/storefront/internal/pkg/httputil"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// HandleSitemap serves a sitemap of the storefront pages and every
// catalog part detail page.
func (s *Server) HandleSitemap(w http.ResponseWriter, r *http.Request) {
	ids, err := s.catalog.PartIDs(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	base := strings.TrimRight(s.siteURL, "/")
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/", ChangeFreq: "daily"},
			{Loc: base + "/catalog", ChangeFreq: "daily"},
		},
	}
	for _, id := range ids {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/catalog/%s", base, id),
			ChangeFreq: "weekly",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	w.Write(out)
}

// HandleRobots serves robots.txt. The admin and tracking paths are
// excluded from crawling.
func (s *Server) HandleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nDisallow: /api/\nDisallow: /track/\nDisallow: /auth/\n\nSitemap: %s/sitemap.xml\n",
		strings.TrimRight(s.siteURL, "/"))
}
