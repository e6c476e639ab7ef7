package handlers

import (
	"html/template"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><title>Star Wars Blog API</title></head>
<body>
<h1>Star Wars Blog API</h1>
<p>API host: <a href="{{.Host}}">{{.Host}}</a></p>
<ul>
{{- range .Routes}}
<li><code>{{.Method}}</code> {{if .Linkable}}<a href="{{.URL}}">{{.Path}}</a>{{else}}{{.Path}}{{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

type sitemapRoute struct {
	Method   string
	Path     string
	URL      string
	Linkable bool
}

// HandleSitemap renders an HTML index of every registered route.
func HandleSitemap(c *fiber.Ctx) error {
	base := c.BaseURL()
	seen := make(map[string]bool)
	var routes []sitemapRoute
	for _, r := range c.App().GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			continue
		}
		seen[key] = true
		routes = append(routes, sitemapRoute{
			Method:   r.Method,
			Path:     r.Path,
			URL:      base + r.Path,
			Linkable: r.Method == fiber.MethodGet && !strings.Contains(r.Path, ":"),
		})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	var sb strings.Builder
	if err := sitemapTemplate.Execute(&sb, fiber.Map{"Host": base, "Routes": routes}); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(sb.String())
}
