// Package cloudinary builds delivery URLs for the image CDN from compiled
// transformation directives and renders QR codes for them.
package cloudinary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/photo-share/api-go/config"
	"github.com/photo-share/api-go/services/transform"
)

// paramAliases maps directive keys to the single-letter URL parameters the
// CDN expects, in the order they are serialized within one component.
var paramAliases = []struct {
	key   string
	alias string
}{
	{"width", "w"},
	{"height", "h"},
	{"crop", "c"},
	{"gravity", "g"},
	{"background", "b"},
	{"angle", "a"},
	{"radius", "r"},
	{"effect", "e"},
	{"x", "x"},
	{"y", "y"},
}

type Client struct {
	cfg *config.CloudinaryConfig
}

func NewClient(cfg *config.CloudinaryConfig) *Client {
	return &Client{cfg: cfg}
}

// BuildURL assembles the delivery URL for a source image with the given
// directive chain. Absolute sources go through the fetch delivery type so
// images stored in the photo bucket stay transformable; bare public ids use
// the upload type.
func (c *Client) BuildURL(source string, list []transform.Directive) string {
	deliveryType := "upload"
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		deliveryType = "fetch"
	}

	parts := []string{
		fmt.Sprintf("https://res.cloudinary.com/%s/image/%s", c.cfg.CloudName, deliveryType),
	}
	for _, d := range list {
		if component := serializeDirective(d); component != "" {
			parts = append(parts, component)
		}
	}
	parts = append(parts, source)

	return strings.Join(parts, "/")
}

// DisplayURL resolves a stored photo key or URL to its plain delivery URL.
func (c *Client) DisplayURL(source string) string {
	return c.BuildURL(source, nil)
}

func serializeDirective(d transform.Directive) string {
	var params []string
	seen := make(map[string]bool, len(d))

	for _, p := range paramAliases {
		if v, ok := d[p.key]; ok {
			params = append(params, p.alias+"_"+v)
			seen[p.key] = true
		}
	}

	// unknown keys keep their full name, alphabetically for determinism
	var rest []string
	for k := range d {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		params = append(params, k+"_"+d[k])
	}

	return strings.Join(params, ",")
}
