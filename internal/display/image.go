package display

import (
	"net/url"
	"strings"
)

// PlaceholderImage is shown for products without a usable image URL.
const PlaceholderImage = "https://placehold.co/600x400?text=No+Image"

// imageCutset is stripped from both ends of an image entry. The upstream API
// sometimes returns entries like `["https://..."` or `" https://... "`.
const imageCutset = " \t\r\n\"'[]"

// ResolveImageURL returns the first image entry when it is an absolute
// http(s) URL, after stripping surrounding whitespace, quotes and square
// brackets. Anything else resolves to PlaceholderImage, including
// protocol-relative and data: URLs.
func ResolveImageURL(images []string) string {
	if len(images) == 0 {
		return PlaceholderImage
	}

	candidate := strings.Trim(images[0], imageCutset)
	if !strings.HasPrefix(candidate, "http") {
		return PlaceholderImage
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return PlaceholderImage
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return PlaceholderImage
	}
	return candidate
}
