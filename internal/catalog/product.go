package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Product is a catalog item as returned by the upstream API.
// Products are never modified after decoding.
type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

// Category is the optional product category reference.
type Category struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

// CategoryName returns the category display name, or "" when absent.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

var errMissingID = errors.New("product has no integer id")

// wireProduct mirrors the upstream record with loosely typed fields.
type wireProduct struct {
	ID          json.RawMessage `json:"id"`
	Title       json.RawMessage `json:"title"`
	Price       json.RawMessage `json:"price"`
	Description json.RawMessage `json:"description"`
	Category    json.RawMessage `json:"category"`
	Images      json.RawMessage `json:"images"`
}

// UnmarshalJSON decodes a product best-effort. Only a usable integer id is
// required; every other field falls back to its zero value when missing or
// malformed.
func (p *Product) UnmarshalJSON(data []byte) error {
	var w wireProduct
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id, ok := decodeInt(w.ID)
	if !ok {
		return errMissingID
	}

	*p = Product{
		ID:          id,
		Title:       decodeString(w.Title),
		Price:       decodePrice(w.Price),
		Description: decodeString(w.Description),
		Category:    decodeCategory(w.Category),
		Images:      decodeImages(w.Images),
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeInt(raw json.RawMessage) (int, bool) {
	if isNull(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f != math.Trunc(f) {
			return 0, false
		}
		return int(f), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

func decodeString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// decodePrice coerces a JSON number or numeric string to a non-negative float.
func decodePrice(raw json.RawMessage) float64 {
	if isNull(raw) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err = json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func decodeCategory(raw json.RawMessage) *Category {
	if isNull(raw) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	id, _ := decodeInt(fields["id"])
	return &Category{ID: id, Name: decodeString(fields["name"])}
}

// decodeImages accepts an array (non-string entries are dropped) or a single string.
func decodeImages(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	images := make([]string, 0, len(entries))
	for _, e := range entries {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			images = append(images, s)
		}
	}
	return images
}
