package model

import "encoding/json"

// Image is a single catalogue image reference.
type Image struct {
	URL string `json:"url"`
}

// CategoryRef identifies a product category. The API returns it either as the
// bare category id or as a populated object, so it unmarshals from both.
type CategoryRef struct {
	ID   string
	Name string
}

// UnmarshalJSON accepts both `"cat-1"` and `{"_id": "cat-1", "name": "..."}`.
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*c = CategoryRef{}
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	var obj struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.ID = obj.ID
	c.Name = obj.Name
	return nil
}

// MarshalJSON writes the compact id form unless the name is populated.
func (c CategoryRef) MarshalJSON() ([]byte, error) {
	if c.Name == "" {
		return json.Marshal(c.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}{ID: c.ID, Name: c.Name})
}

// Product is the read-only catalogue projection returned by the API.
type Product struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Description string      `json:"description,omitempty"`
	Images      []Image     `json:"images,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	NumReviews  int         `json:"numReviews,omitempty"`
	Stock       int         `json:"stock,omitempty"`
	Category    CategoryRef `json:"category,omitempty"`
}

// FirstImageURL returns the first image URL or an empty string.
func (p *Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
