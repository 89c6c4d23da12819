package model

// CartLine is one normalised product+quantity entry in the display cart.
// Quantity is always at least 1; a line whose quantity would drop below 1 is
// removed rather than stored at zero.
type CartLine struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// RemoteCartItem is a single entry of the server-owned cart, with the
// catalogue projection embedded by the API.
type RemoteCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSnapshot is the server-owned cart representation. The client only ever
// caches the last fetched snapshot; the server stays authoritative.
type CartSnapshot struct {
	Items []RemoteCartItem `json:"items"`
}
