package domain

// Place é um item da resposta de /search. Coordenadas chegam como texto.
type Place struct {
	PlaceID     int64    `json:"place_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	DisplayName string   `json:"display_name"`
	BoundingBox []string `json:"boundingbox"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
}

// ReversePlace é a resposta de /reverse. Quando não há endereço o
// Nominatim responde 200 com o campo error preenchido.
type ReversePlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error,omitempty"`
}
