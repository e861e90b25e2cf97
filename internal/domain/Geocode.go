package domain

// GeocodeResult é o resultado normalizado do provedor de geocodificação
type GeocodeResult struct {
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	DisplayName string   `json:"display_name"`
	BoundingBox []string `json:"boundingbox"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
}

// GeocodeCacheEntry guarda o resultado (possivelmente nulo) e o instante em
// milissegundos desde epoch em que foi obtido
type GeocodeCacheEntry struct {
	Result    *GeocodeResult `json:"result"`
	Timestamp int64          `json:"timestamp"`
}

// GeocodeCache é o formato persistido: chave normalizada -> entrada
type GeocodeCache map[string]GeocodeCacheEntry

type GeocodeCacheStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Expired int `json:"expired"`
}

type GeocodeStatus struct {
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

type ReverseGeocodeResponse struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DisplayName string  `json:"display_name"`
}
