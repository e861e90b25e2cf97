package geocoding

import (
	"math"
	"strconv"
	"strings"
)

var punctuation = strings.NewReplacer(",", " ", ".", " ")

// NormalizeAddress gera a chave do cache: minúsculas, sem vírgulas e pontos,
// com espaços colapsados. NormalizeAddress(NormalizeAddress(a)) == NormalizeAddress(a).
func NormalizeAddress(address string) string {
	lowered := strings.ToLower(address)
	return strings.Join(strings.Fields(punctuation.Replace(lowered)), " ")
}

// ValidateCoordinates verifica se latitude e longitude são finitas e estão
// dentro das faixas [-90,90] e [-180,180]
func ValidateCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ParseCoordinates interpreta coordenadas em texto e as valida
func ParseCoordinates(rawLat, rawLng string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
	if err != nil {
		return 0, 0, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(rawLng), 64)
	if err != nil {
		return 0, 0, false
	}

	if !ValidateCoordinates(lat, lng) {
		return 0, 0, false
	}

	return lat, lng, true
}
