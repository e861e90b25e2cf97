package nominatim

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	nominatimdomain "github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/domain"
	"github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/nominatimclient"
	"github.com/vfg2006/visita360-api/internal/domain"
)

var (
	// ErrNotFound indica resposta vazia do provedor
	ErrNotFound = errors.New("endereço não encontrado")
	// ErrMalformedCoordinates indica coordenadas não numéricas na resposta
	ErrMalformedCoordinates = errors.New("coordenadas inválidas na resposta do provedor")
)

type NominatimIntegrator interface {
	Search(ctx context.Context, query string) (*domain.GeocodeResult, error)
	Reverse(ctx context.Context, lat, lng float64) (*domain.ReverseGeocodeResponse, error)
}

type NominatimService struct {
	Client nominatimclient.Client
}

func New(client nominatimclient.Client) NominatimIntegrator {
	return &NominatimService{
		Client: client,
	}
}

// Search consulta o endereço e devolve o primeiro resultado
func (s *NominatimService) Search(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	places, err := s.Client.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, ErrNotFound
	}

	place := places[0]
	lat, lng, err := parseCoordinates(place.Lat, place.Lon)
	if err != nil {
		return nil, err
	}

	return &domain.GeocodeResult{
		Lat:         lat,
		Lng:         lng,
		DisplayName: place.DisplayName,
		BoundingBox: place.BoundingBox,
		Class:       place.Class,
		Type:        place.Type,
	}, nil
}

func (s *NominatimService) Reverse(ctx context.Context, lat, lng float64) (*domain.ReverseGeocodeResponse, error) {
	place, err := s.Client.Reverse(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	if place == nil || place.Error != "" || strings.TrimSpace(place.DisplayName) == "" {
		return nil, ErrNotFound
	}

	return toReverseResponse(place, lat, lng), nil
}

func toReverseResponse(place *nominatimdomain.ReversePlace, lat, lng float64) *domain.ReverseGeocodeResponse {
	// Mantém as coordenadas consultadas quando o provedor não devolve as suas
	if parsedLat, parsedLng, err := parseCoordinates(place.Lat, place.Lon); err == nil {
		lat, lng = parsedLat, parsedLng
	}

	return &domain.ReverseGeocodeResponse{
		Lat:         lat,
		Lng:         lng,
		DisplayName: place.DisplayName,
	}
}

func parseCoordinates(rawLat, rawLng string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(rawLat), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return 0, 0, ErrMalformedCoordinates
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(rawLng), 64)
	if err != nil || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return 0, 0, ErrMalformedCoordinates
	}

	return lat, lng, nil
}
