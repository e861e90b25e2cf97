package nominatim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nominatimdomain "github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/domain"
)

type fakeClient struct {
	places  []nominatimdomain.Place
	reverse *nominatimdomain.ReversePlace
	err     error
}

func (f *fakeClient) Search(ctx context.Context, query string) ([]nominatimdomain.Place, error) {
	return f.places, f.err
}

func (f *fakeClient) Reverse(ctx context.Context, lat, lng float64) (*nominatimdomain.ReversePlace, error) {
	return f.reverse, f.err
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		client   *fakeClient
		validate func(t *testing.T, lat, lng float64, err error)
	}{
		{
			name:   "primeiro resultado",
			client: &fakeClient{places: []nominatimdomain.Place{{Lat: "-23.55", Lon: "-46.63", DisplayName: "SP"}}},
			validate: func(t *testing.T, lat, lng float64, err error) {
				require.NoError(t, err)
				assert.Equal(t, -23.55, lat)
				assert.Equal(t, -46.63, lng)
			},
		},
		{
			name:   "lista vazia",
			client: &fakeClient{places: []nominatimdomain.Place{}},
			validate: func(t *testing.T, lat, lng float64, err error) {
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name:   "coordenadas não numéricas",
			client: &fakeClient{places: []nominatimdomain.Place{{Lat: "abc", Lon: "-46.63"}}},
			validate: func(t *testing.T, lat, lng float64, err error) {
				assert.ErrorIs(t, err, ErrMalformedCoordinates)
			},
		},
		{
			name:   "erro de transporte",
			client: &fakeClient{err: errors.New("connection refused")},
			validate: func(t *testing.T, lat, lng float64, err error) {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New(tt.client).Search(context.Background(), "Rua A, Brasil")
			var lat, lng float64
			if result != nil {
				lat, lng = result.Lat, result.Lng
			}
			tt.validate(t, lat, lng, err)
		})
	}
}

func TestReverseNotFound(t *testing.T) {
	service := New(&fakeClient{reverse: &nominatimdomain.ReversePlace{Error: "Unable to geocode"}})

	_, err := service.Reverse(context.Background(), 0, 0)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReverseKeepsQueriedCoordinates(t *testing.T) {
	service := New(&fakeClient{reverse: &nominatimdomain.ReversePlace{DisplayName: "Praça da Sé"}})

	result, err := service.Reverse(context.Background(), -23.55, -46.63)

	require.NoError(t, err)
	assert.Equal(t, "Praça da Sé", result.DisplayName)
	assert.Equal(t, -23.55, result.Lat)
	assert.Equal(t, -46.63, result.Lng)
}
