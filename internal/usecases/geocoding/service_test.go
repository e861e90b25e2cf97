package geocoding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim"
	nominatimmocks "github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/mocks"
	"github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/nominatimclient"
	"github.com/vfg2006/visita360-api/infrastructure/repository/mocks"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service  *GeocodeService
	provider *nominatimmocks.MockNominatimIntegrator
	state    *mocks.MockStateRepository
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		provider: nominatimmocks.NewMockNominatimIntegrator(ctrl),
		state:    mocks.NewMockStateRepository(ctrl),
		now:      time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	f.state.EXPECT().Put(CacheStorageKey, gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{
		Geocoder: config.Geocoder{
			CacheTTL:         24 * time.Hour,
			CountryQualifier: "Brasil",
		},
	}

	f.service = NewGeocodeService(cfg, f.provider, f.state, WithClock(func() time.Time { return f.now }))
	return f
}

func saoPaulo() *domain.GeocodeResult {
	return &domain.GeocodeResult{Lat: -23.55, Lng: -46.63, DisplayName: "Rua A, São Paulo"}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "minúsculas e espaços", address: "  Rua   das Flores  ", expected: "rua das flores"},
		{name: "vírgulas e pontos", address: "Av. Paulista, 1000", expected: "av paulista 1000"},
		{name: "pontuação no fim", address: "Rua A, 100.", expected: "rua a 100"},
		{name: "tabs e quebras", address: "Rua\tB\n200", expected: "rua b 200"},
		{name: "vazio", address: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := NormalizeAddress(tt.address)
			assert.Equal(t, tt.expected, normalized)
			assert.Equal(t, normalized, NormalizeAddress(normalized))
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(-23.55, -46.63))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))

	lat, lng, ok := ParseCoordinates(" -23.5 ", "-46.6")
	assert.True(t, ok)
	assert.Equal(t, -23.5, lat)
	assert.Equal(t, -46.6, lng)

	_, _, ok = ParseCoordinates("abc", "10")
	assert.False(t, ok)

	_, _, ok = ParseCoordinates("NaN", "10")
	assert.False(t, ok)
}

func TestGeocodeCacheHitAvoidsNetwork(t *testing.T) {
	f := newFixture(t)

	f.provider.EXPECT().
		Search(gomock.Any(), "Rua A, 100, Brasil").
		Return(saoPaulo(), nil).
		Times(1)

	first, err := f.service.Geocode(context.Background(), "Rua A, 100")
	require.NoError(t, err)

	second, err := f.service.Geocode(context.Background(), "  rua a 100. ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, f.service.LastError())
	assert.False(t, f.service.IsLoading())
}

func TestGeocodeTTLExpiry(t *testing.T) {
	f := newFixture(t)

	f.provider.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(saoPaulo(), nil).
		Times(2)

	_, err := f.service.Geocode(context.Background(), "Rua A, 100")
	require.NoError(t, err)

	f.now = f.now.Add(24*time.Hour - time.Millisecond)
	_, ok := f.service.Lookup("Rua A, 100")
	assert.True(t, ok, "entrada ainda dentro do TTL")

	f.now = f.now.Add(time.Millisecond)
	_, ok = f.service.Lookup("Rua A, 100")
	assert.False(t, ok, "entrada com idade igual ao TTL está expirada")

	_, err = f.service.Geocode(context.Background(), "Rua A, 100")
	require.NoError(t, err)
}

func TestLookupPurgesAllExpiredEntries(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Remember("Rua Velha", -10, -40))
	f.now = f.now.Add(25 * time.Hour)
	require.NoError(t, f.service.Remember("Rua Nova", -11, -41))

	assert.Equal(t, domain.GeocodeCacheStats{Total: 2, Active: 1, Expired: 1}, f.service.CacheStats())

	_, ok := f.service.Lookup("outro endereço")
	assert.False(t, ok)

	assert.Equal(t, domain.GeocodeCacheStats{Total: 1, Active: 1, Expired: 0}, f.service.CacheStats())
}

func TestGeocodeCachesNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "lista vazia", err: nominatim.ErrNotFound},
		{name: "coordenadas não numéricas", err: nominatim.ErrMalformedCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.provider.EXPECT().
				Search(gomock.Any(), gomock.Any()).
				Return(nil, tt.err).
				Times(1)

			result, err := f.service.Geocode(context.Background(), "Rua Inexistente")
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrAddressNotFound)

			entry, ok := f.service.Lookup("rua inexistente")
			require.True(t, ok)
			assert.Nil(t, entry.Result)

			result, err = f.service.Geocode(context.Background(), "Rua Inexistente")
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrAddressNotFound)
			assert.Equal(t, ErrAddressNotFound.Error(), f.service.LastError())
		})
	}
}

func TestGeocodeProviderFailureIsNotCached(t *testing.T) {
	f := newFixture(t)

	f.provider.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, &nominatimclient.StatusError{StatusCode: 503, Status: "503 Service Unavailable"}).
		Times(2)

	for i := 0; i < 2; i++ {
		result, err := f.service.Geocode(context.Background(), "Rua A")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrProvider)
		assert.Equal(t, "Erro na geocodificação: 503", f.service.LastError())
	}

	assert.Equal(t, 0, f.service.CacheStats().Total)
}

func TestGeocodeEmptyAddress(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.Geocode(context.Background(), "   ")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyAddress)
	assert.Equal(t, "Endereço não pode estar vazio", f.service.LastError())
}

func TestGeocodeCoalescesConcurrentLookups(t *testing.T) {
	f := newFixture(t)

	release := make(chan struct{})
	started := make(chan struct{})

	f.provider.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, query string) (*domain.GeocodeResult, error) {
			close(started)
			<-release
			return saoPaulo(), nil
		}).
		Times(1)

	var wg sync.WaitGroup
	results := make([]*domain.GeocodeResult, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = f.service.Geocode(context.Background(), "Rua A, 100")
	}()

	<-started
	assert.True(t, f.service.IsLoading())

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = f.service.Geocode(context.Background(), "rua a 100")
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, saoPaulo(), results[0])
	assert.Equal(t, saoPaulo(), results[1])
	assert.False(t, f.service.IsLoading())
}

func TestGeocodeCallerCancellationDoesNotAbortSharedLookup(t *testing.T) {
	f := newFixture(t)

	release := make(chan struct{})
	started := make(chan struct{})
	providerCtxErr := make(chan error, 1)

	f.provider.EXPECT().
		Search(gomock.Any(), "Rua A, 100, Brasil").
		DoAndReturn(func(ctx context.Context, query string) (*domain.GeocodeResult, error) {
			close(started)
			<-release
			providerCtxErr <- ctx.Err()
			return saoPaulo(), nil
		}).
		Times(1)

	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()

	errA := make(chan error, 1)
	go func() {
		_, err := f.service.Geocode(ctxA, "Rua A, 100")
		errA <- err
	}()

	<-started

	resultB := make(chan *domain.GeocodeResult, 1)
	errB := make(chan error, 1)
	go func() {
		result, err := f.service.Geocode(context.Background(), "rua a 100")
		resultB <- result
		errB <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancelA()

	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("chamador cancelado não retornou")
	}

	close(release)

	require.NoError(t, <-errB)
	assert.Equal(t, saoPaulo(), <-resultB)
	assert.NoError(t, <-providerCtxErr)
	assert.Empty(t, f.service.LastError())

	entry, ok := f.service.Lookup("Rua A, 100")
	require.True(t, ok)
	assert.Equal(t, saoPaulo(), entry.Result)
}

func TestLookupOrFetchRechecksCache(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Remember("Rua A, 100", -23.55, -46.63))

	// sem EXPECT no provedor: qualquer chamada falha o teste
	result, err := f.service.lookupOrFetch(context.Background(), NormalizeAddress("Rua A, 100"), "Rua A, 100")
	require.NoError(t, err)
	assert.Equal(t, -23.55, result.Lat)
	assert.Equal(t, -46.63, result.Lng)

	f.service.store(NormalizeAddress("Rua Sem Numero"), nil)

	_, err = f.service.lookupOrFetch(context.Background(), NormalizeAddress("Rua Sem Numero"), "Rua Sem Numero")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestRememberStoresCoordinates(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.service.Remember("Rua B, 200", -22.9, -43.2))

	result, err := f.service.Geocode(context.Background(), "rua b 200")
	require.NoError(t, err)
	assert.Equal(t, -22.9, result.Lat)
	assert.Equal(t, -43.2, result.Lng)

	assert.ErrorIs(t, f.service.Remember("Rua C", 100, 0), ErrInvalidCoordinates)
	assert.ErrorIs(t, f.service.Remember(" ", 0, 0), ErrEmptyAddress)
}

func TestLoad(t *testing.T) {
	t.Run("JSON inválido vira cache vazio", func(t *testing.T) {
		f := newFixture(t)
		f.state.EXPECT().Get(CacheStorageKey).Return([]byte("{not json"), nil)

		require.NoError(t, f.service.Load())
		assert.Equal(t, 0, f.service.CacheStats().Total)
	})

	t.Run("chave ausente", func(t *testing.T) {
		f := newFixture(t)
		f.state.EXPECT().Get(CacheStorageKey).Return(nil, nil)

		require.NoError(t, f.service.Load())
		assert.Equal(t, 0, f.service.CacheStats().Total)
	})

	t.Run("cache persistido", func(t *testing.T) {
		f := newFixture(t)
		raw := []byte(`{"rua a 100":{"result":{"lat":-23.55,"lng":-46.63,"display_name":"Rua A","boundingbox":[],"class":"","type":""},"timestamp":` +
			timestampOf(f.now.Add(-time.Hour)) + `},"rua sem":{"result":null,"timestamp":` + timestampOf(f.now) + `}}`)
		f.state.EXPECT().Get(CacheStorageKey).Return(raw, nil)

		require.NoError(t, f.service.Load())

		entry, ok := f.service.Lookup("Rua A, 100")
		require.True(t, ok)
		assert.Equal(t, -23.55, entry.Result.Lat)

		entry, ok = f.service.Lookup("rua sem")
		require.True(t, ok)
		assert.Nil(t, entry.Result)
	})

	t.Run("erro de leitura", func(t *testing.T) {
		f := newFixture(t)
		f.state.EXPECT().Get(CacheStorageKey).Return(nil, errors.New("db down"))

		assert.Error(t, f.service.Load())
		assert.Equal(t, 0, f.service.CacheStats().Total)
	})
}

func TestClearCache(t *testing.T) {
	f := newFixture(t)
	f.state.EXPECT().Delete(CacheStorageKey).Return(nil)

	require.NoError(t, f.service.Remember("Rua A", -1, -1))
	require.NoError(t, f.service.ClearCache())

	assert.Equal(t, domain.GeocodeCacheStats{}, f.service.CacheStats())
}

func TestReverseGeocode(t *testing.T) {
	f := newFixture(t)

	f.provider.EXPECT().
		Reverse(gomock.Any(), -23.55, -46.63).
		Return(&domain.ReverseGeocodeResponse{Lat: -23.55, Lng: -46.63, DisplayName: "Praça da Sé"}, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		response, err := f.service.ReverseGeocode(context.Background(), -23.55, -46.63)
		require.NoError(t, err)
		assert.Equal(t, "Praça da Sé", response.DisplayName)
	}

	_, err := f.service.ReverseGeocode(context.Background(), 91, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func timestampOf(t time.Time) string {
	raw, _ := json.Marshal(t.UnixMilli())
	return string(raw)
}
