package geocoding

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim"
	"github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/nominatimclient"
	"github.com/vfg2006/visita360-api/infrastructure/repository"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CacheStorageKey é a chave do blob do cache na tabela de estado
const CacheStorageKey = "visita360_geocode_cache"

type GeocodingService interface {
	Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.ReverseGeocodeResponse, error)
	Lookup(address string) (*domain.GeocodeCacheEntry, bool)
	Remember(address string, lat, lng float64) error
	ClearCache() error
	CacheStats() domain.GeocodeCacheStats
	Status() domain.GeocodeStatus
	IsLoading() bool
	LastError() string
	Load() error
	Flush() error
}

type Option func(*GeocodeService)

// WithClock substitui o relógio usado para TTL e timestamps
func WithClock(now func() time.Time) Option {
	return func(s *GeocodeService) {
		s.now = now
	}
}

type GeocodeService struct {
	provider         nominatim.NominatimIntegrator
	stateRepository  repository.StateRepository
	ttl              time.Duration
	countryQualifier string
	timeout          time.Duration
	now              func() time.Time

	mu        sync.Mutex
	cache     domain.GeocodeCache
	inFlight  int
	lastError string

	flight singleflight.Group
}

func NewGeocodeService(
	cfg *config.Config,
	provider nominatim.NominatimIntegrator,
	stateRepository repository.StateRepository,
	opts ...Option,
) *GeocodeService {
	s := &GeocodeService{
		provider:         provider,
		stateRepository:  stateRepository,
		ttl:              cfg.Geocoder.CacheTTL,
		countryQualifier: cfg.Geocoder.CountryQualifier,
		timeout:          cfg.Geocoder.Timeout,
		now:              time.Now,
		cache:            domain.GeocodeCache{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load carrega o cache persistido. JSON ausente ou inválido resulta em cache vazio.
func (s *GeocodeService) Load() error {
	raw, err := s.stateRepository.Get(CacheStorageKey)
	if err != nil {
		s.replaceCache(domain.GeocodeCache{})
		return err
	}

	cache := domain.GeocodeCache{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &cache); err != nil {
			logrus.WithError(err).Warn("Cache de geocodificação inválido, iniciando vazio")
			cache = domain.GeocodeCache{}
		}
	}

	s.replaceCache(cache)

	logrus.WithField("geocode_entries", len(cache)).Info("Cache de geocodificação carregado")
	return nil
}

func (s *GeocodeService) replaceCache(cache domain.GeocodeCache) {
	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()

	metrics.GeocodeCacheEntries.Set(float64(len(cache)))
}

// Flush grava o estado atual do cache
func (s *GeocodeService) Flush() error {
	s.mu.Lock()
	raw, err := json.Marshal(s.cache)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	return s.stateRepository.Put(CacheStorageKey, raw)
}

// persistLocked grava o cache. Falhas de escrita são apenas registradas.
// Deve ser chamado com s.mu travado.
func (s *GeocodeService) persistLocked() {
	metrics.GeocodeCacheEntries.Set(float64(len(s.cache)))

	raw, err := json.Marshal(s.cache)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível serializar o cache de geocodificação")
		return
	}

	if err := s.stateRepository.Put(CacheStorageKey, raw); err != nil {
		logrus.WithError(err).Warn("Não foi possível salvar no cache de geocodificação")
	}
}

// purgeExpiredLocked remove todas as entradas com idade >= TTL
func (s *GeocodeService) purgeExpiredLocked(nowMillis int64) {
	removed := 0
	for key, entry := range s.cache {
		if !s.isFresh(entry, nowMillis) {
			delete(s.cache, key)
			removed++
		}
	}

	if removed > 0 {
		logrus.WithField("geocode_purged", removed).Debug("Entradas expiradas removidas do cache")
		s.persistLocked()
	}
}

func (s *GeocodeService) isFresh(entry domain.GeocodeCacheEntry, nowMillis int64) bool {
	return nowMillis-entry.Timestamp < s.ttl.Milliseconds()
}

// Lookup procura o endereço no cache após remover as entradas expiradas.
// Uma entrada com resultado nulo também é um acerto.
func (s *GeocodeService) Lookup(address string) (*domain.GeocodeCacheEntry, bool) {
	key := NormalizeAddress(address)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(s.now().UnixMilli())

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}

	return &entry, true
}

// Geocode resolve o endereço em coordenadas consultando o cache antes do
// provedor. Erros retornados são informativos: o resultado é nulo e a
// mensagem também fica disponível em LastError.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		s.setLastError(ErrEmptyAddress.Error())
		return nil, ErrEmptyAddress
	}

	s.setLastError("")

	if entry, ok := s.Lookup(trimmed); ok {
		if entry.Result == nil {
			metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
			s.setLastError(ErrAddressNotFound.Error())
			return nil, ErrAddressNotFound
		}

		metrics.GeocodeLookups.WithLabelValues("hit").Inc()
		result := *entry.Result
		return &result, nil
	}

	key := NormalizeAddress(trimmed)
	ch := s.flight.DoChan(key, func() (interface{}, error) {
		flightCtx, cancel := s.flightContext(ctx)
		defer cancel()
		return s.lookupOrFetch(flightCtx, key, trimmed)
	})

	select {
	case <-ctx.Done():
		// A consulta continua para os demais chamadores e termina no cache
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			s.setLastError(res.Err.Error())
			return nil, res.Err
		}

		result := *(res.Val.(*domain.GeocodeResult))
		return &result, nil
	}
}

// flightContext desacopla a consulta compartilhada do cancelamento de quem
// a iniciou, mantendo o timeout do provedor
func (s *GeocodeService) flightContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		return context.WithTimeout(detached, s.timeout)
	}
	return context.WithCancel(detached)
}

// lookupOrFetch confere o cache de novo antes de ir ao provedor: outra
// consulta pode ter terminado entre o miss e o início deste voo.
func (s *GeocodeService) lookupOrFetch(ctx context.Context, key, address string) (*domain.GeocodeResult, error) {
	if entry, ok := s.Lookup(address); ok {
		if entry.Result == nil {
			metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
			return nil, ErrAddressNotFound
		}

		metrics.GeocodeLookups.WithLabelValues("hit").Inc()
		result := *entry.Result
		return &result, nil
	}

	return s.fetch(ctx, key, address)
}

// fetch consulta o provedor e grava o resultado. Lista vazia e coordenadas
// não numéricas são gravadas como nulas para não repetir a consulta dentro
// do TTL.
func (s *GeocodeService) fetch(ctx context.Context, key, address string) (*domain.GeocodeResult, error) {
	s.beginLoading()
	defer s.endLoading()

	query := address
	if s.countryQualifier != "" {
		query = address + ", " + s.countryQualifier
	}

	logger := logrus.WithFields(logrus.Fields{
		"geocode_key":   key,
		"geocode_query": query,
	})

	result, err := s.provider.Search(ctx, query)
	if err != nil {
		if errors.Is(err, nominatim.ErrNotFound) || errors.Is(err, nominatim.ErrMalformedCoordinates) {
			metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
			s.store(key, nil)
			logger.WithError(err).Debug("Endereço sem coordenadas no provedor")
			return nil, ErrAddressNotFound
		}

		metrics.GeocodeLookups.WithLabelValues("error").Inc()
		logger.WithError(err).Warn("Falha ao consultar o provedor de geocodificação")
		return nil, newProviderError("geocodificação", err)
	}

	metrics.GeocodeLookups.WithLabelValues("miss").Inc()
	s.store(key, result)
	logger.WithFields(logrus.Fields{
		"geocode_lat": result.Lat,
		"geocode_lng": result.Lng,
	}).Debug("Endereço geocodificado")

	return result, nil
}

func (s *GeocodeService) store(key string, result *domain.GeocodeResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[key] = domain.GeocodeCacheEntry{
		Result:    result,
		Timestamp: s.now().UnixMilli(),
	}
	s.persistLocked()
}

// ReverseGeocode converte coordenadas em endereço. Não usa cache.
func (s *GeocodeService) ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.ReverseGeocodeResponse, error) {
	if !ValidateCoordinates(lat, lng) {
		s.setLastError(ErrInvalidCoordinates.Error())
		return nil, ErrInvalidCoordinates
	}

	s.setLastError("")
	s.beginLoading()
	defer s.endLoading()

	response, err := s.provider.Reverse(ctx, lat, lng)
	if err != nil {
		if errors.Is(err, nominatim.ErrNotFound) || errors.Is(err, nominatim.ErrMalformedCoordinates) {
			s.setLastError(ErrAddressNotFound.Error())
			return nil, ErrAddressNotFound
		}

		providerErr := newProviderError("reverse geocoding", err)
		s.setLastError(providerErr.Error())
		logrus.WithError(err).Warn("Falha no reverse geocoding")
		return nil, providerErr
	}

	return response, nil
}

// Remember grava coordenadas já conhecidas para o endereço
func (s *GeocodeService) Remember(address string, lat, lng float64) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return ErrEmptyAddress
	}
	if !ValidateCoordinates(lat, lng) {
		return ErrInvalidCoordinates
	}

	s.store(NormalizeAddress(trimmed), &domain.GeocodeResult{
		Lat:         lat,
		Lng:         lng,
		DisplayName: trimmed,
		BoundingBox: []string{},
	})

	return nil
}

// ClearCache descarta todas as entradas e remove o blob persistido
func (s *GeocodeService) ClearCache() error {
	s.mu.Lock()
	s.cache = domain.GeocodeCache{}
	s.mu.Unlock()

	metrics.GeocodeCacheEntries.Set(0)

	return s.stateRepository.Delete(CacheStorageKey)
}

// CacheStats conta entradas ativas e expiradas sem removê-las
func (s *GeocodeService) CacheStats() domain.GeocodeCacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMillis := s.now().UnixMilli()
	stats := domain.GeocodeCacheStats{Total: len(s.cache)}
	for _, entry := range s.cache {
		if !s.isFresh(entry, nowMillis) {
			stats.Expired++
		}
	}
	stats.Active = stats.Total - stats.Expired

	return stats
}

func (s *GeocodeService) Status() domain.GeocodeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.GeocodeStatus{
		IsLoading: s.inFlight > 0,
		Error:     s.lastError,
	}
}

func (s *GeocodeService) IsLoading() bool {
	return s.Status().IsLoading
}

func (s *GeocodeService) LastError() string {
	return s.Status().Error
}

func (s *GeocodeService) setLastError(message string) {
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()
}

func (s *GeocodeService) beginLoading() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *GeocodeService) endLoading() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

func newProviderError(operation string, err error) *ProviderError {
	providerErr := &ProviderError{Operation: operation, Err: err}

	var statusErr *nominatimclient.StatusError
	if errors.As(err, &statusErr) {
		providerErr.StatusCode = statusErr.StatusCode
	}

	return providerErr
}
