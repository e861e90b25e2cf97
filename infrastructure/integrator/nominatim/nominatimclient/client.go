package nominatimclient

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	nominatimdomain "github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/domain"
	"github.com/vfg2006/visita360-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Search(ctx context.Context, query string) ([]nominatimdomain.Place, error)
	Reverse(ctx context.Context, lat, lng float64) (*nominatimdomain.ReversePlace, error)
}

// StatusError indica uma resposta HTTP fora da faixa de sucesso
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}

type NominatimClient struct {
	httpClient *http.Client
	config     *config.Geocoder
	limiter    *rate.Limiter
}

// NewClient cria o cliente do Nominatim respeitando o limite de requisições
// por segundo configurado
func NewClient(cfg *config.Config) Client {
	limit := rate.Inf
	if cfg.Geocoder.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Geocoder.RequestsPerSecond)
	}

	return &NominatimClient{
		httpClient: &http.Client{
			Timeout: cfg.Geocoder.Timeout,
		},
		config:  &cfg.Geocoder,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// do executa a requisição e decodifica o JSON em out
func (c *NominatimClient) do(ctx context.Context, req *http.Request, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("limite de requisições: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
