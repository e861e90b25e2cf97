package nominatimclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	nominatimdomain "github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/domain"
)

func (c *NominatimClient) Search(ctx context.Context, query string) ([]nominatimdomain.Place, error) {
	endpoint, err := url.Parse(c.config.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	params := endpoint.Query()
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")
	params.Set("q", query)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	var places []nominatimdomain.Place
	if err := c.do(ctx, req, &places); err != nil {
		return nil, err
	}

	return places, nil
}
