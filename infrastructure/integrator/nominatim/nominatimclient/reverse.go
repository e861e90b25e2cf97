package nominatimclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	nominatimdomain "github.com/vfg2006/visita360-api/infrastructure/integrator/nominatim/domain"
)

func (c *NominatimClient) Reverse(ctx context.Context, lat, lng float64) (*nominatimdomain.ReversePlace, error) {
	endpoint, err := url.Parse(c.config.ReverseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	params := endpoint.Query()
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	place := &nominatimdomain.ReversePlace{}
	if err := c.do(ctx, req, place); err != nil {
		return nil, err
	}

	return place, nil
}
