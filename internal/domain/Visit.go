// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"
)

// Layouts aceitos para datas vindas do banco ou de integrações antigas
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
}

type Visit struct {
	ID             int64          `json:"id"`
	Date           string         `json:"data"` // Formato YYYY-MM-DD
	Address        string         `json:"endereco"`
	Lat            *float64       `json:"lat,omitempty"`
	Lng            *float64       `json:"lng,omitempty"`
	Company        string         `json:"empresa"`
	Segment        Segment        `json:"segmento"`
	Responsible    Responsible    `json:"responsavel"`
	Stage          Stage          `json:"estagio"`
	Competition    string         `json:"concorrencia"`
	Classification Classification `json:"classificacao"`
	Contact        string         `json:"contato"`
	Observation    string         `json:"obs"`
	Photos         []string       `json:"fotos"`
	Salesperson    string         `json:"vendedor"`
	CreatedAt      *time.Time     `json:"created_at,omitempty"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}

// HasCoordinates indica se a visita possui latitude e longitude preenchidas
func (v *Visit) HasCoordinates() bool {
	return v.Lat != nil && v.Lng != nil
}

// ParsedDate converte a data da visita para time.Time (UTC)
func (v *Visit) ParsedDate() (time.Time, bool) {
	return ParseRecordDate(v.Date)
}

type CreateVisitRequest struct {
	Date           string         `json:"data"`
	Address        string         `json:"endereco"`
	Lat            *float64       `json:"lat"`
	Lng            *float64       `json:"lng"`
	Company        string         `json:"empresa"`
	Segment        Segment        `json:"segmento"`
	Responsible    Responsible    `json:"responsavel"`
	Stage          Stage          `json:"estagio"`
	Competition    string         `json:"concorrencia"`
	Classification Classification `json:"classificacao"`
	Contact        string         `json:"contato"`
	Observation    string         `json:"obs"`
	Photos         []string       `json:"fotos"`
	Salesperson    string         `json:"vendedor"`
}

// ToVisit monta a visita a partir da requisição de cadastro
func (r *CreateVisitRequest) ToVisit() *Visit {
	photos := r.Photos
	if photos == nil {
		photos = []string{}
	}

	return &Visit{
		Date:           strings.TrimSpace(r.Date),
		Address:        strings.TrimSpace(r.Address),
		Lat:            r.Lat,
		Lng:            r.Lng,
		Company:        strings.TrimSpace(r.Company),
		Segment:        r.Segment,
		Responsible:    r.Responsible,
		Stage:          r.Stage,
		Competition:    r.Competition,
		Classification: r.Classification,
		Contact:        r.Contact,
		Observation:    r.Observation,
		Photos:         photos,
		Salesperson:    r.Salesperson,
	}
}

type UpdateVisitRequest struct {
	ID             int64           `json:"id"`
	Date           *string         `json:"data"`
	Address        *string         `json:"endereco"`
	Lat            *float64        `json:"lat"`
	Lng            *float64        `json:"lng"`
	Company        *string         `json:"empresa"`
	Segment        *Segment        `json:"segmento"`
	Responsible    *Responsible    `json:"responsavel"`
	Stage          *Stage          `json:"estagio"`
	Competition    *string         `json:"concorrencia"`
	Classification *Classification `json:"classificacao"`
	Contact        *string         `json:"contato"`
	Observation    *string         `json:"obs"`
	Photos         []string        `json:"fotos"`
	Salesperson    *string         `json:"vendedor"`
}

// MapPoint representa uma visita posicionada no mapa
type MapPoint struct {
	VisitID        int64          `json:"visitaId"`
	Company        string         `json:"empresa"`
	Address        string         `json:"endereco"`
	Lat            float64        `json:"lat"`
	Lng            float64        `json:"lng"`
	Classification Classification `json:"classificacao"`
	Stage          Stage          `json:"estagio"`
}

// ParseRecordDate interpreta a data de um registro. Datas sem horário
// são tratadas como meia-noite UTC.
func ParseRecordDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}

	return time.Time{}, false
}

// CreatedResponse é a resposta dos cadastros de visita e follow-up
type CreatedResponse struct {
	ID           int64  `json:"id"`
	Message      string `json:"message"`
	Visit        *Visit `json:"visita,omitempty"`
	GeocodeError string `json:"geocodeError,omitempty"`
}
