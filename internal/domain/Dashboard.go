package domain

type DashboardFilters struct {
	StartDate string   `json:"dataIni,omitempty"` // YYYY-MM-DD
	EndDate   string   `json:"dataFim,omitempty"` // YYYY-MM-DD
	Segment   *Segment `json:"segmento,omitempty"`
	Stage     *Stage   `json:"estagio,omitempty"`
}

type DashboardKPIs struct {
	TotalVisits      int     `json:"totalVisitas"`
	ClosedFollowUps  int     `json:"fechados"`
	TotalSold        float64 `json:"totalVendido"`
	ConversionRate   int     `json:"taxaConversao"` // Percentual arredondado
	PendingFollowUps int     `json:"pendentes"`
}

type Funnel struct {
	Visited   int `json:"visitados"`
	Contacted int `json:"contatados"`
	Quoted    int `json:"orcamentos"`
	Closed    int `json:"fechados"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ClientRevenue struct {
	Company string  `json:"empresa"`
	Value   float64 `json:"valor"`
}

type DashboardResponse struct {
	Filters     DashboardFilters `json:"filters"`
	KPIs        DashboardKPIs    `json:"kpis"`
	LossReasons []LabelCount     `json:"perdas"`
	Funnel      Funnel           `json:"funil"`
	BySegment   []LabelCount     `json:"segmentos"`
	ByStage     []LabelCount     `json:"estagios"`
	TopClients  []ClientRevenue  `json:"topClientes"`
}
