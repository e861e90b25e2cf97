// Package followup deriva o estado de engajamento de uma visita a partir do
// histórico de follow-ups
package followup

import (
	"math"
	"time"

	"github.com/vfg2006/visita360-api/internal/domain"
)

const day = 24 * time.Hour

type Derivation struct {
	Visit         *domain.Visit
	LastFollowUp  *domain.FollowUp
	BaseDate      time.Time
	Elapsed       time.Duration
	DaysSinceBase int
	IsClosed      bool
}

// Derive calcula o último follow-up da visita, os dias completos desde a
// data base e se o pedido foi fechado. A data base é a do último follow-up
// ou, sem follow-ups, a da própria visita. Em datas iguais vence o que
// aparece por último na lista. Retorna false quando a data base não pode
// ser interpretada.
func Derive(visit *domain.Visit, followUps []*domain.FollowUp, now time.Time) (Derivation, bool) {
	if visit == nil {
		return Derivation{}, false
	}

	var (
		last     *domain.FollowUp
		lastDate time.Time
	)

	for _, followUp := range followUps {
		if followUp == nil || followUp.VisitID != visit.ID {
			continue
		}

		date, ok := followUp.ParsedDate()
		if !ok {
			continue
		}

		if last == nil || !date.Before(lastDate) {
			last = followUp
			lastDate = date
		}
	}

	base := lastDate
	if last == nil {
		visitDate, ok := visit.ParsedDate()
		if !ok {
			return Derivation{}, false
		}
		base = visitDate
	}

	elapsed := now.Sub(base)

	return Derivation{
		Visit:         visit,
		LastFollowUp:  last,
		BaseDate:      base,
		Elapsed:       elapsed,
		DaysSinceBase: int(math.Floor(float64(elapsed) / float64(day))),
		IsClosed:      last != nil && last.IsClosed(),
	}, true
}

// ElapsedDays é a idade fracionária em dias desde a data base
func (d Derivation) ElapsedDays() float64 {
	return float64(d.Elapsed) / float64(day)
}

// DeriveAll deriva todas as visitas, ignorando as que não têm data válida
func DeriveAll(visits []*domain.Visit, followUps []*domain.FollowUp, now time.Time) []Derivation {
	byVisit := GroupByVisit(followUps)

	derivations := make([]Derivation, 0, len(visits))
	for _, visit := range visits {
		if visit == nil {
			continue
		}

		derivation, ok := Derive(visit, byVisit[visit.ID], now)
		if !ok {
			continue
		}
		derivations = append(derivations, derivation)
	}

	return derivations
}

// GroupByVisit agrupa os follow-ups por visita mantendo a ordem da lista
func GroupByVisit(followUps []*domain.FollowUp) map[int64][]*domain.FollowUp {
	grouped := make(map[int64][]*domain.FollowUp)
	for _, followUp := range followUps {
		if followUp == nil {
			continue
		}
		grouped[followUp.VisitID] = append(grouped[followUp.VisitID], followUp)
	}
	return grouped
}
