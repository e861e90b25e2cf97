package notifying

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/visita360-api/internal/domain"
	"github.com/vfg2006/visita360-api/internal/usecases/followup"
)

// Abaixo desta taxa de conversão mensal (%) é emitido o alerta de meta
const lowConversionThreshold = 10.0

// Generator recalcula do zero as notificações a partir das visitas e
// follow-ups. O ID de cada notificação combina tipo, visita e o instante da
// avaliação truncado para a janela configurada, de modo que avaliações na
// mesma janela produzem os mesmos IDs.
type Generator struct {
	prazoDays int
	idWindow  time.Duration
}

func NewGenerator(prazoDays int, idWindow time.Duration) *Generator {
	return &Generator{
		prazoDays: prazoDays,
		idWindow:  idWindow,
	}
}

func (g *Generator) stamp(now time.Time) string {
	if g.idWindow > 0 {
		now = now.Truncate(g.idWindow)
	}
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Generate junta follow-ups e alertas de meta já ordenados
func (g *Generator) Generate(visits []*domain.Visit, followUps []*domain.FollowUp, now time.Time) []domain.Notification {
	notifications := g.FollowUpNotifications(visits, followUps, now)
	notifications = append(notifications, g.MetaNotifications(visits, followUps, now)...)

	SortNotifications(notifications)
	return notifications
}

// FollowUpNotifications emite "devido" quando os dias desde a data base são
// exatamente o prazo e "atrasado" quando passam dele. Uma avaliação que só
// acontece depois do dia do prazo pula direto para "atrasado".
func (g *Generator) FollowUpNotifications(visits []*domain.Visit, followUps []*domain.FollowUp, now time.Time) []domain.Notification {
	stamp := g.stamp(now)
	notifications := make([]domain.Notification, 0)

	for _, derivation := range followup.DeriveAll(visits, followUps, now) {
		if derivation.IsClosed {
			continue
		}

		visit := derivation.Visit
		visitID := visit.ID
		days := derivation.DaysSinceBase

		switch {
		case days == g.prazoDays:
			notifications = append(notifications, domain.Notification{
				ID:          notificationID(domain.NotificationFollowUpDue, visitID, stamp),
				Type:        domain.NotificationFollowUpDue,
				Title:       "Follow-up Necessário",
				Message:     fmt.Sprintf("%s - Prazo de %d dias atingido", visit.Company, g.prazoDays),
				Priority:    domain.PriorityMedium,
				CreatedAt:   now,
				VisitID:     &visitID,
				ActionLabel: "Fazer Follow-up",
			})
		case days > g.prazoDays:
			overdue := days - g.prazoDays
			priority := domain.PriorityHigh
			if overdue > 7 {
				priority = domain.PriorityUrgent
			}

			notifications = append(notifications, domain.Notification{
				ID:          notificationID(domain.NotificationFollowUpOverdue, visitID, stamp),
				Type:        domain.NotificationFollowUpOverdue,
				Title:       "Follow-up Atrasado",
				Message:     fmt.Sprintf("%s - %d dias de atraso", visit.Company, overdue),
				Priority:    priority,
				CreatedAt:   now,
				VisitID:     &visitID,
				ActionLabel: "Fazer Follow-up Urgente",
			})
		}
	}

	return notifications
}

// MetaNotifications compara visitas e pedidos fechados do mês corrente (UTC)
func (g *Generator) MetaNotifications(visits []*domain.Visit, followUps []*domain.FollowUp, now time.Time) []domain.Notification {
	month := now.UTC().Format("2006-01")

	visitCount := 0
	for _, visit := range visits {
		if visit != nil && strings.HasPrefix(visit.Date, month) {
			visitCount++
		}
	}

	if visitCount == 0 {
		return nil
	}

	closedCount := 0
	for _, followUp := range followUps {
		if followUp != nil && strings.HasPrefix(followUp.Date, month) && followUp.IsClosed() {
			closedCount++
		}
	}

	rate := float64(closedCount) / float64(visitCount) * 100
	if rate >= lowConversionThreshold {
		return nil
	}

	return []domain.Notification{
		{
			ID:          "meta_conversion_low_" + g.stamp(now),
			Type:        domain.NotificationMetaAlert,
			Title:       "Taxa de Conversão Baixa",
			Message:     fmt.Sprintf("Taxa atual: %.1f%% - Considere revisar estratégia", rate),
			Priority:    domain.PriorityMedium,
			CreatedAt:   now,
			ActionLabel: "Ver Dashboard",
		},
	}
}

// SortNotifications ordena por prioridade e, em seguida, da mais recente
// para a mais antiga
func SortNotifications(notifications []domain.Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		a, b := notifications[i], notifications[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

func notificationID(notificationType domain.NotificationType, visitID int64, stamp string) string {
	return fmt.Sprintf("%s_%d_%s", notificationType, visitID, stamp)
}
