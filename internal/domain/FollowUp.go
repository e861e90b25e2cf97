package domain

import (
	"strings"
	"time"
)

// FollowUp é uma interação registrada após a visita. A visita é a dona do
// registro: ao excluir a visita seus follow-ups são excluídos junto.
type FollowUp struct {
	ID         int64          `json:"id"`
	VisitID    int64          `json:"visitaId"`
	Date       string         `json:"data"` // Formato YYYY-MM-DD
	Status     FollowUpStatus `json:"status"`
	Value      *float64       `json:"valor,omitempty"`
	LossReason *LossReason    `json:"motivoPerda,omitempty"`
	CreatedAt  *time.Time     `json:"created_at,omitempty"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

func (f *FollowUp) ParsedDate() (time.Time, bool) {
	return ParseRecordDate(f.Date)
}

// IsClosed indica se o follow-up fechou pedido
func (f *FollowUp) IsClosed() bool {
	return f.Status.IsClosed()
}

type CreateFollowUpRequest struct {
	VisitID    int64          `json:"visitaId"`
	Date       string         `json:"data"`
	Status     FollowUpStatus `json:"status"`
	Value      *float64       `json:"valor"`
	LossReason *LossReason    `json:"motivoPerda"`
}

// ToFollowUp monta o follow-up a partir da requisição de cadastro. Motivo
// de perda vazio é tratado como ausente.
func (r *CreateFollowUpRequest) ToFollowUp() *FollowUp {
	lossReason := r.LossReason
	if lossReason != nil && strings.TrimSpace(string(*lossReason)) == "" {
		lossReason = nil
	}

	return &FollowUp{
		VisitID:    r.VisitID,
		Date:       strings.TrimSpace(r.Date),
		Status:     r.Status,
		Value:      r.Value,
		LossReason: lossReason,
	}
}
