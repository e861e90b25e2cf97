package domain

import "slices"

type Segment string

const (
	SegmentContractors  Segment = "Empreiteiras"
	SegmentEngineering  Segment = "Engenharias"
	SegmentArchitecture Segment = "Arquitetura"
	SegmentPrivate      Segment = "Particular"
	SegmentCondominium  Segment = "Condomínio"
)

var ValidSegments = []Segment{
	SegmentContractors,
	SegmentEngineering,
	SegmentArchitecture,
	SegmentPrivate,
	SegmentCondominium,
}

func (s Segment) IsValid() bool {
	return slices.Contains(ValidSegments, s)
}

type Responsible string

const (
	ResponsibleCivilEngineer Responsible = "Eng Civil"
	ResponsibleForeman       Responsible = "Mestre de Obras"
	ResponsibleArchitect     Responsible = "Arquiteto"
	ResponsibleOther         Responsible = "Outros"
	ResponsibleTrustee       Responsible = "Síndico"
	ResponsibleCaretaker     Responsible = "Zelador"
)

var ValidResponsibles = []Responsible{
	ResponsibleCivilEngineer,
	ResponsibleForeman,
	ResponsibleArchitect,
	ResponsibleOther,
	ResponsibleTrustee,
	ResponsibleCaretaker,
}

func (r Responsible) IsValid() bool {
	return slices.Contains(ValidResponsibles, r)
}

type Stage string

const (
	StageInitial      Stage = "Inicial"
	StageIntermediate Stage = "Intermediário"
	StageFinal        Stage = "Final"
	StageRenovation   Stage = "Reforma"
)

var ValidStages = []Stage{StageInitial, StageIntermediate, StageFinal, StageRenovation}

func (s Stage) IsValid() bool {
	return slices.Contains(ValidStages, s)
}

// Classification é a força qualitativa da oportunidade
type Classification string

const (
	ClassificationStrong Classification = "Forte"
	ClassificationMedium Classification = "Médio"
	ClassificationWeak   Classification = "Fraco"
)

var ValidClassifications = []Classification{ClassificationStrong, ClassificationMedium, ClassificationWeak}

func (c Classification) IsValid() bool {
	return slices.Contains(ValidClassifications, c)
}

type FollowUpStatus string

const (
	FollowUpStatusReturned     FollowUpStatus = "Retornou"
	FollowUpStatusDealClosed   FollowUpStatus = "Fechou pedido"
	FollowUpStatusQuote        FollowUpStatus = "Orçamento"
	FollowUpStatusPriceInquiry FollowUpStatus = "Consulta preço"
	FollowUpStatusNoResponse   FollowUpStatus = "Sem retorno"
)

var ValidFollowUpStatuses = []FollowUpStatus{
	FollowUpStatusReturned,
	FollowUpStatusDealClosed,
	FollowUpStatusQuote,
	FollowUpStatusPriceInquiry,
	FollowUpStatusNoResponse,
}

func (s FollowUpStatus) IsValid() bool {
	return slices.Contains(ValidFollowUpStatuses, s)
}

// IsClosed indica se o follow-up representa um pedido fechado
func (s FollowUpStatus) IsClosed() bool {
	return s == FollowUpStatusDealClosed
}

type LossReason string

const (
	LossReasonLowerPrice LossReason = "Preço menor"
	LossReasonNoResponse LossReason = "Sem retorno"
	LossReasonOutOfStock LossReason = "Produto em falta"
	LossReasonDelivery   LossReason = "Entrega"
	LossReasonNotCovered LossReason = "Edu não cobriu"
	LossReasonOther      LossReason = "Outros"
)

var ValidLossReasons = []LossReason{
	LossReasonLowerPrice,
	LossReasonNoResponse,
	LossReasonOutOfStock,
	LossReasonDelivery,
	LossReasonNotCovered,
	LossReasonOther,
}

func (m LossReason) IsValid() bool {
	return slices.Contains(ValidLossReasons, m)
}

// Enums agrupa todas as enumerações fechadas expostas para os formulários
type Enums struct {
	Segments        []Segment        `json:"segmentos"`
	Responsibles    []Responsible    `json:"responsaveis"`
	Stages          []Stage          `json:"estagios"`
	Classifications []Classification `json:"classificacoes"`
	FollowUpStatus  []FollowUpStatus `json:"followup_status"`
	LossReasons     []LossReason     `json:"motivos_perda"`
}

func AllEnums() Enums {
	return Enums{
		Segments:        slices.Clone(ValidSegments),
		Responsibles:    slices.Clone(ValidResponsibles),
		Stages:          slices.Clone(ValidStages),
		Classifications: slices.Clone(ValidClassifications),
		FollowUpStatus:  slices.Clone(ValidFollowUpStatuses),
		LossReasons:     slices.Clone(ValidLossReasons),
	}
}
