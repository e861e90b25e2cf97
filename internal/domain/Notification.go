package domain

import "time"

type NotificationType string

const (
	NotificationFollowUpDue     NotificationType = "follow_up_due"
	NotificationFollowUpOverdue NotificationType = "follow_up_overdue"
	NotificationMetaAlert       NotificationType = "meta_alert"
	NotificationSystem          NotificationType = "system"
)

// IsFollowUp indica se a notificação se refere a um follow-up pendente
func (t NotificationType) IsFollowUp() bool {
	return t == NotificationFollowUpDue || t == NotificationFollowUpOverdue
}

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

var priorityRank = map[NotificationPriority]int{
	PriorityUrgent: 4,
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Rank retorna o peso usado na ordenação (urgent=4 ... low=1)
func (p NotificationPriority) Rank() int {
	return priorityRank[p]
}

// Notification é um item efêmero, mantido apenas em memória
type Notification struct {
	ID             string               `json:"id"`
	Type           NotificationType     `json:"type"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Priority       NotificationPriority `json:"priority"`
	CreatedAt      time.Time            `json:"createdAt"`
	VisitID        *int64               `json:"visitaId,omitempty"`
	IsRead         bool                 `json:"isRead"`
	ActionLabel    string               `json:"actionLabel,omitempty"`
	ActionCallback func()               `json:"-"`
}

type NotificationStats struct {
	Total        int `json:"total"`
	Unread       int `json:"unread"`
	Urgent       int `json:"urgent"`
	FollowUpsDue int `json:"followUpsDue"`
}

// NotificationPermission espelha os estados de permissão do canal de entrega
type NotificationPermission string

const (
	PermissionDefault NotificationPermission = "default"
	PermissionGranted NotificationPermission = "granted"
	PermissionDenied  NotificationPermission = "denied"
)

// Delivery é o que é entregue ao canal externo (alerta de desktop, webhook...)
type Delivery struct {
	Tag                string               `json:"tag"`
	Title              string               `json:"title"`
	Message            string               `json:"message"`
	Priority           NotificationPriority `json:"priority"`
	RequireInteraction bool                 `json:"requireInteraction"`
	AutoDismissAfter   time.Duration        `json:"-"`
	Silent             bool                 `json:"silent"`
	OnActivate         func()               `json:"-"`
}

type NotificationsResponse struct {
	Notifications []Notification         `json:"notifications"`
	Stats         NotificationStats      `json:"stats"`
	Permission    NotificationPermission `json:"permission"`
}
