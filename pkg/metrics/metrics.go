// Package metrics registra as métricas Prometheus expostas em /metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "visita360"

var (
	// HTTPRequestDuration mede a duração das requisições por método, rota e status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	// GeocodeLookups conta consultas de geocodificação por resultado
	// (hit, miss, not_found, error)
	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geocode",
			Name:      "lookups_total",
			Help:      "Consultas de geocodificação por resultado",
		},
		[]string{"outcome"},
	)

	// GeocodeCacheEntries é o tamanho atual do cache de geocodificação
	GeocodeCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "geocode",
			Name:      "cache_entries",
			Help:      "Entradas no cache de geocodificação",
		},
	)

	// NotificationsCreated conta notificações novas por tipo e prioridade
	NotificationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "created_total",
			Help:      "Notificações novas geradas na reavaliação",
		},
		[]string{"type", "priority"},
	)

	// NotificationsDelivered conta entregas ao canal externo por resultado
	NotificationsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "delivered_total",
			Help:      "Entregas de notificações ao canal externo",
		},
		[]string{"outcome"},
	)

	// NotificationsActive é o tamanho atual do conjunto de notificações
	NotificationsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "active",
			Help:      "Notificações no conjunto atual",
		},
	)
)
