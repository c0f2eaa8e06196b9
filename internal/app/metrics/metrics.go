// Package metrics exposes Prometheus instrumentation for the generation and
// translation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "suomicast"

// Generation counters (incremented by the refresh controller and providers).
var (
	EpisodesGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "episodes_generated_total",
		Help:      "Total daily episodes generated successfully with audio.",
	})

	GenerationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_failures_total",
		Help:      "Total failed daily generation attempts.",
	})

	EmptyAudioGenerationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "empty_audio_generations_total",
		Help:      "Generations whose speech synthesis returned no audio; not persisted.",
	})

	GenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Wall time of one full script+speech generation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1s → ~2m
	})
)

// Translation counters.
var (
	TranslationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translations_total",
		Help:      "Completed segment translations per target language.",
	}, []string{"language"})

	TranslationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translation_failures_total",
		Help:      "Failed segment translation requests.",
	})
)

// Store and player counters.
var (
	EpisodesServedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "episodes_served_total",
		Help:      "Episodes presented to clients, by source.",
	}, []string{"source"}) // "cache", "placeholder", "generated", "fallback"

	SegmentClicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "segment_clicks_total",
		Help:      "Transcript segment click-to-seek events.",
	})
)

func init() {
	prometheus.MustRegister(
		EpisodesGeneratedTotal,
		GenerationFailuresTotal,
		EmptyAudioGenerationsTotal,
		GenerationDuration,
		TranslationsTotal,
		TranslationFailuresTotal,
		EpisodesServedTotal,
		SegmentClicksTotal,
	)
}
