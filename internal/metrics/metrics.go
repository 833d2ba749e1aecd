// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ミドルウェアやサービス層から利用する。
type MetricsCollector interface {
	RecordHTTPStatus(statusCode int)
	RecordHTTPLatency(duration time.Duration)
	RecordWorkoutCreated()
	RecordSetLogged()
	RecordExerciseCreated()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpStatus       *prometheus.CounterVec
	httpLatency      prometheus.Histogram
	workoutsCreated  prometheus.Counter
	setsLogged       prometheus.Counter
	exercisesCreated prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "liftlog_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "liftlog_http_latency_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		workoutsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liftlog_workouts_created_total",
			Help: "作成されたワークアウトの合計数",
		}),
		setsLogged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liftlog_sets_logged_total",
			Help: "記録されたセットの合計数",
		}),
		exercisesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "liftlog_exercises_created_total",
			Help: "作成された種目の合計数",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.httpLatency,
		c.workoutsCreated,
		c.setsLogged,
		c.exercisesCreated,
	)

	return c
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordHTTPLatency はHTTPリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordHTTPLatency(duration time.Duration) {
	c.httpLatency.Observe(duration.Seconds())
}

// RecordWorkoutCreated はワークアウト作成を記録する。
func (c *Collector) RecordWorkoutCreated() {
	c.workoutsCreated.Inc()
}

// RecordSetLogged はセット記録を記録する。
func (c *Collector) RecordSetLogged() {
	c.setsLogged.Inc()
}

// RecordExerciseCreated は種目作成を記録する。
func (c *Collector) RecordExerciseCreated() {
	c.exercisesCreated.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)
