// Package http は外部API呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPClient はプロバイダー呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout / KeepAlive: TCP接続のタイムアウトと維持期間
//   - MaxIdleConnsPerHost: 接続先は単一のブリッジなのでホスト単位の上限を引き上げる
//   - ResponseHeaderTimeout: ヘッダー到着までの上限（全体はClient.Timeout）
//
// regがnilでなければ、送信リクエスト数とレイテンシをvnstock_api_upstream_*として記録します。
func NewHTTPClient(timeout time.Duration, reg prometheus.Registerer) *http.Client {
	var rt http.RoundTripper = &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	if reg != nil {
		rt = instrument(rt, reg)
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}

func instrument(next http.RoundTripper, reg prometheus.Registerer) http.RoundTripper {
	factory := promauto.With(reg)
	requests := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vnstock_api",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of requests sent to the vnstock bridge",
		},
		[]string{"code", "method"},
	)
	duration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vnstock_api",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests sent to the vnstock bridge",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	return promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(duration, next))
}
