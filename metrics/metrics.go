// Copyright © 2021-2025 The Gomon Project.

// Package metrics exports the outcome of a check in the Prometheus text format, for collection
// by the node exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zosmac/checkjournal/core"
	"github.com/zosmac/checkjournal/rules"
	"github.com/zosmac/checkjournal/verdict"
)

type (
	// collector complies with the Prometheus Collector interface.
	collector struct {
		verdict verdict.Verdict
		time    time.Time
	}
)

const namespace = "checkjournal"

var (
	// descs describes each metric.
	descs = map[string]*prometheus.Desc{
		"matches": prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "matches"),
			"Records matching the rules of a severity in the last check.",
			[]string{"severity"}, nil,
		),
		"records": prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "records_scanned"),
			"Records read in the last check.",
			nil, nil,
		),
		"status": prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "status"),
			"Status of the last check: 0 ok, 1 warning, 2 critical, 3 unknown.",
			nil, nil,
		),
		"timestamp": prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "last_run_timestamp_seconds"),
			"Time the last check completed.",
			nil, nil,
		),
		"duration": prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "scan_duration_seconds"),
			"Time spent reading and classifying records in the last check.",
			nil, nil,
		),
	}
)

// Describe returns metric descriptions for collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range descs {
		ch <- desc
	}
}

// Collect returns the metrics of the check.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(descs["status"], prometheus.GaugeValue, float64(c.verdict.Status.ExitCode()))
	ch <- prometheus.MustNewConstMetric(descs["timestamp"], prometheus.GaugeValue, float64(c.time.UnixNano())/1e9)

	r := c.verdict.Result
	if r == nil { // failed checks report status only
		return
	}
	ch <- prometheus.MustNewConstMetric(descs["records"], prometheus.GaugeValue, float64(r.Records))
	ch <- prometheus.MustNewConstMetric(descs["duration"], prometheus.GaugeValue, r.Duration.Seconds())
	for _, sev := range rules.Severities {
		ch <- prometheus.MustNewConstMetric(descs["matches"], prometheus.GaugeValue, float64(r.Tally(sev).Count), sev.String())
	}
}

// Write saves the metrics of a check to path. The file is replaced atomically.
func Write(path string, v verdict.Verdict, now time.Time) error {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(&collector{verdict: v, time: now}); err != nil {
		return core.Error("register metrics", err)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return core.Error("write metrics", err)
	}
	return nil
}
