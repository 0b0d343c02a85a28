// Package listmetrics wraps a linked list with prometheus instrumentation.
package listmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"simplelist/linkedlist"
)

const subsystem = "list"

// Metrics holds the collectors shared by every list instrumented with them.
type Metrics struct {
	Pushes     prometheus.Counter
	Pops       prometheus.Counter
	EmptyReads *prometheus.CounterVec
	Length     prometheus.Gauge
}

// NewMetrics creates the collectors under namespace and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes_total",
			Help:      "elements pushed to the list head",
		}),
		Pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pops_total",
			Help:      "elements popped from the list head",
		}),
		EmptyReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "empty_reads_total",
			Help:      "pop or peek calls made on an empty list",
		}, []string{"op"}),
		Length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "length",
			Help:      "current number of elements",
		}),
	}
	reg.MustRegister(m.Pushes, m.Pops, m.EmptyReads, m.Length)
	return m
}

// Instrumented is a list whose head operations are recorded in Metrics.
type Instrumented[T any] struct {
	list    *linkedlist.List[T]
	metrics *Metrics
}

var _ linkedlist.Stack[int] = (*Instrumented[int])(nil)

// Wrap instruments l. The length gauge is set from l immediately.
func Wrap[T any](l *linkedlist.List[T], m *Metrics) *Instrumented[T] {
	m.Length.Set(float64(l.Len()))
	return &Instrumented[T]{list: l, metrics: m}
}

func (i *Instrumented[T]) Push(v T) {
	i.list.Push(v)
	i.metrics.Pushes.Inc()
	i.metrics.Length.Set(float64(i.list.Len()))
}

func (i *Instrumented[T]) Pop() (T, bool) {
	v, ok := i.list.Pop()
	if !ok {
		i.metrics.EmptyReads.WithLabelValues("pop").Inc()
		return v, false
	}
	i.metrics.Pops.Inc()
	i.metrics.Length.Set(float64(i.list.Len()))
	return v, true
}

func (i *Instrumented[T]) Peek() (T, bool) {
	v, ok := i.list.Peek()
	if !ok {
		i.metrics.EmptyReads.WithLabelValues("peek").Inc()
	}
	return v, ok
}

func (i *Instrumented[T]) Len() int {
	return i.list.Len()
}

func (i *Instrumented[T]) IsEmpty() bool {
	return i.list.IsEmpty()
}

// ToSlice drains the list head first. Each element counts as a pop.
func (i *Instrumented[T]) ToSlice() []T {
	n := i.list.Len()
	out := i.list.ToSlice()
	i.metrics.Pops.Add(float64(n))
	i.metrics.Length.Set(0)
	return out
}

// Unwrap returns the underlying list. Changes made through it are not
// recorded.
func (i *Instrumented[T]) Unwrap() *linkedlist.List[T] {
	return i.list
}
