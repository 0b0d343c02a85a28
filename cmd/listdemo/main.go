// Command listdemo pushes a few integers onto a linked list, prints the head
// and then the whole list as a slice.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	uuid "github.com/satori/go.uuid"
	"github.com/spf13/pflag"

	"simplelist/linkedlist"
	"simplelist/listmetrics"
	"simplelist/log"
)

func main() {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("listdemo", pflag.ExitOnError)
	cfg.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	logger := log.New()
	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal("listdemo: %+v", err)
	}
}

func run(cfg *Config, out io.Writer, logger log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	logger = logger.WithField("run", uuid.NewV4().String())

	reg := prometheus.NewRegistry()
	list := listmetrics.Wrap(linkedlist.New[int](), listmetrics.NewMetrics("listdemo", reg))
	for i := 1; i <= cfg.Count; i++ {
		list.Push(i)
		logger.Debug("pushed %d, len %d", i, list.Len())
	}

	if head, ok := list.Peek(); ok {
		fmt.Fprintf(out, "List head: %d\n", head)
	} else {
		fmt.Fprintln(out, "List head: none")
	}
	fmt.Fprintf(out, "Linked list as slice: %v\n", list.ToSlice())
	logger.Info("converted %d elements", cfg.Count)

	if cfg.Metrics {
		return printMetrics(out, reg)
	}
	return nil
}

func printMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(out, "%s %g\n", name, m.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				fmt.Fprintf(out, "%s %g\n", name, m.GetGauge().GetValue())
			}
		}
	}
	return nil
}
