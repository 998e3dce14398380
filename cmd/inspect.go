package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/viant/lifecycle/metrics"
	"github.com/viant/lifecycle/transport"
)

// InspectCmd runs a short transport lifecycle and prints the metrics of every
// shared singleton.
type InspectCmd struct {
	Hold bool `long:"hold" description:"keep the transport handle while gathering"`
}

func (c *InspectCmd) Execute(_ []string) error {
	return c.run(os.Stdout)
}

func (c *InspectCmd) run(w io.Writer) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	wrapper := transport.Singleton()
	if _, err := wrapper.Acquire(transport.FailName); err == nil {
		return fmt.Errorf("expected %q to fail", transport.FailName)
	}
	h, err := wrapper.Acquire(cfg.Demo.Names[0])
	if err != nil {
		return err
	}
	if !c.Hold {
		h.Release()
	} else {
		defer h.Release()
	}

	registry := prometheus.NewRegistry()
	if err := registry.Register(metrics.NewSharedCollector()); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	return renderFamilies(w, families)
}

func renderFamilies(w io.Writer, families []*dto.MetricFamily) error {
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Labels", "Value")
	for _, family := range families {
		for _, m := range family.GetMetric() {
			var labels []string
			for _, label := range m.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}
			table.Append([]string{family.GetName(), strings.Join(labels, ","), strconv.FormatFloat(value, 'f', -1, 64)})
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render metrics: %w", err)
	}
	return nil
}
