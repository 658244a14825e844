// Copyright 2026 NetScope ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/netscope-ml/netscope/internal/analyzer"
)

// Table renders the per-layer analysis as a plain-text table with a
// totals footer, suitable for terminals and the diagram endpoint.
func Table(details []analyzer.Record, summary analyzer.Summary) string {
	buf := &bytes.Buffer{}

	t := tablewriter.NewWriter(buf)
	t.SetHeader([]string{"#", "Layer", "Type", "Output Shape", "Params", "RF", "Stride"})
	t.SetAutoWrapText(false)

	for _, r := range details {
		kind, _ := r.Config["type"].(string)
		t.Append([]string{
			strconv.Itoa(r.Index),
			r.Name,
			kind,
			r.OutputShape.String(),
			strconv.Itoa(r.Params),
			r.ReceptiveField.String(),
			strconv.Itoa(r.EffectiveStride),
		})
	}

	t.SetFooter([]string{
		"", "", "Total",
		summary.OutputShape.String(),
		strconv.Itoa(summary.TotalParams),
		summary.ReceptiveField.String(),
		"",
	})
	t.Render()

	return buf.String()
}
