// SPDX-License-Identifier: MIT

package env

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Report writes a table describing the environment to w.
func (e *Env) Report(w io.Writer) error {
	seeds := e.Seeds()
	ss := make([]string, len(seeds))
	for i, s := range seeds {
		ss[i] = strconv.FormatUint(s, 10)
	}
	if _, err := fmt.Fprintln(w, "EXECUTION ENVIRONMENT:"); err != nil {
		return err
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Setting", "Value"})
	t.SetAutoFormatHeaders(false)
	t.AppendBulk([][]string{
		{"Environment", e.id.String()},
		{"Running", "locally on one node"},
		{"Number of ranks", "1"},
		{"Number of workers", strconv.Itoa(e.workers)},
		{"GOMAXPROCS", strconv.Itoa(runtime.GOMAXPROCS(0))},
		{"Precision", "double (complex128)"},
		{"Epsilon", strconv.FormatFloat(e.eps, 'g', -1, 64)},
		{"Parallel threshold", strconv.Itoa(e.parallelThreshold)},
		{"Max qubits", strconv.Itoa(e.maxQubits)},
		{"Live registers", strconv.FormatInt(e.live.Load(), 10)},
		{"Seeds", strings.Join(ss, ", ")},
	})
	t.Render()

	return nil
}
