package commands

import (
	"fmt"

	"github.com/websh-dev/websh/core/shell"
)

// Df reports disk usage per mounted partition in gigabytes. Partitions
// the provider could not size are left out.
func Df(p *shell.Proc) int {
	parts, err := p.SysInfo().Partitions()
	if err != nil {
		fmt.Fprintf(p.Stderr(), "df: %v\n", err)
		return 1
	}

	w := p.Stdout()
	fmt.Fprintln(w, "Filesystem      Size  Used Avail Use% Mounted on")
	for _, part := range parts {
		if part.Total == 0 {
			continue
		}
		percent := float64(part.Used) / float64(part.Total) * 100
		fmt.Fprintf(w, "%-15s %5.1fG %5.1fG %5.1fG %3.0f%% %s\n",
			part.Device, gigabytes(part.Total), gigabytes(part.Used), gigabytes(part.Free), percent, part.Mountpoint)
	}
	return 0
}

var _ shell.ProcessFunc = Df

func init() {
	Register(&Command{
		Names: []string{"df"},
		Use:   "df",
		Short: "Show disk space usage",
		Group: GroupSystem,
		Run:   Df,
	})
}
