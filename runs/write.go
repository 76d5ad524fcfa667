package runs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reusee/bfvm/bfconfigs"
	"gopkg.in/yaml.v3"
)

// WriteReports renders reports. Text output is the decoded program output,
// with a header per report when there is more than one.
func WriteReports(w io.Writer, format bfconfigs.ReportFormat, reports []*Report) error {
	switch format {

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()

	case "text", "":
		for _, report := range reports {
			if report == nil {
				continue
			}
			if len(reports) > 1 {
				if _, err := fmt.Fprintf(w, "== %s\n", report.Name); err != nil {
					return err
				}
			}
			if report.DecodeError != "" {
				if _, err := fmt.Fprintf(w, "<%s>\n", report.DecodeError); err != nil {
					return err
				}
				continue
			}
			if _, err := io.WriteString(w, report.Text); err != nil {
				return err
			}
			if len(reports) > 1 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return fmt.Errorf("unknown report format: %s", format)
}
