package iocache

import (
	"fmt"
	"io"

	"github.com/huangsam/crs/schema"
)

// PrintStoreStatus prints profile store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Location: %s\n", status.Location)
	_, _ = fmt.Fprintf(w, "Total Profiles: %d\n", status.TotalProfiles)
	if status.TotalProfiles > 0 && !status.LastUpdated.IsZero() {
		_, _ = fmt.Fprintf(w, "Last Updated: %s\n", status.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	if status.RuleSet != "" {
		_, _ = fmt.Fprintf(w, "Rule Set: %s\n", status.RuleSet)
	}
	if status.SchemaVersion > 0 {
		_, _ = fmt.Fprintf(w, "Schema Version: %d\n", status.SchemaVersion)
	}
	_, _ = fmt.Fprintf(w, "Store Size: %d bytes\n", status.SizeBytes)
}
