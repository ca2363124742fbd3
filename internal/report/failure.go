package report

import (
	"fmt"
	"io"
	"sellerscheck/pkg/serrors"
)

// Hints carry what the troubleshooting checklist needs to build the proxy
// command for the operator.
type Hints struct {
	// ProxyInstance is the Cloud SQL instance connection name.
	ProxyInstance string
	// ProxyPort is the local port the proxy must listen on.
	ProxyPort int
}

// PrintFailure writes a one-line error, tagged with its semantic kind,
// followed by the fixed troubleshooting checklist.
func PrintFailure(w io.Writer, err error, hints Hints) error {
	kind := "UNKNOWN"
	if k := serrors.KindOf(err); k != nil {
		kind = k.Error()
	}

	out := &printer{w: w}
	out.printf("❌ Error [%s]: %v\n", kind, err)
	out.printf("\nCheck the prerequisites:\n")
	out.printf("  1. cloud-sql-proxy is running\n")
	out.printf("  2. GCP credentials are valid\n")
	out.printf("\nHow to start the proxy:\n")
	out.printf("  cloud-sql-proxy %s --port=%d &\n", hints.ProxyInstance, hints.ProxyPort)
	if out.err != nil {
		return fmt.Errorf("could not write failure: %w", out.err)
	}

	return nil
}
