package pushover

import (
	"net/http"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// shared is the process-wide transport used by clients that were not given
// their own Doer. Init and Cleanup may be called any number of times.
var shared struct {
	mu   sync.Mutex
	base *http.Transport
	rt   http.RoundTripper
}

// Init builds the shared transport if it does not exist yet and returns it.
func Init() http.RoundTripper {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.rt == nil {
		shared.base = http.DefaultTransport.(*http.Transport).Clone()
		shared.rt = otelhttp.NewTransport(shared.base)
	}
	return shared.rt
}

// Cleanup closes idle connections held by the shared transport and drops
// it. Clients created earlier keep working; their next request dials anew.
func Cleanup() {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.base != nil {
		shared.base.CloseIdleConnections()
	}
	shared.base = nil
	shared.rt = nil
}
