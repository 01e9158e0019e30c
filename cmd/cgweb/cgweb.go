// Command cgweb serves the index and graphic records over HTTP.
package main

import (
	"flag"
	"net"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/net/netutil"

	"github.com/cgtools/go-crossgate/catalog"
	"github.com/cgtools/go-crossgate/paths"
	"github.com/cgtools/go-crossgate/web"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for cgweb")
	maxConnections = flag.Int("max_connections", 64, "maximum number of simultaneous http connections")
	gzipResponses  = flag.Bool("gzip", true, "whether to compress responses when the client accepts it")
	banner         = flag.Bool("banner", true, "whether to print a startup banner")
)

// newRouter builds the complete request handler for the catalog.
func newRouter(cat *catalog.Catalog) http.Handler {
	r := mux.NewRouter()
	web.NewHandler(cat).RegisterRoutes(r)

	var h http.Handler = r
	if *gzipResponses {
		h = handlers.CompressHandler(h)
	}
	return handlers.CombinedLoggingHandler(os.Stderr, handlers.RecoveryHandler()(h))
}

func main() {
	p := paths.SetupFlags(flag.CommandLine)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *banner {
		figure.NewFigure("cgweb", "", true).Print()
	}

	cat, err := catalog.Load(p)
	if err != nil {
		glog.Fatalf("cgweb: %v", err)
	}

	l, err := net.Listen("tcp", *listenAddress)
	if err != nil {
		glog.Fatalf("cgweb: %v", err)
	}
	l = netutil.LimitListener(l, *maxConnections)
	glog.Infof("cgweb: serving %d entries on %s", cat.Len(), l.Addr())

	glog.Fatal(http.Serve(l, newRouter(cat)))
}
