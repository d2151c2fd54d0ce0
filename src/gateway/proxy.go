package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/logger"
	"github.com/freelancenexus/nexus-go/src/metrics"
	"github.com/freelancenexus/nexus-go/src/middleware"
	"github.com/freelancenexus/nexus-go/src/response"
)

// Route binds a path prefix to a backend service.
type Route struct {
	Prefix  string
	Backend string
}

// NewRouter returns the edge router. Each prefix is forwarded intact
// to its backend; the first match wins, so order longer prefixes
// before their parents.
func NewRouter(routes []Route) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.GinMiddleware())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", metrics.Handler())

	proxies := make([]proxyRoute, 0, len(routes))
	for _, route := range routes {
		target, err := url.Parse(route.Backend)
		if err != nil {
			return nil, err
		}
		proxy := httputil.NewSingleHostReverseProxy(target)
		proxy.ErrorHandler = func(w http.ResponseWriter, req *http.Request, err error) {
			logger.WithError(err).WithField("backend", target.Host).Error("Backend unreachable")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"upstream unavailable"}`))
		}
		proxies = append(proxies, proxyRoute{prefix: route.Prefix, proxy: proxy})
	}

	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, pr := range proxies {
			if strings.HasPrefix(path, pr.prefix) {
				pr.proxy.ServeHTTP(c.Writer, c.Request)
				return
			}
		}
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "no route for " + path})
	})

	return r, nil
}

type proxyRoute struct {
	prefix string
	proxy  *httputil.ReverseProxy
}
