package rpcserver

import (
	"net/http"
	"time"

	"github.com/virel-project/virel-token/rpc"
	"github.com/virel-project/virel-token/util/ratelimit"
)

type Server struct {
	handlers map[string]Handler
	config   Config

	limit *ratelimit.Limit
}
type Handler = func(c *Context)

type Config struct {
	// When true, the RPC server will block CORS requests from foreign origins.
	Restricted bool

	// The username:password used in Basic Auth. Leave blank to disable authentication.
	Authentication string

	// The maximum number of requests per minute from a single IP address. Default is 500.
	RateLimit int
}

// New returns a server without any handler. It is an http.Handler and can be served with Start.
func New(config Config) *Server {
	if config.RateLimit == 0 {
		config.RateLimit = 500
	}

	return &Server{
		handlers: make(map[string]Handler),
		config:   config,
		limit:    ratelimit.New(config.RateLimit),
	}
}

// Start serves s on bind in a new goroutine.
func (s *Server) Start(bind string) *http.Server {
	httpSrv := &http.Server{
		Addr:              bind,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		err := httpSrv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			rpc.Log.Err("rpc server stopped:", err)
		}
	}()
	return httpSrv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := s.handler(w, r)
	if err != nil {
		rpc.Log.Debugf("rpc request from %s refused: %v", r.RemoteAddr, err)
	}
}

// Handle registers f for method. Method names are case insensitive and must be registered lowercase.
func (s *Server) Handle(method string, f Handler) {
	s.handlers[method] = f
}
