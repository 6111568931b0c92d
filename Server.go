package webframe

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/rohanthewiz/webframe/consts"
)

const (
	defaultAddress   = ":8080"
	defaultStaticDir = "static"
)

// ServerOptions configures a Server. Zero values select the defaults.
type ServerOptions struct {
	Address   string // listen address, default ":8080"
	Verbose   bool   // log every request
	StaticDir string // root for static assets, default "static"
	// Assets overrides StaticDir as the source of static assets.
	Assets AssetSource
}

// Server accepts connections and answers exactly one request on each.
type Server struct {
	options    ServerOptions
	dispatcher *Dispatcher
	assets     AssetSource

	mu       sync.Mutex
	listener net.Listener
	stopped  atomic.Bool
}

// NewServer creates a server answering dynamic requests from routes.
// Registration should be complete before Run is called.
func NewServer(routes RouteSource, options ...ServerOptions) *Server {
	var opts ServerOptions
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.Address == "" {
		opts.Address = defaultAddress
	}
	if opts.StaticDir == "" {
		opts.StaticDir = defaultStaticDir
	}

	assets := opts.Assets
	if assets == nil {
		assets = DirAssets(opts.StaticDir)
	}

	return &Server{
		options:    opts,
		dispatcher: NewDispatcher(routes),
		assets:     assets,
	}
}

type RunOpts struct {
	// StatusChan is a channel signalling that the server is about to enter its accept loop
	// It should be a buffered chan (cap 1 is all that is needed), so the server will not hang
	StatusChan chan struct{}
}

// Run binds the listening socket and serves until Stop is called.
// A bind failure is returned immediately; after Stop, Run returns nil.
func (s *Server) Run(runOpts ...RunOpts) error {
	opts := RunOpts{}
	if len(runOpts) == 1 {
		if runOpts[0].StatusChan != nil && cap(runOpts[0].StatusChan) < 1 {
			logger.Warn("Status channel capacity should be at least 1, or we may hang")
		}
		opts.StatusChan = runOpts[0].StatusChan
	}

	listener, err := net.Listen(consts.ProtocolTCP, s.options.Address)
	if err != nil {
		return serr.Wrap(err, "address", s.options.Address)
	}

	s.mu.Lock()
	if s.stopped.Load() { // stopped before we got going
		s.mu.Unlock()
		_ = listener.Close()
		return nil
	}
	s.listener = listener
	s.mu.Unlock()

	defer listener.Close()

	logger.Info("Server started", "address", listener.Addr().String())

	if opts.StatusChan != nil { // don't forget nil check!
		opts.StatusChan <- struct{}{} // Let the caller know we are running
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.stopped.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.LogErr(serr.Wrap(err), "Error accepting connection")
			continue
		}

		go s.handleConnection(conn)
	}
}

// Stop closes the listening socket so Run returns.
// Connections already accepted are left to finish. A stopped server cannot be restarted.
func (s *Server) Stop() error {
	if s.stopped.Swap(true) {
		return nil
	}

	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener == nil {
		return nil
	}

	if err := listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return serr.Wrap(err, "address", s.options.Address)
	}

	logger.Info("Server stopped")
	return nil
}

// Addr returns the address the server is listening on, or nil before Run.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Request performs a synthetic request and returns the response.
// It runs the same path as a real connection, which makes it handy in tests.
func (s *Server) Request(method string, target string) Response {
	return s.serve(requestLine{method: method, target: target, version: consts.HTTP1})
}

// handleConnection answers one request and closes the connection.
// There is no read deadline: a client that never finishes its request holds this goroutine.
func (s *Server) handleConnection(conn net.Conn) {
	start := time.Now()

	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			logger.LogErr(serr.Wrap(err), "Error closing connection")
		}
	}()

	reader := bufio.NewReader(conn)

	// Read the HTTP request line
	line, err := reader.ReadString(consts.RuneNewLine)
	if err != nil && line == "" {
		if !errors.Is(err, io.EOF) {
			logger.LogErr(serr.Wrap(err, "remote", conn.RemoteAddr().String()), "Error reading request")
		}
		return
	}

	line = strings.TrimRight(line, consts.CRLF)
	if strings.TrimSpace(line) == "" {
		return
	}

	var res *response

	req, err := parseRequestLine(line)
	if err != nil {
		req.target = line
		res = statusResponse(consts.StatusBadRequest)
	} else {
		discardHeaders(reader)
		res = s.serve(req)
	}

	if _, err = res.WriteTo(conn); err != nil {
		logger.LogErr(serr.Wrap(err, "remote", conn.RemoteAddr().String()), "Error writing response")
	}

	if s.options.Verbose {
		requestInfo(req.method, req.target, res.Status(), start)
	}
}

// discardHeaders reads header lines up to the empty line that ends them.
// Headers are not interpreted, so a request body is never read.
func discardHeaders(reader *bufio.Reader) {
	for {
		line, err := reader.ReadString(consts.RuneNewLine)
		if strings.TrimSpace(line) == "" || err != nil {
			return
		}
	}
}

// serve produces the response for a well-formed request line.
func (s *Server) serve(req requestLine) *response {
	if isStaticAsset(req.target) {
		return s.serveAsset(req.target)
	}

	body := s.dispatcher.Dispatch(req.method, req.target)
	// Dynamic responses are always 200, whatever the body says.
	return newResponse(consts.StatusOK, consts.MIMEHTMLUTF8, []byte(body))
}

func (s *Server) serveAsset(target string) *response {
	urlPath, _ := splitTarget(target)

	asset, err := s.assets.Open(urlPath)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return statusResponse(consts.StatusNotFound)
		}
		logger.LogErr(serr.Wrap(err, "path", urlPath), "Error serving static file")
		return statusResponse(consts.StatusInternalServerError)
	}

	return newResponse(consts.StatusOK, asset.ContentType, asset.Body)
}

// statusResponse is a small HTML page sent with a real error status.
func statusResponse(status int) *response {
	return newResponse(status, consts.MIMEHTML, []byte(statusPage(status)))
}
