package proxy

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/netguard/internal/application/port"
	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/logging"
	"golang.org/x/sync/errgroup"
)

const dialTimeout = 10 * time.Second

// Hop-by-hop headers are meaningful for one connection only and never relayed.
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Server relays requests for one partition.
type Server struct {
	engine    *Engine
	partition string
	transport http.RoundTripper
	dial      func(ctx context.Context, network, addr string) (net.Conn, error)
}

// Option configures a Server.
type Option func(*Server)

// WithTransport replaces the upstream round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Server) { s.transport = rt }
}

// WithDialer replaces the dialer used for CONNECT tunnels.
func WithDialer(dial func(ctx context.Context, network, addr string) (net.Conn, error)) Option {
	return func(s *Server) { s.dial = dial }
}

// NewServer creates a proxy handler bound to partition.
func NewServer(engine *Engine, partition string, opts ...Option) *Server {
	dialer := &net.Dialer{Timeout: dialTimeout}
	s := &Server{
		engine:    engine,
		partition: partition,
		transport: &http.Transport{
			DialContext:         dialer.DialContext,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: dialTimeout,
		},
		dial: dialer.DialContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hooks, ok := s.engine.Hooks(s.partition)
	if !ok {
		http.Error(w, "netguard: session not configured", http.StatusServiceUnavailable)
		return
	}

	if r.Method == http.MethodConnect {
		s.serveConnect(w, r, hooks)
		return
	}
	if r.URL.Host == "" || !r.URL.IsAbs() {
		http.Error(w, "netguard is a forward proxy; configure it as your HTTP proxy", http.StatusBadRequest)
		return
	}
	s.serveHTTP(w, r, hooks)
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request, hooks port.SessionHooks) {
	ctx := r.Context()
	log := logging.FromContext(ctx)
	req := requestFromHTTP(r)

	verdict := hooks.BeforeRequest(ctx, req)
	switch verdict.Action {
	case entity.ActionCancel:
		writeBlocked(w, verdict)
		return
	case entity.ActionRedirect:
		http.Redirect(w, r, verdict.RedirectURL, http.StatusTemporaryRedirect)
		return
	}

	out := r.Clone(ctx)
	out.RequestURI = ""
	out.Header = hooks.BeforeSendHeaders(ctx, req)
	if out.Header == nil {
		out.Header = make(http.Header)
	}
	removeHopHeaders(out.Header)

	resp, err := s.transport.RoundTrip(out)
	if err != nil {
		log.Debug().Err(err).Str("url", req.URL).Msg("upstream request failed")
		http.Error(w, "netguard: upstream unreachable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if filename, ok := attachmentName(resp.Header); ok {
		hooks.WillDownload(ctx, req.URL, filename)
	}

	header := hooks.HeadersReceived(ctx, req, resp.Header)
	removeHopHeaders(header)
	dst := w.Header()
	for name, values := range header {
		dst[name] = values
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Debug().Err(err).Str("url", req.URL).Msg("response copy interrupted")
	}
}

func (s *Server) serveConnect(w http.ResponseWriter, r *http.Request, hooks port.SessionHooks) {
	ctx := r.Context()
	log := logging.FromContext(ctx)

	// The tunnel is opaque, so the destination is judged as an https origin.
	req := &entity.Request{
		URL:          connectURL(r.Host),
		Method:       http.MethodConnect,
		ResourceType: entity.ResourceOther,
		Headers:      r.Header.Clone(),
	}
	verdict := hooks.BeforeRequest(ctx, req)
	if verdict.Cancelled() {
		writeBlocked(w, verdict)
		return
	}

	upstream, err := s.dial(ctx, "tcp", r.Host)
	if err != nil {
		log.Debug().Err(err).Str("host", r.Host).Msg("tunnel dial failed")
		http.Error(w, "netguard: upstream unreachable", http.StatusBadGateway)
		return
	}
	defer upstream.Close()

	hj, ok := w.(http.Hijacker)
	if !ok {
		http.Error(w, "netguard: tunnelling unsupported", http.StatusInternalServerError)
		return
	}
	client, buffered, err := hj.Hijack()
	if err != nil {
		log.Debug().Err(err).Msg("hijack failed")
		return
	}
	defer client.Close()

	if _, err := io.WriteString(client, "HTTP/1.1 200 Connection Established\r\n\r\n"); err != nil {
		return
	}

	if err := pipe(client, buffered, upstream); err != nil {
		log.Debug().Err(err).Str("host", r.Host).Msg("tunnel closed")
	}
}

// pipe copies in both directions until either side closes.
func pipe(client net.Conn, buffered *bufio.ReadWriter, upstream net.Conn) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(upstream, buffered.Reader)
		closeWrite(upstream)
		return ignoreClosed(err)
	})
	g.Go(func() error {
		_, err := io.Copy(client, upstream)
		closeWrite(client)
		return ignoreClosed(err)
	})
	return g.Wait()
}

func closeWrite(c net.Conn) {
	if cw, ok := c.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
		return
	}
	_ = c.Close()
}

func ignoreClosed(err error) error {
	if err == nil || errors.Is(err, net.ErrClosed) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// connectURL turns a CONNECT authority into the URL the pipeline evaluates.
func connectURL(authority string) string {
	host, port, err := net.SplitHostPort(authority)
	if err != nil {
		return "https://" + authority + "/"
	}
	if port == "443" {
		return "https://" + hostLiteral(host) + "/"
	}
	return "https://" + net.JoinHostPort(host, port) + "/"
}

func hostLiteral(host string) string {
	if strings.Contains(host, ":") {
		return "[" + host + "]"
	}
	return host
}

func requestFromHTTP(r *http.Request) *entity.Request {
	rt := resourceType(r.Header.Get("Sec-Fetch-Dest"))
	top := r.Header.Get("Referer")
	if rt == entity.ResourceMainFrame {
		top = r.URL.String()
	}
	return &entity.Request{
		URL:          r.URL.String(),
		Method:       r.Method,
		ResourceType: rt,
		TopLevelURL:  top,
		Headers:      r.Header.Clone(),
	}
}

func resourceType(dest string) entity.ResourceType {
	switch dest {
	case "document":
		return entity.ResourceMainFrame
	case "iframe", "frame":
		return entity.ResourceSubFrame
	case "script":
		return entity.ResourceScript
	case "image":
		return entity.ResourceImage
	case "empty":
		return entity.ResourceXHR
	default:
		return entity.ResourceOther
	}
}

// attachmentName extracts the filename of a Content-Disposition: attachment response.
func attachmentName(h http.Header) (string, bool) {
	cd := h.Get("Content-Disposition")
	if cd == "" {
		return "", false
	}
	disposition, params, err := mime.ParseMediaType(cd)
	if err != nil || disposition != "attachment" {
		return "", false
	}
	name := params["filename"]
	return name, name != ""
}

func removeHopHeaders(h http.Header) {
	for _, name := range strings.Split(h.Get("Connection"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			h.Del(name)
		}
	}
	for _, name := range hopHeaders {
		h.Del(name)
	}
}

func writeBlocked(w http.ResponseWriter, v entity.Verdict) {
	w.Header().Set("X-Netguard-Stage", string(v.Stage))
	http.Error(w, fmt.Sprintf("Blocked by netguard (%s)", v.Stage), http.StatusForbidden)
}
