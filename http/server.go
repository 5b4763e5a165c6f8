package http

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/shale-dev/shale/dynamic"
	"github.com/shale-dev/shale/filesystem"
)

const (
	DefaultReadBufferSize  = 4096 // 4kB
	DefaultWriteBufferSize = 4096 // 4kB
)

var (
	ErrRootNotExist = errors.New("http: root directory does not exist")
	ErrRootNotDir   = errors.New("http: root path is not a directory")
)

// Server answers each TCP connection with exactly one response: the
// file resolved below its root directory, with registered dynamic
// pages substituted into the body. Configure it through the setters
// before calling Run; connections snapshot the configuration when they
// start, so later setter calls only affect later connections.
type Server struct {
	address string
	port    int

	mu           sync.Mutex
	debug        bool
	rootDir      string
	defaultPage  string
	pages        dynamic.Registry
	fs           filesystem.Filesystem
	logger       *slog.Logger
	readTimeout  time.Duration
	writeTimeout time.Duration
	sem          *semaphore.Weighted
	listener     net.Listener

	conns sync.WaitGroup
}

func New(address string, port int) *Server {
	return &Server{
		address:     address,
		port:        port,
		rootDir:     ".",
		defaultPage: "index.html",
		pages:       dynamic.NewRegistry(),
		fs:          filesystem.NewLocalFileSystem(),
		logger:      slog.Default(),
	}
}

// Addr returns the address:port the server binds to.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.address, strconv.Itoa(s.port))
}

// SetDebug toggles the per-request log line.
func (s *Server) SetDebug(debug bool) {
	s.mu.Lock()
	s.debug = debug
	s.mu.Unlock()
}

// SetRootDir points the server at the directory it serves from. The
// path must exist and be a directory; on failure the previous root
// stays in place. Errors wrap ErrRootNotExist or ErrRootNotDir.
func (s *Server) SetRootDir(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("http: stat root %s: %w", path, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrRootNotExist, path)
	}

	isDir, err := s.fs.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("http: stat root %s: %w", path, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s", ErrRootNotDir, path)
	}

	s.rootDir = path
	return nil
}

// SetDefaultPage replaces the file name served for directory requests.
func (s *Server) SetDefaultPage(name string) {
	s.mu.Lock()
	s.defaultPage = name
	s.mu.Unlock()
}

// RegisterDynamicPage appends a page to the registry. Duplicate URLs
// are allowed; the first registration wins. Markers are not validated.
func (s *Server) RegisterDynamicPage(page dynamic.Page) {
	s.mu.Lock()
	s.pages.Add(page)
	s.mu.Unlock()
}

func (s *Server) SetLogger(logger *slog.Logger) {
	s.mu.Lock()
	s.logger = logger
	s.mu.Unlock()
}

// SetFilesystem swaps the backend pages are resolved and read from,
// for example a storage.Client serving an object bucket.
func (s *Server) SetFilesystem(fs filesystem.Filesystem) {
	s.mu.Lock()
	s.fs = fs
	s.mu.Unlock()
}

// SetReadTimeout bounds reading the request line. Zero, the default,
// disables the deadline.
func (s *Server) SetReadTimeout(d time.Duration) {
	s.mu.Lock()
	s.readTimeout = d
	s.mu.Unlock()
}

// SetWriteTimeout bounds writing the response. Zero, the default,
// disables the deadline.
func (s *Server) SetWriteTimeout(d time.Duration) {
	s.mu.Lock()
	s.writeTimeout = d
	s.mu.Unlock()
}

// SetMaxConns bounds how many connections are handled concurrently.
// Accepted connections above the bound wait their turn. Zero or
// negative restores the unbounded default. Takes effect on the next
// Serve call.
func (s *Server) SetMaxConns(n int) {
	s.mu.Lock()
	if n <= 0 {
		s.sem = nil
	} else {
		s.sem = semaphore.NewWeighted(int64(n))
	}
	s.mu.Unlock()
}

// Run binds the configured address and serves until Shutdown closes
// the listener. A bind failure is returned to the caller.
func (s *Server) Run() error {
	listener, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("http: listen on %s: %w", s.Addr(), err)
	}

	s.mu.Lock()
	logger := s.logger
	s.mu.Unlock()

	logger.Info("http: server started", "address", s.Addr())

	return s.Serve(listener)
}

// Serve accepts connections until the listener closes. Accept errors
// are logged and the loop continues; a closed listener returns nil.
func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	logger := s.logger
	sem := s.sem
	s.mu.Unlock()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			logger.Error("http: accept failed", "error", err)
			continue
		}

		s.conns.Add(1)
		go func() {
			defer s.conns.Done()

			if sem != nil {
				if err := sem.Acquire(context.Background(), 1); err != nil {
					conn.Close()
					return
				}
				defer sem.Release(1)
			}

			s.ServeConn(conn)
		}()
	}
}

// ServeConn answers a single connection and always closes it.
func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	s.snapshot().handle(conn)
}

// Shutdown closes the listener and waits for in-flight connections to
// finish or ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	listener := s.listener
	s.listener = nil
	s.mu.Unlock()

	if listener != nil {
		if err := listener.Close(); err != nil {
			return err
		}
	}

	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handler carries the configuration one connection runs with.
type handler struct {
	id           string
	debug        bool
	rootDir      string
	defaultPage  string
	pages        dynamic.Registry
	fs           filesystem.Filesystem
	logger       *slog.Logger
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func (s *Server) snapshot() handler {
	s.mu.Lock()
	defer s.mu.Unlock()

	return handler{
		id:           uuid.NewString(),
		debug:        s.debug,
		rootDir:      s.rootDir,
		defaultPage:  s.defaultPage,
		pages:        s.pages.Clone(),
		fs:           s.fs,
		logger:       s.logger,
		readTimeout:  s.readTimeout,
		writeTimeout: s.writeTimeout,
	}
}

func (h handler) handle(conn net.Conn) {
	start := time.Now()

	if h.readTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(h.readTimeout))
	}

	reader := bufio.NewReaderSize(conn, DefaultReadBufferSize)

	var req Request
	if err := req.Parse(reader); err != nil {
		if errors.Is(err, ErrMalformedRequest) {
			h.respond(conn, StatusBadRequest, nil, start)
		}
		return
	}

	var (
		status = StatusOK
		body   []byte
		path   string
	)

	if containsDotDot(req.URL) {
		// Never let a request climb out of the root.
		status = StatusNotFound
	} else {
		path = ResolvePath(h.fs, h.rootDir, req.URL, h.defaultPage)

		content, err := h.fs.ReadFile(path)
		if err != nil {
			status = StatusNotFound
		} else {
			body = content
		}
	}

	if h.debug {
		h.logger.Info("http: request",
			"conn", h.id,
			"remote", conn.RemoteAddr().String(),
			"method", req.Method,
			"url", req.URL,
			"path", path,
			"status", status,
		)
	}

	if page, found := h.pages.Find(req.URL); found {
		body = dynamic.Apply(body, page.Anchors)
	}

	h.respond(conn, status, body, start)
}

func (h handler) respond(conn net.Conn, status uint16, body []byte, start time.Time) {
	if h.writeTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	}

	writer := bufio.NewWriterSize(conn, DefaultWriteBufferSize)
	if err := writeResponse(writer, status, body); err != nil {
		h.logger.Error("http: write response failed", "conn", h.id, "error", err)
	}

	recordRequest(context.Background(), status, time.Since(start))
}
