package network

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/lixenwraith/balthazar/logger"
)

// Transport serves the websocket endpoint and owns the peer set
type Transport struct {
	config   *Config
	listener net.Listener
	server   *http.Server
	peers    *PeerManager
	upgrader websocket.Upgrader

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewTransport creates a transport with the given configuration
func NewTransport(cfg *Config) *Transport {
	return &Transport{
		config: cfg,
		peers:  NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local debug feed; any origin may attach
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// SetHandlers configures message and connection callbacks
func (t *Transport) SetHandlers(
	onConnect func(PeerID),
	onDisconnect func(PeerID),
	onMessage func(PeerID, *Message, error),
) {
	t.peers.SetHandlers(onConnect, onDisconnect, onMessage)
}

// Handler returns the HTTP handler serving the websocket path
func (t *Transport) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(t.config.Path, t.serveWS)
	return mux
}

func (t *Transport) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.System("network").WithError(err).Warn("websocket upgrade failed")
		return
	}
	if _, err := t.peers.AddConnection(conn); err != nil {
		logger.System("network").WithError(err).WithField("addr", r.RemoteAddr).Warn("connection rejected")
	}
}

// Start binds the configured address and serves in the background
func (t *Transport) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", t.config.Address)
	if err != nil {
		t.running.Store(false)
		return errors.Wrapf(err, "listen %s", t.config.Address)
	}
	t.listener = ln
	t.server = &http.Server{Handler: t.Handler()}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.System("network").WithError(err).Error("telemetry server stopped")
		}
	}()
	return nil
}

// Addr returns the bound address, nil before Start
func (t *Transport) Addr() net.Addr {
	if t.listener == nil {
		return nil
	}
	return t.listener.Addr()
}

// Stop halts the server and disconnects all peers
func (t *Transport) Stop() error {
	if !t.running.CompareAndSwap(true, false) {
		return nil
	}
	var err error
	if t.server != nil {
		err = t.server.Close()
	}
	t.peers.Close()
	t.wg.Wait()
	return err
}

// Send transmits to a specific peer
func (t *Transport) Send(id PeerID, msg *Message) bool {
	return t.peers.Send(id, msg)
}

// Broadcast sends to all peers
func (t *Transport) Broadcast(msg *Message) {
	t.peers.Broadcast(msg)
}

// PeerCount returns connected peer count
func (t *Transport) PeerCount() int {
	return t.peers.PeerCount()
}

// IsRunning returns transport state
func (t *Transport) IsRunning() bool {
	return t.running.Load()
}
