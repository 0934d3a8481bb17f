// Package server visualizes a running search engine's progress over a
// websocket, the same role the teacher's server package plays for RL
// training progress — it displays the Snapshots of Engine.Telemetry() and
// the current world's forecasts that the caller sends it, rather than a
// grid of cell values, and it does not import search at all. It is not,
// and never becomes, a
// wire protocol for the engine itself.
package server

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"

	"miniframe/server/fastview"
	"miniframe/server/metrics_views"
	"miniframe/server/root_view"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
)

var upgrader = websocket.Upgrader{}

const (
	writeWait        = 1 * time.Second
	maxMessageSize   = 8192
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	closeGracePeriod = 10 * time.Second
)

// Server serves a single dashboard page, to a single client, over a
// single websocket: a prototype visualizer for solo development, not a
// general-purpose multi-client server.
type Server struct {
	addr       string
	lastUpdate metrics_views.Snapshot
	rootView   *root_view.RootView
	router     *mux.Router
}

// NewServer initializes the views and returns a server that will push
// every snapshot arriving on snapshots to any connected client.
func NewServer(
	ctx context.Context,
	addr string,
	initial metrics_views.Snapshot,
	snapshots <-chan metrics_views.Snapshot,
) (*Server, error) {
	rv := root_view.NewRootView(ctx, snapshots)

	s := &Server{
		addr:       addr,
		lastUpdate: initial,
		rootView:   rv,
	}

	router := mux.NewRouter()
	router.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.serveWebsocket)
	s.router = router

	return s, nil
}

// Serve blocks, listening on addr and routing through the server's mux.
func (server *Server) Serve() (err error) {
	if err = http.ListenAndServe(server.addr, server.router); err != nil {
		err = fmt.Errorf("serve: %w", err)
	}
	return
}

func (server *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		log.Println("upgrade:", err)
		return
	}

	defer server.closeWebsocket(ws)
	server.publishEleUpdates(r.Context(), ws)
}

// publishEleUpdates forwards view updates from the root view to the
// client, bounded to at most one publish per pubResolution, with its own
// ping/pong liveness loop.
func (server *Server) publishEleUpdates(
	ctx context.Context,
	ws *websocket.Conn,
) {
	last := time.Now()
	pubResolution := time.Millisecond * 100
	pingResolution := time.Millisecond * 500
	pubCtx, cancelPub := context.WithCancel(ctx)
	defer cancelPub()
	pinger := channerics.NewTicker(pubCtx.Done(), pingResolution)
	lastPong := time.Now()

	pong := make(chan struct{})
	defer close(pong)
	ws.SetPongHandler(func(appData string) error {
		pong <- struct{}{}
		return nil
	})

	go func() {
		for {
			select {
			case <-pubCtx.Done():
				return
			default:
				if _, _, err := ws.ReadMessage(); err != nil {
					cancelPub()
					if isClosure(err) {
						return
					}
					fmt.Println("read pump: ", err)
				}
			}
		}
	}()

	for {
		select {
		case <-pubCtx.Done():
			return
		case <-pinger:
			if time.Since(lastPong) > pingResolution*2 {
				fmt.Println("client unresponsive, closing conn")
				return
			}

			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				if isError(err) {
					fmt.Printf("ping failed: %T %v", err, err)
				}
				return
			}
		case <-pong:
			lastPong = time.Now()
		case updates := <-server.rootView.Updates():
			if time.Since(last) < pubResolution {
				break
			}

			last = time.Now()
			if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				fmt.Printf("failed to set deadline: %T %v", err, err)
				return
			}

			if err := ws.WriteJSON(updates); err != nil {
				if isError(err) {
					fmt.Printf("publish failed: %T %v", err, err)
				}
				return
			}
		}
	}
}

func isError(err error) bool {
	return err != nil && websocket.IsUnexpectedCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

func isClosure(err error) bool {
	return err != nil && websocket.IsCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}

func (server *Server) closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	time.Sleep(closeGracePeriod)
	ws.Close()
}

func (server *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := renderTemplate(w, server.rootView, metrics_views.Convert(server.lastUpdate)); err != nil {
		_, _ = w.Write([]byte(err.Error()))
	}
}

func renderTemplate(
	w io.Writer,
	vc fastview.ViewComponent,
	data interface{},
) (err error) {
	t := template.New("index.html")
	var tname string
	if tname, err = vc.Parse(t); err != nil {
		return
	}
	if _, err = t.Parse(`{{ template "` + tname + `" . }}`); err != nil {
		return
	}

	err = t.Execute(w, data)
	return
}
