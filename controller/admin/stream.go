package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/services"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced at the HTTP layer; the socket itself is gated by
		// the access-token and admin middleware on the route.
		return true
	},
}

// StreamRegistrations pushes the flattened registration rows over a
// WebSocket: once on connect, then again on every change under users. The
// subscription handle is released when the client goes away.
func StreamRegistrations(c *gin.Context, db store.TreeStore) {
	streamTable(c, db, "users", func(ctx context.Context) (interface{}, error) {
		rows, err := fetchRegistrationRows(ctx, db)
		if err != nil {
			return nil, err
		}
		return gin.H{"rows": rows, "summary": summarize(rows)}, nil
	})
}

// StreamFeedback is the same live view over the saran subtree.
func StreamFeedback(c *gin.Context, db store.TreeStore) {
	streamTable(c, db, "saran", func(ctx context.Context) (interface{}, error) {
		rows, err := services.ListFeedback(ctx, db)
		if err != nil {
			return nil, err
		}
		return gin.H{"rows": rows}, nil
	})
}

func streamTable(c *gin.Context, db store.TreeStore, path string, payload func(ctx context.Context) (interface{}, error)) {
	conn, err := streamUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Coalescing signal: a burst of writes collapses into one refresh.
	notify := make(chan struct{}, 1)
	unsubscribe := db.Subscribe(path, func() {
		select {
		case notify <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := context.Background()
	send := func() bool {
		data, err := payload(ctx)
		if err != nil {
			return conn.WriteJSON(gin.H{"error": "Failed to load data"}) == nil
		}
		return conn.WriteJSON(data) == nil
	}

	if !send() {
		return
	}
	for {
		select {
		case <-notify:
			if !send() {
				return
			}
		case <-done:
			return
		}
	}
}
