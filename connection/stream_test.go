package connection

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
)

func TestAdminStreamPushesRowsOnChange(t *testing.T) {
	router, db := setupTest(t)
	email, password := seedAdmin(t, db)
	adminAccess, _ := signin(t, router, email, password)

	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/anggota/stream?token=" + adminAccess
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// Snapshot on connect: no registrations yet.
	var first map[string]interface{}
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	if rows, _ := first["rows"].([]interface{}); len(rows) != 0 {
		t.Fatalf("expected empty snapshot, got %v", first)
	}

	// A write under users triggers a refresh.
	err = db.Set(context.Background(), "users/u1", model.UserNode{
		User: model.User{Role: "user"},
		Anggota: map[string]model.Registration{
			"1000": {Nama: "Ani", Status: model.StatusPending},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	var second map[string]interface{}
	if err := conn.ReadJSON(&second); err != nil {
		t.Fatalf("reading refresh: %v", err)
	}
	rows, _ := second["rows"].([]interface{})
	if len(rows) != 1 {
		t.Fatalf("expected one row after write, got %v", second)
	}
	row := rows[0].(map[string]interface{})
	if row["nama"] != "Ani" || row["status"] != model.StatusPending {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestAdminStreamRequiresToken(t *testing.T) {
	router, _ := setupTest(t)

	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/anggota/stream"
	if _, resp, err := websocket.DefaultDialer.Dial(wsURL, nil); err == nil {
		t.Error("expected handshake to fail without a token")
	} else if resp != nil && resp.StatusCode != 401 {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}
