package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"profiledash/internal/models"
	"profiledash/internal/service"

	"github.com/gorilla/websocket"
)

func TestWSRegion_PushesSnapshot(t *testing.T) {
	region := service.NewRegionService()
	region.Replace("<div>live</div>")
	s := &service.Service{Region: region}
	srv := httptest.NewServer(newTestRouter(s))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?interval_ms=50"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v (resp=%v)", err, resp)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// Initial push arrives before the first tick.
	var env struct {
		Type string                `json:"type"`
		Data models.RegionSnapshot `json:"data"`
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := json.Unmarshal(msg, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Type != "region" {
		t.Fatalf("envelope type: %q", env.Type)
	}
	if env.Data.HTML != "<div>live</div>" {
		t.Fatalf("snapshot html: %q", env.Data.HTML)
	}

	// A region replacement shows up on a later tick.
	region.Replace("<div>updated</div>")
	deadline := time.Now().Add(2 * time.Second)
	for {
		if time.Now().After(deadline) {
			t.Fatal("updated region never pushed")
		}
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if err := json.Unmarshal(msg, &env); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if env.Data.HTML == "<div>updated</div>" {
			break
		}
	}
}
