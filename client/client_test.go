package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOrders_ToleratesItemsAsString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		// One order with structured items, one with the items list encoded
		// as a string — both shapes occur in the wild.
		w.Write([]byte(`[
			{"id":1,"table":"10","items":[{"name":"A","served_by":"Kim"}],"total":5000,"processed":true},
			{"id":2,"table":"11","items":"[\"B\",\"C\"]","total":3000,"processed":false}
		]`))
	}))
	defer srv.Close()

	orders, err := New(srv.URL).Orders(context.Background())
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].ServedBy != "Kim" {
		t.Errorf("order 1 items = %v", orders[0].Items)
	}
	if len(orders[1].Items) != 2 || orders[1].Items[0].Name != "B" {
		t.Errorf("order 2 items = %v", orders[1].Items)
	}
}

func TestServeItem_SendsForm(t *testing.T) {
	var gotIndex, gotAdmin string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/orders/7/serve-item" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotIndex = r.PostFormValue("item_index")
		gotAdmin = r.PostFormValue("admin")
		w.Write([]byte(`{"message":"Item toggled"}`))
	}))
	defer srv.Close()

	if err := New(srv.URL).ServeItem(context.Background(), 7, 2, "Lee"); err != nil {
		t.Fatalf("ServeItem: %v", err)
	}
	if gotIndex != "2" || gotAdmin != "Lee" {
		t.Errorf("form = (%q, %q), want (2, Lee)", gotIndex, gotAdmin)
	}
}

func TestClient_SurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Phone number does not match"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteWaiting(context.Background(), 3, "0100000000")
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
}
