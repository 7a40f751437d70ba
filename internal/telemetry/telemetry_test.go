/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDisabledByDefault(t *testing.T) {
	c := New(Config{})
	defer c.Close()
	if c.Enabled() {
		t.Fatalf("telemetry enabled without opt-in")
	}
	// must not panic or block
	c.Event("startup", nil)
}

func TestOptInWithoutURLStillDisabled(t *testing.T) {
	c := New(Config{OptIn: true})
	defer c.Close()
	if c.Enabled() {
		t.Fatalf("telemetry enabled without an endpoint")
	}
}

func TestEventDelivery(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got.Store(payload)
	}))
	defer srv.Close()

	c := New(Config{OptIn: true, EventsURL: srv.URL, Timeout: time.Second})
	defer c.Close()
	c.Event("project_opened", map[string]any{"pages": 3})
	c.Flush(context.Background())

	deadline := time.After(2 * time.Second)
	for got.Load() == nil {
		select {
		case <-deadline:
			t.Fatalf("event not delivered")
		case <-time.After(10 * time.Millisecond):
		}
	}
	payload := got.Load().(map[string]any)
	if payload["name"] != "project_opened" {
		t.Fatalf("payload = %v", payload)
	}
	if payload["pages"] != float64(3) {
		t.Fatalf("props not carried: %v", payload)
	}
}

func TestUploadCrashRequiresOptIn(t *testing.T) {
	hits := int32(0)
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := New(Config{OptIn: false, CrashURL: srv.URL, Timeout: time.Second})
	defer c.Close()
	c.UploadCrash([]byte("report"))
	time.Sleep(100 * time.Millisecond)
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("crash uploaded without opt-in")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ZEUS_TELEMETRY_OPT_IN", "yes")
	t.Setenv("ZEUS_TELEMETRY_URL", "https://example.com/events")
	t.Setenv("ZEUS_TELEMETRY_TIMEOUT_MS", "250")
	cfg := FromEnv()
	if !cfg.OptIn || cfg.EventsURL != "https://example.com/events" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
}
