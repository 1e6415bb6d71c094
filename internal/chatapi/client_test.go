// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// newBackend serves body with status and records the decoded request.
func newBackend(t *testing.T, status int, body string, got *ChatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != DefaultPath {
			http.NotFound(w, r)
			return
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// =============================================================================
// SUCCESS TESTS
// =============================================================================

func TestSend_TextReply(t *testing.T) {
	var req ChatRequest
	srv := newBackend(t, http.StatusOK, `{"type":"text","content":"좋은 곳이 있어요","conversation_id":"c-9"}`, &req)

	reply, err := NewClient(srv.URL).Send(context.Background(), "성수동 근처", "c-1")
	require.NoError(t, err)

	require.Equal(t, "성수동 근처", req.Message)
	require.Equal(t, "c-1", req.ConversationID)

	text, ok := reply.(model.TextReply)
	require.True(t, ok)
	require.Equal(t, "좋은 곳이 있어요", text.Content)
	require.Equal(t, "c-9", reply.ConversationID())
}

func TestSend_EmptyConversationIDIsSent(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		w.Write([]byte(`{"type":"text","content":"ok"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Send(context.Background(), "hi", "")
	require.NoError(t, err)
	require.Contains(t, raw, "conversation_id")
	require.Equal(t, "", raw["conversation_id"])
}

func TestSend_UnknownTypeIsText(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"type":"weather","content":"맑음"}`, nil)

	reply, err := NewClient(srv.URL).Send(context.Background(), "날씨", "")
	require.NoError(t, err)
	require.Equal(t, model.KindPlain, reply.Message().Kind)
	require.Equal(t, "맑음", reply.Message().Content)
}

func TestSend_MapReply(t *testing.T) {
	body := `{"type":"map","link":"https://map.example/hannam","data":{
		"center":{"lat":37.533,"lng":127.002},
		"markers":[
			{"name":"한남어린이공원","lat":37.5341,"lng":127.0013,"desc":"그늘 많음"},
			{"name":"보광어린이공원","lat":37.5298,"lng":127.0025,"desc":"놀이터 완비"}]}}`
	srv := newBackend(t, http.StatusOK, body, nil)

	reply, err := NewClient(srv.URL).Send(context.Background(), "한남동", "c-1")
	require.NoError(t, err)

	msg := reply.Message()
	require.Equal(t, model.KindMap, msg.Kind)
	require.Equal(t, "https://map.example/hannam", msg.Link)
	require.Len(t, msg.Map.Markers, 2)
	require.Equal(t, 37.533, msg.Map.Center.Latitude)
	require.Equal(t, "놀이터 완비", msg.Map.Markers[1].Description)
	require.Equal(t, "", reply.ConversationID())
}

func TestSend_MapReplyPartsAreOptional(t *testing.T) {
	t.Run("link only", func(t *testing.T) {
		srv := newBackend(t, http.StatusOK, `{"type":"map","link":"https://map.example"}`, nil)
		reply, err := NewClient(srv.URL).Send(context.Background(), "x", "")
		require.NoError(t, err)
		msg := reply.Message()
		require.Equal(t, model.KindMap, msg.Kind)
		require.False(t, msg.HasMap())
		require.Equal(t, "https://map.example", msg.Link)
	})

	t.Run("data without center", func(t *testing.T) {
		srv := newBackend(t, http.StatusOK, `{"type":"map","data":{"markers":[
			{"name":"a","lat":37.0,"lng":127.0},{"name":"b","lat":38.0,"lng":128.0}]}}`, nil)
		reply, err := NewClient(srv.URL).Send(context.Background(), "x", "")
		require.NoError(t, err)
		msg := reply.Message()
		require.True(t, msg.HasMap())
		require.Equal(t, "", msg.Link)
		require.InDelta(t, 37.5, msg.Map.Center.Latitude, 1e-9)
	})
}

// =============================================================================
// FAILURE TESTS
// =============================================================================

func TestSend_StatusError(t *testing.T) {
	srv := newBackend(t, http.StatusInternalServerError, `boom`, nil)

	_, err := NewClient(srv.URL).Send(context.Background(), "hi", "")
	require.ErrorIs(t, err, ErrStatus)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusInternalServerError, se.Status)
	require.Equal(t, "boom", se.Body)
}

func TestSend_NoRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Send(context.Background(), "hi", "")
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestSend_MalformedReplies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"null body", `null`},
		{"empty object", `{}`},
		{"unknown shape", `{"unexpected":1}`},
		{"empty type", `{"type":"  ","content":"hi"}`},
		{"text without content", `{"type":"text"}`},
		{"marker without name", `{"type":"map","data":{"markers":[{"lat":37,"lng":127}]}}`},
		{"marker without coordinate", `{"type":"map","data":{"markers":[{"name":"a","lat":37}]}}`},
		{"latitude out of range", `{"type":"map","data":{"markers":[{"name":"a","lat":137,"lng":127}]}}`},
		{"bad center", `{"type":"map","data":{"center":{"lat":37},"markers":[]}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newBackend(t, http.StatusOK, tc.body, nil)
			_, err := NewClient(srv.URL).Send(context.Background(), "x", "")
			require.ErrorIs(t, err, ErrMalformedReply)
		})
	}
}

func TestSend_ResponseTooLarge(t *testing.T) {
	big := `{"type":"text","content":"` + strings.Repeat("a", MaxResponseSize) + `"}`
	srv := newBackend(t, http.StatusOK, big, nil)

	_, err := NewClient(srv.URL).Send(context.Background(), "x", "")
	require.ErrorIs(t, err, ErrMalformedReply)
}

func TestSend_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Send(context.Background(), "x", "")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrStatus))
	require.False(t, errors.Is(err, ErrMalformedReply))
}

func TestSend_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond)).Send(context.Background(), "x", "")
	require.Error(t, err)

	hc := &http.Client{}
	c := NewClient(srv.URL, WithTimeout(50*time.Millisecond), WithHTTPClient(hc))
	start := time.Now()
	_, err = c.Send(context.Background(), "x", "")
	require.Error(t, err)
	require.Less(t, time.Since(start), time.Second, "timeout must survive a later WithHTTPClient")
	require.Zero(t, hc.Timeout, "the caller's client is not modified")
}

// =============================================================================
// OPTION TESTS
// =============================================================================

func TestClient_Options(t *testing.T) {
	c := NewClient("http://example.test/", WithPath("v2/chat"))
	require.Equal(t, "http://example.test/v2/chat", c.Endpoint())

	c = NewClient("")
	require.Equal(t, DefaultBaseURL+DefaultPath, c.Endpoint())

	hc := &http.Client{}
	c = NewClient("http://x", WithHTTPClient(hc), WithTimeout(time.Second))
	require.Equal(t, time.Duration(0), hc.Timeout, "caller's client must not be mutated")
}
