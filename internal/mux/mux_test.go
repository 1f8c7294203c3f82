package mux

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bombpotpoker-server/pkg/poker"
	"bombpotpoker-server/pkg/room"
	"bombpotpoker-server/pkg/table"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T, version string) *Mux {
	t.Helper()

	logger := logrus.StandardLogger()
	clock := quartz.NewMock(t)
	tbl := table.New(logger, clock, poker.NewSolver(), table.DefaultSettings())

	dealer := room.NewDealer(logger, clock, tbl)
	dealer.StartShift()
	t.Cleanup(dealer.EndShift)

	return NewMux(version, dealer)
}

func assertGet(t *testing.T, ts *httptest.Server, path string, obj interface{}, expectedStatus int) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, expectedStatus, resp.StatusCode)
	if obj != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(obj))
	}

	return resp
}

func TestMux_unknownRoute(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t, ""))
	defer ts.Close()

	assertGet(t, ts, "/nope", nil, 404)
}
