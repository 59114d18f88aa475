package prover

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAPI(t *testing.T) {
	relay := relayServer(t, bundleBody)
	defer relay.Close()
	prover := proofServer(t)
	defer prover.Close()

	backend := newFakeCaller(t)
	backend.on("finalizedState", uint64(1), uint64(0x800), big.NewInt(1))
	backend.on("votingStakeTableState", big.NewInt(0x64), big.NewInt(1), big.NewInt(2), big.NewInt(3))

	svc := newTestService(t, backend, relay.URL, prover.URL, &fixedGas{big.NewInt(1)}, &recordingSubmitter{}, nil)
	router := svc.Router()

	get := func(path string) (int, map[string]any) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(rec, req)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec.Code, body
	}

	code, body := get("/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	code, body = get("/api/lightclient-contract")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body["address"], "0x")

	// nothing synced yet
	code, body = get("/api/status")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["synced"])

	require.NoError(t, svc.SyncOnce(context.Background()))

	code, body = get("/api/status")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["synced"])
	assert.EqualValues(t, 0x1000, body["blockHeight"])
}
