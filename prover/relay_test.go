package prover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundleBody = `{
	"state": {"viewNum": "0x2a", "blockHeight": "0x1000", "blockCommRoot": "0x1234"},
	"nextStakeTable": {
		"threshold": "0x64",
		"blsKeyComm": "0xa",
		"schnorrKeyComm": "0xb",
		"amountComm": "0xc"
	},
	"accumulatedWeight": "0xc8"
}`

func TestLatestBundle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/state", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(bundleBody))
	}))
	defer srv.Close()

	bundle, err := NewRelayClient(srv.URL).LatestBundle(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0x2a, bundle.State.ViewNum)
	assert.EqualValues(t, 0x1000, bundle.State.BlockHeight)
	assert.EqualValues(t, 0x1234, bundle.State.BlockCommRoot.Int64())
	assert.EqualValues(t, 0x64, bundle.NextStakeTable.Threshold.Int64())
	assert.EqualValues(t, 0xa, bundle.NextStakeTable.BlsKeyComm.Int64())
	assert.EqualValues(t, 0xb, bundle.NextStakeTable.SchnorrKeyComm.Int64())
	assert.EqualValues(t, 0xc, bundle.NextStakeTable.AmountComm.Int64())
	assert.EqualValues(t, 0xc8, bundle.AccumulatedWeight.Int64())
}

// Relay quantities are canonical hex quantities; zero-padded digits are a
// malformed response, not an alternate spelling.
func TestLatestBundleRejectsPaddedHex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accumulatedWeight": "0x0c8"}`))
	}))
	defer srv.Close()

	_, err := NewRelayClient(srv.URL).LatestBundle(context.Background())
	require.Error(t, err)
}

func TestLatestBundleServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no signatures yet", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRelayClient(srv.URL).LatestBundle(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no signatures yet")
}

func TestLatestBundleMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	bundle, err := NewRelayClient(srv.URL).LatestBundle(context.Background())
	require.NoError(t, err)
	// absent hex fields decode as zero instead of nil pointers
	assert.Zero(t, bundle.State.BlockCommRoot.Sign())
	assert.Zero(t, bundle.AccumulatedWeight.Sign())
}
