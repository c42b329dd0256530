package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

func TestSearchSendsExpectedQuery(t *testing.T) {
	var gotQuery map[string]string
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Result{
			{Name: "隱家拉麵", DisplayName: "隱家拉麵, 士林區, 台北市", Lat: "25.0931", Lon: "121.5292"},
		})
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithAcceptLanguage("zh-TW"))
	results, err := c.Search(context.Background(), "隱家拉麵")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "隱家拉麵", results[0].Name)
	assert.Equal(t, map[string]string{
		"format":          "json",
		"q":               "隱家拉麵",
		"limit":           "5",
		"accept-language": "zh-TW",
	}, gotQuery)
	assert.Equal(t, "ramen-reality/1.0", gotUA)
}

func TestSearchWithoutLanguagePreference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("accept-language"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	results, err := c.Search(context.Background(), "拉麵")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var many []Result
		for i := 0; i < ResultLimit+3; i++ {
			many = append(many, Result{Name: "spot", Lat: "25.0", Lon: "121.5"})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(many)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	results, err := c.Search(context.Background(), "ramen")
	require.NoError(t, err)
	assert.Len(t, results, ResultLimit)
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "ramen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSearchContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Search(ctx, "ramen")
	assert.Error(t, err)
}

func TestResultLocation(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		want    types.Location
		wantErr bool
	}{
		{
			name:   "valid",
			result: Result{Lat: "25.0931", Lon: "121.5292"},
			want:   types.Location{Lat: 25.0931, Lng: 121.5292},
		},
		{
			name:   "negative",
			result: Result{Lat: "-33.8688", Lon: "151.2093"},
			want:   types.Location{Lat: -33.8688, Lng: 151.2093},
		},
		{
			name:    "bad latitude",
			result:  Result{Lat: "north", Lon: "121.5"},
			wantErr: true,
		},
		{
			name:    "empty longitude",
			result:  Result{Lat: "25.0", Lon: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := tt.result.Location()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc)
		})
	}
}
