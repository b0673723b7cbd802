package coderunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSubmitsAndMapsResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submissions", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))

		var req submissionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 71, req.LanguageID)
		assert.Equal(t, "print(1)", req.SourceCode)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"stdout":"1\n","stderr":null,"compile_output":null,"time":"0.01","memory":3200,"status":{"id":3,"description":"Accepted"}}`))
	}))
	defer srv.Close()

	res, err := NewJudge0Client(srv.URL, "").Run(context.Background(), Submission{SourceCode: "print(1)", Language: "Python"})

	require.NoError(t, err)
	assert.Equal(t, "1\n", res.Stdout)
	assert.Equal(t, "", res.Stderr)
	assert.Equal(t, "Accepted", res.Status)
	require.NotNil(t, res.Time)
	assert.Equal(t, "0.01", *res.Time)
	require.NotNil(t, res.Memory)
	assert.Equal(t, 3200, *res.Memory)
}

func TestRunRejectsUnsupportedLanguage(t *testing.T) {
	_, err := NewJudge0Client("http://unused", "").Run(context.Background(), Submission{Language: "cobol"})

	var ule *UnsupportedLanguageError
	assert.ErrorAs(t, err, &ule)
	assert.Contains(t, err.Error(), "python")
}

func TestRunSurfacesUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewJudge0Client(srv.URL, "key").Run(context.Background(), Submission{Language: "go"})
	assert.Error(t, err)

	_, err = NewJudge0Client(srv.URL, "key").Run(context.Background(), Submission{Language: "c"})
	assert.ErrorContains(t, err, "429")
}
