//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/cvtheory/cmd"
	"github.com/jsphweid/cvtheory/model"
	"github.com/stretchr/testify/assert"
)

func post(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(respBody, v); err != nil {
		t.Fatalf("bad json %q: %v", respBody, err)
	}
}

func TestQuantizeE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp := post(t, srv, "/quantize", model.QuantizeRequestBody{Volts: 0.3, Root: 0, Scale: 1})
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get("X-Request-Id"))

	var res model.QuantizeResponse
	decode(t, resp, &res)
	assert.InDelta(4.0/12.0, res.Volts, 1e-12)
	assert.Equal(4, res.Note)
	assert.Equal("E", res.NoteName)
	assert.Equal(2, res.Degree)
	assert.Equal("Ionian", res.ScaleName)
}

func TestResolveDorianE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp := post(t, srv, "/resolve", model.ResolveRequestBody{Mode: 1, Tonic: 2, Degree: 3})
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.ResolveResponse
	decode(t, resp, &res)
	assert.Equal(model.ResolveResponse{Root: 7, RootName: "G", Quality: "MAJ", DegreeName: "IV"}, res)
}

func TestVoicingE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp := post(t, srv, "/voicing", model.VoicingRequestBody{Chord: 0, Root: 0, Inversion: 2, Repeat: "lower"})
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.VoicingResponse
	decode(t, resp, &res)
	assert.Equal("M", res.Chord)
	assert.Equal([]int{7, 12, 16, -5, 0, 4}, res.Offsets)
	assert.Len(res.Volts, 6)
	assert.InDelta(-5.0/12.0, res.Volts[3], 1e-12)
}

func TestProgressionE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	body := model.ProgressionRequestBody{Mode: 0, Tonic: 0, Degrees: []int{0, 3, 4, 0}, Repeat: "repeat"}
	resp := post(t, srv, "/progression", body)
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.ProgressionResponse
	decode(t, resp, &res)
	if assert.Len(res.Chords, 4) {
		assert.Equal([]int{0, 5, 7, 0}, []int{res.Chords[0].Root, res.Chords[1].Root, res.Chords[2].Root, res.Chords[3].Root})
	}
}

func TestBadModeE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp := post(t, srv, "/resolve", model.ResolveRequestBody{Mode: 9, Tonic: 0, Degree: 0})
	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var res model.ErrorResponse
	decode(t, resp, &res)
	assert.Contains(res.Error, "mode must be between 0 and 6")
}

func TestListsE2E(t *testing.T) {
	srv := httptest.NewServer(cmd.NewRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/scales")
	if err != nil {
		t.Fatal(err)
	}
	var scales []model.ScaleInfo
	decode(t, resp, &scales)
	assert.Len(t, scales, 12)

	resp, err = http.Get(srv.URL + "/chords")
	if err != nil {
		t.Fatal(err)
	}
	var chords []model.ChordInfo
	decode(t, resp, &chords)
	assert.Len(t, chords, 36)
	assert.Equal(t, "M", chords[0].Name)
}
