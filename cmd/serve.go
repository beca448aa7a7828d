package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/cvtheory/constants"
	"github.com/jsphweid/cvtheory/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", constants.GetPort(), "port to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine as a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("serving", "port", servePort)
		err := http.ListenAndServe(":"+servePort, NewRouter())
		return fault.Wrap(err, fmsg.WithDesc("serve", "The server stopped"))
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrBadRequest) {
		status = http.StatusBadRequest
	}
	detail := fmsg.GetIssue(err)
	if detail == "" {
		detail = err.Error()
	}
	logger.Warn("request failed", "id", w.Header().Get("X-Request-Id"), "path", r.URL.Path, "err", err)
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

var ErrBadRequest = errors.New("bad request body")

func decodeBody(r *http.Request, v any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return fault.Wrap(ErrBadRequest, fmsg.WithDesc(err.Error(), "Could not read request body"))
	}
	if err := json.Unmarshal(reqBody, v); err != nil {
		return fault.Wrap(ErrBadRequest, fmsg.WithDesc(err.Error(), "Request body is not valid JSON"))
	}
	return nil
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scaleInfos())
}

func HandleChords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chordInfos())
}

func HandleQuantize(w http.ResponseWriter, r *http.Request) {
	var input model.QuantizeRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := doQuantize(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	var input model.VoicingRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := doVoicing(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := doResolve(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	cs, err := doProgression(input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progressionResponse(cs))
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/scales", HandleScales).Methods("GET")
	router.HandleFunc("/chords", HandleChords).Methods("GET")
	router.HandleFunc("/quantize", HandleQuantize).Methods("POST")
	router.HandleFunc("/voicing", HandleVoicing).Methods("POST")
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	router.HandleFunc("/progression", HandleProgression).Methods("POST")
	return cors.Default().Handler(router)
}
