package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/pngstash/pngstash/model"
	"github.com/pngstash/pngstash/png"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve decoding over HTTP",
	Long:  `Serves a small HTTP API that reads hidden messages out of uploaded PNGs.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// caps uploads well above any reasonable stash-carrying PNG
const maxUploadBytes = 64 << 20

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleDecode(w http.ResponseWriter, r *http.Request) {
	typeText := r.FormValue("type")
	if typeText == "" {
		writeError(w, http.StatusBadRequest, "missing form value: type")
		return
	}

	upload, _, err := r.FormFile("png")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing form file: png")
		return
	}
	defer upload.Close()

	data, err := io.ReadAll(io.LimitReader(upload, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload: "+err.Error())
		return
	}

	p, err := png.Parse(data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	c := p.ChunkByType(typeText)
	if c == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no %q chunk in upload", typeText))
		return
	}

	message, err := c.Text()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	json.NewEncoder(w).Encode(model.DecodeResponse{Type: typeText, Message: message})
}

func HandleInspect(w http.ResponseWriter, r *http.Request) {
	upload, _, err := r.FormFile("png")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing form file: png")
		return
	}
	defer upload.Close()

	data, err := io.ReadAll(io.LimitReader(upload, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload: "+err.Error())
		return
	}

	p, err := png.Parse(data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res := make([]model.ChunkInfo, 0, len(p.Chunks()))
	for _, c := range p.Chunks() {
		t := c.Type()
		res = append(res, model.ChunkInfo{
			Type:       t.String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   t.IsCritical(),
			Public:     t.IsPublic(),
			SafeToCopy: t.IsSafeToCopy(),
		})
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/decode", HandleDecode).Methods("POST")
	router.HandleFunc("/inspect", HandleInspect).Methods("POST")

	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
