// fsr is a single-user field-service report builder: one binary, one
// in-memory report per session, serving the form UI and a small local
// API that the UI drives. Nothing is persisted; the outputs are the
// printed page, the PDF download and the email hand-off.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"fsr/internal/config"
	"fsr/internal/handlers/report"
	"fsr/internal/server"
	"fsr/internal/websocket"
)

func main() {
	port := flag.Int("port", 9000, "HTTP port")
	cfgPath := flag.String("config", "", "Path to YAML deployment profile")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	app := &server.App{Cfg: cfg, Hub: websocket.NewHub()}
	h := report.New(app.Cfg, app.Hub)

	mux := http.NewServeMux()

	// Static files for the form UI
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "static/index.html")
	})

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		websocket.HandleWebSocket(app.Hub, w, r)
	})

	// API routes - using a simple router
	mux.HandleFunc("/api/v1/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		path := strings.TrimPrefix(r.URL.Path, "/api/v1/")
		path = strings.TrimSuffix(path, "/")
		parts := strings.Split(path, "/")

		switch {
		// Config
		case path == "config" && r.Method == "GET":
			h.GetConfig(w, r)

		// Report
		case path == "report" && r.Method == "GET":
			h.GetReport(w, r)
		case path == "report" && r.Method == "PUT":
			h.UpdateFields(w, r)
		case path == "report/finalize" && r.Method == "POST":
			h.Finalize(w, r)
		case path == "report/edit" && r.Method == "POST":
			h.Edit(w, r)

		// Hardware register
		case path == "report/hardware" && r.Method == "POST":
			h.AddHardware(w, r)
		case path == "report/hardware/export" && r.Method == "GET":
			h.ExportHardware(w, r)
		case len(parts) == 3 && parts[0] == "report" && parts[1] == "hardware" && r.Method == "PUT":
			h.UpdateHardware(w, r, parts[2])
		case len(parts) == 3 && parts[0] == "report" && parts[1] == "hardware" && r.Method == "DELETE":
			h.RemoveHardware(w, r, parts[2])

		// Photos
		case path == "report/photos" && r.Method == "POST":
			h.AddPhoto(w, r)
		case len(parts) == 3 && parts[0] == "report" && parts[1] == "photos" && r.Method == "DELETE":
			h.RemovePhoto(w, r, parts[2])

		// Signatures
		case path == "report/signatures" && r.Method == "GET":
			h.GetSignatures(w, r)
		case len(parts) == 3 && parts[0] == "report" && parts[1] == "signatures" && r.Method == "PUT":
			h.SetSignature(w, r, parts[2])

		// Rendered document and exports
		case path == "report/document" && r.Method == "GET":
			h.GetDocument(w, r)
		case path == "report/print" && r.Method == "GET":
			h.PrintDocument(w, r)
		case path == "report/pdf" && r.Method == "GET":
			h.ExportPDF(w, r)

		// Email hand-off
		case path == "report/email" && r.Method == "POST":
			h.Email(w, r)

		default:
			json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("fsr server starting on http://localhost%s", addr)
	log.Fatal(http.ListenAndServe(addr, server.Logging(mux)))
}
