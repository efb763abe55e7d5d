package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	goparser "github.com/qtreebank/goparser"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// readGraphBody decodes the request body's {"graph": "<text>"} payload
// into a single syntax graph resolved against the loaded corpus.
func readGraphBody(treebank *goparser.Treebank, r *http.Request) (*goparser.Graph, error) {
	var body struct {
		Graph string `json:"graph"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid JSON body")
	}
	if body.Graph == "" {
		return nil, fmt.Errorf("missing field: graph")
	}

	view := &goparser.Treebank{Lemmas: treebank.Lemmas, Corpus: treebank.Corpus}
	if err := view.ReadSyntax(strings.NewReader(body.Graph)); err != nil {
		return nil, err
	}
	if len(view.Graphs) == 0 {
		return nil, fmt.Errorf("graph text has no go terminator")
	}
	return view.Graphs[0], nil
}

func graphText(g *goparser.Graph) (string, error) {
	view := &goparser.Treebank{Graphs: []*goparser.Graph{g}}
	var buf bytes.Buffer
	if err := view.WriteSyntax(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	morphology := flag.String("morphology", ".data/morphology.tsv", "morphology TSV file")
	flag.Parse()

	treebank, err := goparser.LoadMorphologyFile(*morphology)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading morphology: %v\n", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/oracle", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		gold, err := readGraphBody(treebank, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		output := gold.OnlyTokens()
		actions := goparser.Oracle(gold, output)

		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.String()
		}
		text, err := graphText(output)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Actions []string `json:"actions"`
			Graph   string   `json:"graph"`
		}{Actions: names, Graph: text})
	})

	mux.HandleFunc("/elas", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		gold, err := readGraphBody(treebank, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if len(gold.Edges) == 0 {
			writeError(w, http.StatusBadRequest, "graph has no edges")
			return
		}

		output := gold.OnlyTokens()
		goparser.Oracle(gold, output)

		var elas goparser.ELAS
		elas.Compare(gold, output)
		writeJSON(w, http.StatusOK, struct {
			Precision float64 `json:"precision"`
			Recall    float64 `json:"recall"`
			F1        float64 `json:"f1"`
		}{Precision: elas.Precision(), Recall: elas.Recall(), F1: elas.F1()})
	})

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("goparser server listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
