package http

import "net/http"

// Home lists the service routes.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, map[string]any{
		"message": "Loan negotiation API",
		"routes": []string{
			"/negotiate/chat",
			"/borrower/generate-pitch",
			"/investor/select",
		},
	})
}
