package handler

import (
	"net/http"

	"github.com/MKhiriev/coffee-shop-client/internal/auth"
	"github.com/MKhiriev/coffee-shop-client/internal/logger"
)

const callbackPageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Coffee Shop login</title></head>
<body>
<p id="status">Completing login...</p>
<script>
fetch("/token", {
  method: "POST",
  headers: {"Content-Type": "application/x-www-form-urlencoded"},
  body: "fragment=" + encodeURIComponent(window.location.hash)
}).then(function (r) { return r.text(); })
  .then(function (t) { document.getElementById("status").textContent = t; });
</script>
</body>
</html>
`

func (h *CallbackHandler) callbackPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(callbackPageHTML))
}

func (h *CallbackHandler) receiveToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Error().Err(err).Msg("error parsing callback form")
		http.Error(w, ErrInvalidCallbackForm.Error(), http.StatusBadRequest)
		return
	}

	token, err := auth.ParseCallbackFragment(r.PostFormValue("fragment"))
	if err != nil {
		log.Error().Err(err).Msg("error parsing callback fragment")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.delivered.CompareAndSwap(false, true) {
		log.Warn().Msg("access token already delivered")
		http.Error(w, ErrTokenAlreadyDelivered.Error(), http.StatusConflict)
		return
	}

	h.tokens <- token
	log.Info().Msg("access token received")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Login complete. You can close this window."))
}
