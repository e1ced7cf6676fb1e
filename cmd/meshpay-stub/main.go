// meshpay-stub serves the in-memory backend double on a local port so the
// client can be exercised without the deployed backend.
package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/meshpay/meshpay-client/internal/stubserver"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func main() {
	_ = godotenv.Load()
	addr := env("MESHPAY_STUB_ADDR", ":8090")

	srv := stubserver.New()
	// Demo accounts; ade@meshpay.dev can fund transfers out of the box.
	srv.Seed("Ade Balogun", "ade@meshpay.dev", "password1", "09012345678", 25000)
	srv.Seed("Chiamaka Obi", "chiamaka@meshpay.dev", "password1", "08023456789", 5000)
	srv.Seed("MeshPay Admin", "admin@meshpay.dev", "password1", "07034567890", 0)

	logger.Info().Str("addr", addr).Msg("MeshPay stub backend listening")
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		logger.Fatal().Err(err).Msg("serve error")
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
